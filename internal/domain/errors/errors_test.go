package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
		code string
	}{
		{"parts total", ErrNoTotalPartsPrice, KindValidation, "no_total_parts_price"},
		{"services total", ErrNoTotalServicesPrice, KindValidation, "no_total_services_price"},
		{"total", ErrNoTotalPrice, KindValidation, "no_total_price"},
		{"not found", ErrNotFound, KindNotFound, "not_found"},
		{"max order", ErrMaxOrderReached, KindConflict, "max_order_reached"},
		{"complaint exists", ErrComplaintExists, KindConflict, "exist"},
		{"already exists", ErrAlreadyExists, KindConflict, "already_exists"},
		{"line item conflict", ErrLineItemConflict, KindConflict, "line_item_conflict"},
		{"store", ErrStore, KindStore, CodeGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			if got := KindOf(tc.err); got != tc.kind {
				t.Fatalf("expected kind %v, got %v", tc.kind, got)
			}
			if got := CodeOf(tc.err); got != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, got)
			}
		})
	}
}

func TestCodeOfWrappedAndForeign(t *testing.T) {
	wrapped := fmt.Errorf("create order: %w", ErrMaxOrderReached)
	if got := CodeOf(wrapped); got != "max_order_reached" {
		t.Fatalf("expected wrapped code, got %q", got)
	}
	if !stdErrors.Is(wrapped, ErrMaxOrderReached) {
		t.Fatal("expected wrapped error to match sentinel")
	}

	foreign := stdErrors.New("connection reset")
	if got := CodeOf(foreign); got != CodeGeneric {
		t.Fatalf("expected generic code, got %q", got)
	}
	if got := KindOf(foreign); got != KindUnknown {
		t.Fatalf("expected unknown kind, got %v", got)
	}
	if KindUnknown.String() != "unknown" || KindConflict.String() != "conflict" {
		t.Fatal("unexpected kind names")
	}
}
