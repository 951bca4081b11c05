package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/autoservice/internal/domain/model"
	testhelpers "github.com/polkiloo/autoservice/internal/test"

	"github.com/polkiloo/autoservice/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

type fixture struct {
	store     *testhelpers.MemoryStore
	notifier  *testhelpers.NotifierRecorder
	clientID  int64
	vehicleID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := testhelpers.NewMemoryStore()
	clientID, vehicleID := store.AddClient(
		model.Client{Name: "Ann Lee", Email: "ann@example.com", Phone: "+15550100"},
		model.Vehicle{Make: "Skoda", Model: "Octavia", PlateNumber: "AB123"},
	)
	return &fixture{
		store:     store,
		notifier:  &testhelpers.NotifierRecorder{},
		clientID:  clientID,
		vehicleID: vehicleID,
	}
}

func (f *fixture) newOrder(t *testing.T, start time.Time) *model.Order {
	t.Helper()
	order, err := f.store.Orders().Create(context.Background(), &model.Order{
		VehicleID:      f.vehicleID,
		ClientID:       f.clientID,
		DepartmentID:   1,
		ClientDiagnose: "noise from the front axle",
		StartDate:      start,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func (f *fixture) orders(policy usecase.Policy) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(f.store.Orders(), f.store.Clients(), f.notifier, policy, discardLogger())
}

func (f *fixture) estimates(policy usecase.Policy) *usecase.EstimateUseCase {
	return usecase.NewEstimateUseCase(f.store.Estimates(), f.store.Orders(), f.store.Clients(), f.notifier, policy, discardLogger())
}

func (f *fixture) complaints() *usecase.ComplaintUseCase {
	return usecase.NewComplaintUseCase(f.store.Complaints(), f.store.Orders(), f.store.Clients(), f.notifier, discardLogger())
}
