package usecase

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const maxEANLength = 64

// ValidateEAN accepts article codes made of printable characters without spaces.
func ValidateEAN(ean string) bool {
	if ean == "" || len(ean) > maxEANLength {
		return false
	}
	for _, r := range ean {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func negative(d decimal.Decimal) bool {
	return d.IsNegative()
}

// duplicateIDs reports whether any non-zero identifier repeats.
func duplicateIDs(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
