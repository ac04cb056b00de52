package entry

import (
	"math"
	"strconv"
	"strings"

	"github.com/Bikash4JP/tally-for-mobile/internal/shared"
)

// parseAmount accepts user-entered amounts with optional thousands
// separators and rejects non-numeric, non-finite, or non-positive input.
// ParseFloat accepts "NaN" and "Inf" spellings; either would poison every
// total derived from the journal, so they are rejected here.
func parseAmount(raw string) (float64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if clean == "" {
		return 0, shared.Validationf("amount required")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, shared.Validationf("amount %q is not a number", raw)
	}
	if v <= 0 {
		return 0, shared.Validationf("amount must be positive, got %v", v)
	}
	return v, nil
}
