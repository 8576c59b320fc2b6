// Package calc implements the unit-aware concentration calculators: a
// conversion table over the lab's unit families, the C1V1=C2V2 dilution
// solver, and the actual-concentration solver for components mixed into a
// media volume. Everything here is pure: no I/O, no stored state, safe for
// any number of concurrent callers. Every returned error is a validation
// error whose text goes to API clients verbatim.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Magnitude bounds shared by every calculator input, inclusive on both ends.
const (
	MinValue = 1e-12
	MaxValue = 1e12
)

// Default units applied when a request omits them.
const (
	DefaultConcentrationUnit = "µM"
	DefaultVolumeUnit        = "mL"
)

// missing reports whether a request value was absent, JSON null, or an
// empty string.
func missing(v any) bool {
	return v == nil || v == ""
}

// parseNumber interprets the two magnitude encodings the API accepts, JSON
// numbers and numeric strings. Non-finite results are rejected.
func parseNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
