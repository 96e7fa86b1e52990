package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a monetary value to the cent, half away from zero, so
// 12.345 becomes 12.35 and -0.005 becomes -0.01. Every stored money field
// goes through here.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// SafeFloat coerces a nullable numeric into a float64, defaulting to 0.
func SafeFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return SanitizeFloat(*v)
}

// SanitizeFloat replaces NaN and infinities with 0 so they can never reach
// a stored row.
func SanitizeFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
