package utils_test

import (
	"math"
	"testing"

	"itradebook/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"rounds up at half", 12.345, 12.35},
		{"rounds down below half", 12.3449, 12.34},
		{"half away from zero on negatives", -0.005, -0.01},
		{"half away from zero on positives", 0.005, 0.01},
		{"negative rounds away", -12.345, -12.35},
		{"already two decimals", 40.00, 40.00},
		{"zero", 0, 0},
		{"NaN coerced to zero", math.NaN(), 0},
		{"positive infinity coerced to zero", math.Inf(1), 0},
		{"negative infinity coerced to zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.Round2(tt.input))
		})
	}
}

func TestSafeFloat(t *testing.T) {
	assert.Equal(t, 0.0, utils.SafeFloat(nil))

	v := 12.5
	assert.Equal(t, 12.5, utils.SafeFloat(&v))

	nan := math.NaN()
	assert.Equal(t, 0.0, utils.SafeFloat(&nan))
}

func TestSanitizeFloat(t *testing.T) {
	assert.Equal(t, 1.25, utils.SanitizeFloat(1.25))
	assert.Equal(t, 0.0, utils.SanitizeFloat(math.NaN()))
	assert.Equal(t, 0.0, utils.SanitizeFloat(math.Inf(1)))
	assert.Equal(t, 0.0, utils.SanitizeFloat(math.Inf(-1)))
}
