package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		round    int32
		expected float64
	}{
		{"two decimals down", 4.0 / 13, 2, 0.31},
		{"two decimals up", 1.0 / 13, 2, 0.08},
		{"four decimals", 32.0 / 13, 4, 2.4615},
		{"zero decimals", 2.5, 0, 3},
		{"already exact", 0.5, 2, 0.5},
		{"negative value", -1.0 / 3, 2, -0.33},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatFloat(test.value, test.round))
		})
	}
}

func TestFormatFloatNonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(FormatFloat(math.NaN(), 2)))
	assert.True(t, math.IsInf(FormatFloat(math.Inf(1), 2), 1))
	assert.True(t, math.IsInf(FormatFloat(math.Inf(-1), 2), -1))
}
