package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		pct   float64
		want  float64
	}{
		{"zero", 100, 0, 100},
		{"quarter", 100, 25, 75},
		{"absent", 100, 0, 100},
		{"negative", 100, -10, 100},
		{"full", 100, 100, 0},
		{"over hundred clamps", 100, 150, 0},
		{"fractional", 15990, 15, 13591.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyDiscount(tt.price, tt.pct), 1e-9)
		})
	}
}

func TestApplyDiscount_NeverNegativeForValidPercentages(t *testing.T) {
	for pct := 0.0; pct <= 100; pct += 2.5 {
		assert.GreaterOrEqual(t, ApplyDiscount(37, pct), 0.0)
	}
}
