package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmissions_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name        string
		combination float64
		baseline    float64
		percent     int
	}{
		{"exact half", 87.5, 100, 13},
		{"below half", 88, 100, 12},
		{"above half", 87, 100, 13},
		{"full saving", 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := emissions(tt.combination, tt.baseline)
			assert.Equal(t, tt.percent, e.SavingsPercent)
		})
	}
}

func TestEmissions_EqualToBaseline(t *testing.T) {
	e := emissions(10, 10)

	assert.Zero(t, e.Savings)
	assert.Zero(t, e.SavingsPercent)
	assert.Empty(t, e.Text)
}

func TestEmissions_ZeroBaseline(t *testing.T) {
	e := emissions(0, 0)

	assert.Zero(t, e.SavingsPercent)
	assert.Empty(t, e.Text)
}
