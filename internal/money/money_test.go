package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{36050.0, 36050.00},
		{1012.5, 1012.50},
		{2.675, 2.68},
		{2.665, 2.67},
		{-2.675, -2.68},
		{0.005, 0.01},
		{0.004, 0.00},
		{100.0 / 3, 33.33},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestRoundTo_Grams(t *testing.T) {
	assert.Equal(t, 0.125, RoundTo(10.125-10.0, 3))
	assert.Equal(t, 0.3, RoundTo(50.3-50.0, 3))
}

func TestSum_AvoidsFloatDrift(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 0.0, Sum())
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 1050.0, Percent(35000, 3))
	assert.Equal(t, 1500.0, Percent(60000, 2.5))
	assert.Equal(t, 0.0, Percent(0, 18))
}

func TestShare(t *testing.T) {
	assert.Equal(t, 0.25, Share(25, 100))
	assert.Equal(t, 0.0, Share(25, 0))
}

func TestMulAndNonNegative(t *testing.T) {
	assert.Equal(t, 60000.0, Mul(10, 6000))
	assert.Equal(t, 0.0, NonNegative(-4))
	assert.Equal(t, 4.0, NonNegative(4))
}
