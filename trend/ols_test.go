package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOLS(t *testing.T) {
	tests := []struct {
		name      string
		window    []float64
		slope     float64
		intercept float64
		rSquared  float64
	}{
		{"increasing line", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1, 1, 1},
		{"decreasing line", []float64{10, 8, 6, 4, 2}, -2, 10, 1},
		{"noisy uptrend", []float64{1, 3, 2, 4, 3, 5, 4, 6}, 4.0 / 7.0, 1.5, 16.0 / 21.0},
		{"flat", []float64{5, 5, 5, 5}, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := OLS(tt.window)
			assert.InDelta(t, tt.slope, fit.Slope, 1e-9)
			assert.InDelta(t, tt.intercept, fit.Intercept, 1e-9)
			assert.InDelta(t, tt.rSquared, fit.RSquared, 1e-9)
			assert.Equal(t, len(tt.window), fit.N)
		})
	}
}

func TestOLSDegenerate(t *testing.T) {
	assert.Equal(t, SlopeResult{}, OLS(nil))
	assert.Equal(t, SlopeResult{N: 1}, OLS([]float64{3}))

	fit := OLS([]float64{1, math.NaN(), 3})
	assert.False(t, math.IsNaN(fit.RSquared))
	assert.False(t, math.IsNaN(fit.Slope))
}

func TestOLSRSquaredBounded(t *testing.T) {
	windows := [][]float64{
		{1, 2, 1, 2, 1, 2},
		{100, 1e-9, 3, 1e6},
		{0.1, 0.2, 0.30000000000000004, 0.4},
	}
	for _, w := range windows {
		fit := OLS(w)
		assert.GreaterOrEqual(t, fit.RSquared, 0.0)
		assert.LessOrEqual(t, fit.RSquared, 1.0)
	}
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, clampUnit(math.NaN()))
	assert.Equal(t, 0.0, clampUnit(-1e-16))
	assert.Equal(t, 1.0, clampUnit(1+1e-15))
	assert.Equal(t, 0.5, clampUnit(0.5))
}
