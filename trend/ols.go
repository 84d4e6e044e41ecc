package trend

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SlopeResult holds an ordinary least squares fit of values on their index.
type SlopeResult struct {
	Slope     float64 // change per observation
	Intercept float64
	RSquared  float64 // in [0, 1]
	N         int
}

// OLS regresses a chronological window on 0, 1, ..., n-1.
//
// Fewer than two observations give a zero fit. A flat window has slope 0
// and R² 0 rather than the undefined 0/0.
func OLS(window []float64) SlopeResult {
	n := len(window)
	if n < 2 {
		return SlopeResult{N: n}
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(xs, window, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return SlopeResult{N: n}
	}
	rSquared := stat.RSquared(xs, window, nil, intercept, slope)

	return SlopeResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  clampUnit(rSquared),
		N:         n,
	}
}

// clampUnit maps NaN to 0 and rounding overshoot back into [0, 1].
func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
