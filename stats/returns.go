package stats

import (
	"math"

	"github.com/sartorproj/gotrend/numeric"
)

// LogReturn returns ln(current/previous).
//
// Either price at or below the tolerance yields 0. Negative prices are
// treated like zero: the function assumes strictly positive price data
// and does not attempt to give meaning to a ratio of signed values.
func LogReturn(current, previous float64, opts ...numeric.Option) float64 {
	tol := numeric.Resolve(opts...)
	if previous < tol || current < tol {
		return 0
	}
	return math.Log(current / previous)
}

// LogReturns returns the single-step log returns of a chronological series.
// The result always has max(0, len(series)-1) elements.
func LogReturns(series []float64, opts ...numeric.Option) []float64 {
	if len(series) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		returns[i-1] = LogReturn(series[i], series[i-1], opts...)
	}
	return returns
}
