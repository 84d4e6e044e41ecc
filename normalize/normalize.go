package normalize

import (
	"errors"
	"fmt"

	"github.com/sartorproj/gotrend/numeric"
)

// ErrInvalidArgument is returned by MinMax when min > max.
var ErrInvalidArgument = errors.New("normalize: min cannot be greater than max")

// RollingResult describes a window's first two moments and the z-score of
// the most recent observation against them.
type RollingResult struct {
	ZScore float64
	Mean   float64
	StdDev float64
}

// MinMax scales value into the [min, max] range. The result is not clamped.
// A range narrower than the tolerance yields 0.
func MinMax(value, min, max float64, opts ...numeric.Option) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min=%g max=%g", ErrInvalidArgument, min, max)
	}
	tol := numeric.Resolve(opts...)

	rng := max - min
	if rng < tol {
		return 0, nil
	}
	return (value - min) / rng, nil
}

// ZScore returns the z-score of value against the population moments of series.
// Returns 0 for fewer than two observations or a constant series.
func ZScore(value float64, series []float64, opts ...numeric.Option) float64 {
	if len(series) <= 1 {
		return 0
	}
	tol := numeric.Resolve(opts...)

	mean, std := numeric.PopMoments(series)
	if std < tol {
		return 0
	}
	return (value - mean) / std
}

// RollingStats computes moments over the trailing period observations of
// series and the z-score of its last element.
//
// A series shorter than period (or a non-positive period) yields the zero
// result. A flat window keeps Mean and StdDev and reports a zero ZScore.
func RollingStats(series []float64, period int, opts ...numeric.Option) RollingResult {
	if period < 1 || len(series) < period {
		return RollingResult{}
	}
	tol := numeric.Resolve(opts...)

	return rolling(series[len(series)-period:], tol)
}

// RollingROCStats computes moments over the last period percentage
// rates of change, each taken rocPeriod observations back, and the z-score
// of the most recent one.
//
// The series must hold at least period+rocPeriod observations. A reference
// value within the tolerance of zero contributes a ROC of 0.
func RollingROCStats(series []float64, period, rocPeriod int, opts ...numeric.Option) RollingResult {
	if period < 1 || rocPeriod < 0 || len(series) < period+rocPeriod {
		return RollingResult{}
	}
	tol := numeric.Resolve(opts...)

	rocs := make([]float64, 0, period)
	for i := len(series) - period; i < len(series); i++ {
		rocs = append(rocs, roc(series[i], series[i-rocPeriod], tol))
	}

	return rolling(rocs, tol)
}

// ROC returns the percentage change from past to current, or 0 when past is
// within the tolerance of zero.
func ROC(current, past float64, opts ...numeric.Option) float64 {
	return roc(current, past, numeric.Resolve(opts...))
}

// ZScores returns the rolling z-score of every observation that has a full
// trailing window, so the result has len(series)-period+1 elements.
func ZScores(series []float64, period int, opts ...numeric.Option) []float64 {
	if period < 1 || len(series) < period {
		return []float64{}
	}
	tol := numeric.Resolve(opts...)

	result := make([]float64, len(series)-period+1)
	for end := period; end <= len(series); end++ {
		result[end-period] = rolling(series[end-period:end], tol).ZScore
	}
	return result
}

func roc(current, past, tol float64) float64 {
	return numeric.SafeDiv(current-past, past, tol, 0) * 100
}

// rolling scores the last element of window against the window's moments.
func rolling(window []float64, tol float64) RollingResult {
	mean, std := numeric.PopMoments(window)
	if std < tol {
		return RollingResult{Mean: mean, StdDev: std}
	}

	latest := window[len(window)-1]
	return RollingResult{
		ZScore: (latest - mean) / std,
		Mean:   mean,
		StdDev: std,
	}
}
