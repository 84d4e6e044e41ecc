package stats

import (
	"math"

	"github.com/sartorproj/gotrend/numeric"
	"github.com/sartorproj/gotrend/timeseries"
)

// Autocorrelation returns the lag-k autocorrelation of series.
//
// Both sums are taken around the mean of all N observations and neither is
// divided by a count, which is the usual biased estimator. Returns 0 when
// the series has no more than lag observations or when its sum of squared
// deviations is within the tolerance of zero.
func Autocorrelation(series []float64, lag int, opts ...numeric.Option) float64 {
	n := len(series)
	if lag < 0 || n <= lag {
		return 0
	}
	tol := numeric.Resolve(opts...)

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	num := 0.0
	for i := lag; i < n; i++ {
		num += (series[i] - mean) * (series[i-lag] - mean)
	}

	den := 0.0
	for _, v := range series {
		d := v - mean
		den += d * d
	}

	return numeric.SafeDiv(num, den, tol, 0)
}

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag, or nil for a constant series.
func ACF(series *timeseries.Series, maxLag int, opts ...numeric.Option) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	if _, std := numeric.PopMoments(series.Values); std < numeric.Resolve(opts...) {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := range acf {
		acf[k] = Autocorrelation(series.Values, k, opts...)
	}
	return acf
}

// PACF returns partial autocorrelations for lags 0 to maxLag by the
// Durbin-Levinson recursion over the ACF. Lag 0 is always 1. A lag whose
// recursion denominator is within the tolerance of zero is reported as 0.
// Returns nil when maxLag < 1 after clamping or the series is constant.
func PACF(series *timeseries.Series, maxLag int, opts ...numeric.Option) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 1 {
		return nil
	}

	acf := ACF(series, maxLag, opts...)
	if acf == nil {
		return nil
	}
	tol := numeric.Resolve(opts...)

	pacf := make([]float64, maxLag+1)
	pacf[0] = 1.0
	pacf[1] = acf[1]

	// prev holds the order k-1 coefficients, 1-indexed.
	prev := make([]float64, maxLag+1)
	next := make([]float64, maxLag+1)
	prev[1] = acf[1]

	for k := 2; k <= maxLag; k++ {
		num, den := acf[k], 1.0
		for j := 1; j < k; j++ {
			num -= prev[j] * acf[k-j]
			den -= prev[j] * acf[j]
		}
		if numeric.NearZero(den, tol) {
			// Singular step: pacf[k] stays 0 and the order k-1 fit carries on.
			prev[k] = 0
			continue
		}

		pk := num / den
		for j := 1; j < k; j++ {
			next[j] = prev[j] - pk*prev[k-j]
		}
		next[k] = pk
		pacf[k] = pk
		prev, next = next, prev
	}

	return pacf
}

// CorrelogramResult holds ACF or PACF values with their 95% confidence bound.
type CorrelogramResult struct {
	Lags       []int
	Values     []float64
	ConfBounds float64 // 1.96/sqrt(n)
}

// ACFWithConfidence calculates ACF with confidence bounds.
func ACFWithConfidence(series *timeseries.Series, maxLag int, opts ...numeric.Option) *CorrelogramResult {
	return correlogram(ACF(series, maxLag, opts...), series.Len())
}

// PACFWithConfidence calculates PACF with confidence bounds.
func PACFWithConfidence(series *timeseries.Series, maxLag int, opts ...numeric.Option) *CorrelogramResult {
	return correlogram(PACF(series, maxLag, opts...), series.Len())
}

func correlogram(values []float64, n int) *CorrelogramResult {
	if values == nil {
		return nil
	}

	lags := make([]int, len(values))
	for i := range lags {
		lags[i] = i
	}

	return &CorrelogramResult{
		Lags:       lags,
		Values:     values,
		ConfBounds: 1.96 / math.Sqrt(float64(n)),
	}
}

// SignificantLags lists the lags k >= 1 with |values[k]| > bound, in
// increasing order. Lag 0 is never reported.
func SignificantLags(values []float64, bound float64) []int {
	var lags []int
	for k, v := range values {
		if k > 0 && math.Abs(v) > bound {
			lags = append(lags, k)
		}
	}
	return lags
}

// Significant is SignificantLags over the result's own values and bound.
// A nil result has no significant lags.
func (r *CorrelogramResult) Significant() []int {
	if r == nil {
		return nil
	}
	return SignificantLags(r.Values, r.ConfBounds)
}
