// Package stats provides dependence statistics and return transforms for
// time series.
//
// # Returns
//
//	r := stats.LogReturn(101, 100)      // ln(1.01)
//	rs := stats.LogReturns(closes)      // len(closes)-1 values
//
// Prices at or below the tolerance (including negative values) give a
// return of 0 instead of -Inf or NaN.
//
// # Autocorrelation
//
//	rho := stats.Autocorrelation(rs, 1) // lag-1, biased estimator
//
//	acf := stats.ACF(series, 20)        // lags 0..20
//	pacf := stats.PACF(series, 20)
//
//	res := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(res.Values, res.ConfBounds)
//
// A series whose sum of squared deviations is within the tolerance of zero
// has autocorrelation 0 at every lag, and ACF returns nil for it.
//
// # Serial Dependence Tests
//
//	lb := stats.LjungBox(returns, 10, 0)
//	if lb.PValue < 0.05 {
//	    // returns are autocorrelated
//	}
//	bp := stats.BoxPierce(returns, 10, 0)
//	d, ok := stats.DurbinWatson(residuals)
package stats
