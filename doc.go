// Package gotrend provides statistical normalization and trend scoring for
// price and indicator series.
//
// Every function is pure: it reads its arguments, never modifies or retains
// them, and returns the same result for the same input. Degenerate input
// (an empty or short series, a near-zero denominator) produces a documented
// fallback value rather than an error, so the functions can sit in the
// middle of an indicator pipeline without guards.
//
// # Quick Start
//
// Score the trend of the last 20 bars:
//
//	bars := timeseries.NewBars(closes) // oldest first
//	c := trend.NewClassifier(20)
//	score := c.Score(bars, bars.Len()-1) // in [-1, 1]
//
// Normalize the latest close:
//
//	r := normalize.RollingStats(closes, 20)
//	roc := normalize.RollingROCStats(closes, 20, 5)
//
// Inspect returns:
//
//	rets := stats.LogReturns(closes)
//	rho := stats.Autocorrelation(rets, 1)
//
// # Packages
//
//   - numeric: tolerance guards and population moments
//   - normalize: min-max scaling, z-scores, rolling and rate-of-change statistics
//   - stats: autocorrelation, log returns, ACF/PACF and portmanteau tests
//   - trend: OLS and Mann-Kendall estimators and the fused trend classifier
//   - timeseries: chronological Series, most-recent-first Bars, CSV I/O
//
// The gotrend command in cmd/gotrend runs these over a CSV price file.
package gotrend
