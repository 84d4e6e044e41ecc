// Package numeric holds the tolerance guards shared by the normalization,
// statistics and trend packages.
//
// Every quantity that ends up in a denominator (a range, a standard
// deviation, a reference price) is compared against a tolerance before
// dividing. Below the tolerance the caller's fallback is returned instead,
// so no function built on these helpers produces Inf or NaN from a
// degenerate input. A NaN denominator is degenerate too and takes the
// fallback, so ROC(5, NaN) is 0, not NaN.
//
// # Tolerance
//
// The default tolerance is 1e-10 and can be overridden per call:
//
//	z := normalize.ZScore(x, window)                            // 1e-10
//	z := normalize.ZScore(x, window, numeric.WithTolerance(1e-6)) // looser
//
// # Moments
//
// PopMoments returns the population mean and standard deviation (divide by
// N, not N-1) of a sample:
//
//	mean, std := numeric.PopMoments([]float64{1, 2, 3, 4, 5}) // 3, sqrt(2)
package numeric
