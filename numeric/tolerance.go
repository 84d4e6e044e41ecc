package numeric

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultTolerance is the magnitude below which a denominator is treated as zero.
const DefaultTolerance = 1e-10

// Options holds per-call overrides.
type Options struct {
	Tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// WithTolerance overrides DefaultTolerance for a single call.
// Negative values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol >= 0 && !math.IsNaN(tol) {
			o.Tolerance = tol
		}
	}
}

// Resolve applies opts over the defaults and returns the resulting tolerance.
func Resolve(opts ...Option) float64 {
	o := Options{Tolerance: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o.Tolerance
}

// NearZero reports whether |x| is below tol.
//
// NaN counts as near zero, so a NaN denominator takes the caller's fallback
// instead of propagating into the result. Only denominators are guarded: a
// NaN numerator over a healthy denominator still yields NaN.
func NearZero(x, tol float64) bool {
	return math.IsNaN(x) || math.Abs(x) < tol
}

// SafeDiv returns num/den, or fallback when den is within tol of zero or NaN.
func SafeDiv(num, den, tol, fallback float64) float64 {
	if NearZero(den, tol) {
		return fallback
	}
	return num / den
}

// PopMoments returns the population mean and standard deviation of xs.
// An empty sample yields (0, 0).
func PopMoments(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	mean = stat.Mean(xs, nil)

	// Two-pass sum of squares; the compensated form in stat can go
	// slightly negative on constant input.
	sumSq := 0.0
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return mean, math.Sqrt(sumSq / float64(len(xs)))
}
