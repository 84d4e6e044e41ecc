package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gotrend/numeric"
	"github.com/sartorproj/gotrend/timeseries"
)

// PortmanteauResult is the outcome of a Ljung-Box or Box-Pierce test.
type PortmanteauResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // degrees of freedom
}

// LjungBox tests a series (typically log returns or residuals) for
// autocorrelation up to lag h. The null hypothesis is no autocorrelation;
// a p-value below 0.05 rejects it. fitdf is the number of parameters
// already estimated from the series. Returns nil for fewer than ten
// observations, lags < 1, or a series whose ACF is degenerate at the
// resolved tolerance.
func LjungBox(series *timeseries.Series, lags, fitdf int, opts ...numeric.Option) *PortmanteauResult {
	return portmanteau(series, lags, fitdf, opts, func(acf []float64, n int) float64 {
		q := 0.0
		for k := 1; k <= lags && k < len(acf); k++ {
			q += (acf[k] * acf[k]) / float64(n-k)
		}
		return q * float64(n*(n+2))
	})
}

// BoxPierce is the unweighted variant of LjungBox.
func BoxPierce(series *timeseries.Series, lags, fitdf int, opts ...numeric.Option) *PortmanteauResult {
	return portmanteau(series, lags, fitdf, opts, func(acf []float64, n int) float64 {
		q := 0.0
		for k := 1; k <= lags && k < len(acf); k++ {
			q += acf[k] * acf[k]
		}
		return q * float64(n)
	})
}

func portmanteau(series *timeseries.Series, lags, fitdf int, opts []numeric.Option, statistic func(acf []float64, n int) float64) *PortmanteauResult {
	n := series.Len()
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(series, lags, opts...)
	if acf == nil {
		return nil
	}

	q := statistic(acf, n)

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi := distuv.ChiSquared{K: float64(dof)}

	return &PortmanteauResult{
		Statistic: q,
		PValue:    chi.Survival(q),
		Lags:      lags,
		DOF:       dof,
	}
}

// DurbinWatson calculates the Durbin-Watson statistic for first-order
// autocorrelation. d near 2 means none, below 2 positive, above 2 negative.
// Returns 0 with ok=false for fewer than two values or an all-zero input.
func DurbinWatson(residuals []float64, opts ...numeric.Option) (d float64, ok bool) {
	n := len(residuals)
	if n < 2 {
		return 0, false
	}

	numerator := 0.0
	for i := 1; i < n; i++ {
		diff := residuals[i] - residuals[i-1]
		numerator += diff * diff
	}

	denominator := 0.0
	for _, r := range residuals {
		denominator += r * r
	}

	if numeric.NearZero(denominator, numeric.Resolve(opts...)) {
		return 0, false
	}
	return numerator / denominator, true
}
