package trend

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// MannKendallResult is the outcome of a Mann-Kendall trend test.
type MannKendallResult struct {
	S        int     // concordant minus discordant pairs
	Tau      float64 // S / (n(n-1)/2), in [-1, 1]
	Variance float64 // variance of S, corrected for ties
	Z        float64 // continuity-corrected normal score
	PValue   float64 // two-sided
	SenSlope float64 // Theil-Sen median of pairwise slopes
	N        int
}

// MannKendall runs the Mann-Kendall test on a chronological window.
// Fewer than two observations yield a zero result with PValue 1.
func MannKendall(window []float64) MannKendallResult {
	n := len(window)
	if n < 2 {
		return MannKendallResult{PValue: 1, N: n}
	}

	s := mkS(window)
	pairs := float64(n*(n-1)) / 2
	variance := mkVariance(window)

	z := 0.0
	if variance > 0 {
		switch {
		case s > 0:
			z = float64(s-1) / math.Sqrt(variance)
		case s < 0:
			z = float64(s+1) / math.Sqrt(variance)
		}
	}

	return MannKendallResult{
		S:        s,
		Tau:      float64(s) / pairs,
		Variance: variance,
		Z:        z,
		PValue:   2 * distuv.UnitNormal.Survival(math.Abs(z)),
		SenSlope: SenSlope(window),
		N:        n,
	}
}

// KendallTau returns the Mann-Kendall tau of a chronological window,
// S / (n(n-1)/2), without the rest of the test. Fewer than two
// observations give 0.
func KendallTau(window []float64) float64 {
	n := len(window)
	if n < 2 {
		return 0
	}
	return float64(mkS(window)) / (float64(n*(n-1)) / 2)
}

// SenSlope returns the Theil-Sen slope: the median of the slopes between
// every pair of observations. Fewer than two observations give 0.
func SenSlope(window []float64) float64 {
	n := len(window)
	if n < 2 {
		return 0
	}

	slopes := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			slopes = append(slopes, (window[j]-window[i])/float64(j-i))
		}
	}

	median, err := stats.Median(stats.Float64Data(slopes))
	if err != nil || math.IsNaN(median) {
		return 0
	}
	return median
}

// mkS counts concordant minus discordant pairs.
func mkS(window []float64) int {
	s := 0
	for i := 0; i < len(window)-1; i++ {
		for j := i + 1; j < len(window); j++ {
			s += int(sign(window[j] - window[i]))
		}
	}
	return s
}

// mkVariance is Var(S) with the correction for groups of tied values.
func mkVariance(window []float64) float64 {
	n := float64(len(window))
	v := n * (n - 1) * (2*n + 5)

	ties := make(map[float64]int, len(window))
	for _, x := range window {
		ties[x]++
	}
	for _, count := range ties {
		if count > 1 {
			t := float64(count)
			v -= t * (t - 1) * (2*t + 5)
		}
	}
	return v / 18
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
