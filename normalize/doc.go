// Package normalize converts raw values and trailing windows of a series
// into scale-free statistics.
//
// All functions take series in chronological order (oldest first, the most
// recent observation last) and never modify or retain their input.
//
// # Min-Max Scaling
//
//	v, err := normalize.MinMax(105, 100, 110) // 0.5
//	if errors.Is(err, normalize.ErrInvalidArgument) {
//	    // min > max
//	}
//
// MinMax is the only function in the package that can fail. Every other
// function returns a documented fallback for degenerate input: a series that
// is nil or too short, or a standard deviation below the tolerance.
//
// # Z-Scores
//
//	z := normalize.ZScore(x, series)          // against the whole series
//	r := normalize.RollingStats(series, 20)   // trailing 20 observations
//	fmt.Println(r.ZScore, r.Mean, r.StdDev)
//
// # Rate of Change
//
//	r := normalize.RollingROCStats(series, 20, 5) // z-score of the latest 5-bar ROC
//
// Means and standard deviations are population moments (divide by N).
package normalize
