package timeseries

import "slices"

// Bars is an owned price buffer addressed most-recent-first: At(0) is the
// latest bar, At(1) the bar before it, and so on. Window converts back to
// chronological order for estimators that need it.
//
// The zero value is an empty buffer.
type Bars struct {
	chrono []float64 // oldest first
}

// NewBars copies chronological values (oldest first) into a Bars buffer.
func NewBars(chronological []float64) Bars {
	b := Bars{chrono: make([]float64, len(chronological))}
	copy(b.chrono, chronological)
	return b
}

// NewBarsRecentFirst copies values ordered most-recent-first.
func NewBarsRecentFirst(recentFirst []float64) Bars {
	n := len(recentFirst)
	b := Bars{chrono: make([]float64, n)}
	for i, v := range recentFirst {
		b.chrono[n-1-i] = v
	}
	return b
}

// Len returns the number of bars.
func (b Bars) Len() int {
	return len(b.chrono)
}

// At returns the value barsAgo bars before the latest one.
// It panics if barsAgo is out of range, like a slice index.
func (b Bars) At(barsAgo int) float64 {
	return b.chrono[len(b.chrono)-1-barsAgo]
}

// Append adds a new latest bar. Previous indices shift back by one.
// Copies of b taken before the call are not affected.
func (b *Bars) Append(v float64) {
	b.chrono = append(slices.Clip(b.chrono), v)
}

// Window returns a chronological copy of the n most recent bars, oldest
// first. A non-positive n or n > Len() yields an empty slice.
func (b Bars) Window(n int) []float64 {
	if n <= 0 || n > len(b.chrono) {
		return []float64{}
	}
	window := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		window[n-1-i] = b.At(i)
	}
	return window
}

// Chronological returns a copy of all bars, oldest first.
func (b Bars) Chronological() []float64 {
	out := make([]float64, len(b.chrono))
	copy(out, b.chrono)
	return out
}
