// Package timeseries provides the owned series buffers consumed by the
// normalization, statistics and trend packages.
package timeseries

import (
	"errors"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/sartorproj/gotrend/numeric"
)

// Series is a chronological time series: Values[0] is the oldest
// observation and Values[Len()-1] the most recent.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from chronological values with hourly timestamps
// ending at the current time.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	end := time.Now().Truncate(time.Hour)
	for i := range timestamps {
		timestamps[i] = end.Add(-time.Duration(len(values)-1-i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Last returns the most recent value, or NaN for an empty series.
func (s *Series) Last() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[len(s.Values)-1]
}

// Mean returns the arithmetic mean, or 0 for an empty series.
func (s *Series) Mean() float64 {
	mean, _ := numeric.PopMoments(s.Values)
	return mean
}

// Std returns the population standard deviation.
func (s *Series) Std() float64 {
	_, std := numeric.PopMoments(s.Values)
	return std
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	lo := s.Values[0]
	for _, v := range s.Values[1:] {
		lo = math.Min(lo, v)
	}
	return lo
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	hi := s.Values[0]
	for _, v := range s.Values[1:] {
		hi = math.Max(hi, v)
	}
	return hi
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	m, err := stats.Median(stats.Float64Data(s.Values))
	if err != nil {
		return math.NaN()
	}
	return m
}

// Tail returns a copy of the last n observations. A larger n returns a copy
// of the whole series.
func (s *Series) Tail(n int) *Series {
	return s.Slice(len(s.Values)-n, len(s.Values))
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	var timestamps []time.Time
	if len(s.Timestamps) >= end {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Derive returns a new series holding values aligned to the most recent
// timestamps of s, e.g. log returns or rolling z-scores computed from it.
func (s *Series) Derive(values []float64, suffix string) *Series {
	var timestamps []time.Time
	if offset := len(s.Timestamps) - len(values); offset >= 0 && len(s.Timestamps) == len(s.Values) {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[offset:])
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + suffix,
	}
}

// Bars returns a most-recent-first view over a copy of the series.
func (s *Series) Bars() Bars {
	return NewBars(s.Values)
}
