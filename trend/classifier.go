package trend

import (
	"fmt"
	"math"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/sartorproj/gotrend/timeseries"
)

// SlopeEstimator fits a chronological window and reports the slope sign
// and the coefficient of determination in [0, 1].
type SlopeEstimator interface {
	EstimateSlope(window []float64) (slope, rSquared float64)
}

// TauEstimator reports a rank correlation in [-1, 1] for a chronological window.
type TauEstimator interface {
	EstimateTau(window []float64) float64
}

// SlopeEstimatorFunc adapts a function to SlopeEstimator.
type SlopeEstimatorFunc func(window []float64) (slope, rSquared float64)

// EstimateSlope calls f(window).
func (f SlopeEstimatorFunc) EstimateSlope(window []float64) (float64, float64) {
	return f(window)
}

// TauEstimatorFunc adapts a function to TauEstimator.
type TauEstimatorFunc func(window []float64) float64

// EstimateTau calls f(window).
func (f TauEstimatorFunc) EstimateTau(window []float64) float64 {
	return f(window)
}

var (
	// OLSEstimator is the default SlopeEstimator, backed by OLS.
	OLSEstimator SlopeEstimator = SlopeEstimatorFunc(func(window []float64) (float64, float64) {
		fit := OLS(window)
		return fit.Slope, fit.RSquared
	})

	// MannKendallEstimator is the default TauEstimator, backed by KendallTau.
	MannKendallEstimator TauEstimator = TauEstimatorFunc(KendallTau)
)

// Notifier receives diagnostic messages. It must not block or panic.
type Notifier func(msg string)

// LogNotifier returns a Notifier that logs each message as a warning.
// A nil entry logs through the standard logrus logger.
func LogNotifier(entry *log.Entry) Notifier {
	if entry == nil {
		entry = log.WithField("component", "trend")
	}
	return func(msg string) {
		entry.Warn(msg)
	}
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithSlopeEstimator replaces the OLS slope estimator. nil is ignored.
func WithSlopeEstimator(e SlopeEstimator) Option {
	return func(c *Classifier) {
		if e != nil {
			c.slope = e
		}
	}
}

// WithTauEstimator replaces the Mann-Kendall estimator. nil is ignored.
func WithTauEstimator(e TauEstimator) Option {
	return func(c *Classifier) {
		if e != nil {
			c.tau = e
		}
	}
}

// WithNotifier replaces the logrus notifier. nil is ignored.
func WithNotifier(n Notifier) Option {
	return func(c *Classifier) {
		if n != nil {
			c.notify = n
		}
	}
}

// Classifier scores the trend of the most recent period bars. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	period int
	slope  SlopeEstimator
	tau    TauEstimator
	notify Notifier
}

// NewClassifier returns a Classifier over windows of period bars.
func NewClassifier(period int, opts ...Option) *Classifier {
	c := &Classifier{
		period: period,
		slope:  OLSEstimator,
		tau:    MannKendallEstimator,
		notify: LogNotifier(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Period returns the window length.
func (c *Classifier) Period() int {
	return c.period
}

// Score returns the trend score in [-1, 1] at currentBar, where currentBar
// counts bars from the start of the data (0 is the first bar) and bars is
// addressed most-recent-first.
//
// Returns 0 while currentBar+1 < Period(). If no window can be taken, the
// notifier is told why and the score is 0.
func (c *Classifier) Score(bars timeseries.Bars, currentBar int) float64 {
	if currentBar+1 < c.period {
		return 0
	}

	window := bars.Window(c.period)
	if len(window) == 0 {
		if c.period > 0 && bars.Len() < c.period {
			c.notify(fmt.Sprintf("only %d bars available for a %d bar window, cannot calculate trend score", bars.Len(), c.period))
		} else {
			c.notify("price window is empty, cannot calculate trend score")
		}
		return 0
	}

	return NormalizedScore(window, c.slope, c.tau)
}

// Scores returns the score at every bar of a chronological series, as if
// Score were called once per bar while the series was being built.
func (c *Classifier) Scores(series []float64) []float64 {
	scores := make([]float64, len(series))
	for bar := range series {
		switch {
		case bar+1 < c.period:
		case c.period <= 0:
			scores[bar] = c.Score(timeseries.Bars{}, bar)
		default:
			window := slices.Clone(series[bar+1-c.period : bar+1])
			scores[bar] = NormalizedScore(window, c.slope, c.tau)
		}
	}
	return scores
}

// NormalizedScore fuses a slope fit and a rank correlation over a
// chronological window into (tau + sign(slope)*sqrt(R²)) / 2.
//
// A zero slope contributes r = 0 whatever the fit. NaN from either
// estimator counts as no signal.
func NormalizedScore(window []float64, slope SlopeEstimator, tau TauEstimator) float64 {
	b, rSquared := slope.EstimateSlope(window)
	t := tau.EstimateTau(window)

	if math.IsNaN(rSquared) || rSquared < 0 {
		rSquared = 0
	}
	if math.IsNaN(t) {
		t = 0
	}

	r := sign(b) * math.Sqrt(rSquared)
	return (t + r) / 2.0
}

// Direction is the coarse reading of a trend score.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "flat"
}

// Classify maps a score to Up above threshold, Down below -threshold,
// and Flat otherwise.
func Classify(score, threshold float64) Direction {
	switch {
	case score > threshold:
		return Up
	case score < -threshold:
		return Down
	}
	return Flat
}
