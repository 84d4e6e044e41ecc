// Package trend scores the direction and strength of a price trend.
//
// A Classifier fuses two independent trend tests over the most recent
// period bars:
//
//   - an ordinary least squares fit of price on time, whose R² and slope
//     sign give a signed correlation r = sign(slope) * sqrt(R²);
//   - the Mann-Kendall rank test, whose tau counts concordant minus
//     discordant pairs.
//
// The score is (tau + r) / 2. Both inputs lie in [-1, 1], so the score does
// too: +1 is a clean uptrend, -1 a clean downtrend, 0 no trend.
//
// # Scoring
//
//	c := trend.NewClassifier(20)
//	bars := timeseries.NewBars(closes)      // closes oldest first
//	score := c.Score(bars, bars.Len()-1)
//	fmt.Println(trend.Classify(score, 0.3)) // up, down or flat
//
// Score returns 0 until currentBar+1 reaches the period. A period that
// yields no window is reported through the classifier's Notifier, which
// logs a warning through logrus unless replaced with WithNotifier.
//
// # Estimators
//
// OLS and MannKendall are usable on their own:
//
//	fit := trend.OLS(window)         // Slope, Intercept, RSquared
//	mk := trend.MannKendall(window)  // S, Tau, Z, PValue, SenSlope
//
// The classifier reaches them through the SlopeEstimator and TauEstimator
// interfaces, so either can be replaced with WithSlopeEstimator or
// WithTauEstimator.
package trend
