package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gotrend/timeseries"
	"github.com/sartorproj/gotrend/trend"
)

func newScoreCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Trend score of the latest bar (or of every bar with --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := a.loadSeries()
			if err != nil {
				return err
			}

			period := a.cfg.Period
			c := trend.NewClassifier(period, trend.WithNotifier(trend.LogNotifier(a.logger.WithField("component", "trend"))))
			out := cmd.OutOrStdout()

			if all {
				return timeseries.WriteCSV(out, series.Derive(c.Scores(series.Values), "_trend"))
			}

			bars := series.Bars()
			score := c.Score(bars, bars.Len()-1)
			window := bars.Window(period)
			fit := trend.OLS(window)
			mk := trend.MannKendall(window)

			fmt.Fprintf(out, "bars:       %d\n", bars.Len())
			fmt.Fprintf(out, "period:     %d\n", period)
			fmt.Fprintf(out, "score:      %.4f\n", score)
			fmt.Fprintf(out, "direction:  %s\n", trend.Classify(score, a.cfg.Threshold))
			fmt.Fprintf(out, "slope:      %.6f\n", fit.Slope)
			fmt.Fprintf(out, "r_squared:  %.4f\n", fit.RSquared)
			fmt.Fprintf(out, "tau:        %.4f\n", mk.Tau)
			fmt.Fprintf(out, "mk_z:       %.4f\n", mk.Z)
			fmt.Fprintf(out, "mk_p:       %.4f\n", mk.PValue)
			fmt.Fprintf(out, "sen_slope:  %.6f\n", mk.SenSlope)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "write the score at every bar as CSV")
	return cmd
}
