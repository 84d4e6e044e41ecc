package main

import (
	"github.com/spf13/cobra"

	"github.com/sartorproj/gotrend/normalize"
	"github.com/sartorproj/gotrend/stats"
	"github.com/sartorproj/gotrend/timeseries"
)

func newReturnsCmd(a *app) *cobra.Command {
	var rollingZ bool

	cmd := &cobra.Command{
		Use:   "returns",
		Short: "Write log returns (or their rolling z-scores) as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := a.loadSeries()
			if err != nil {
				return err
			}

			returns := series.Derive(stats.LogReturns(series.Values, a.tol()), "_logret")
			if rollingZ {
				returns = returns.Derive(normalize.ZScores(returns.Values, a.cfg.Period, a.tol()), "_z")
			}
			return timeseries.WriteCSV(cmd.OutOrStdout(), returns)
		},
	}

	cmd.Flags().BoolVar(&rollingZ, "rolling-z", false, "write the rolling z-score of each log return over --period")
	return cmd
}
