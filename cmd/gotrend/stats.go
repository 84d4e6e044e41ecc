package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gotrend/normalize"
	"github.com/sartorproj/gotrend/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Normalized statistics of the latest bar and log-return diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := a.loadSeries()
			if err != nil {
				return err
			}
			tol := a.tol()
			cfg := a.cfg
			last := series.Last()

			rolling := normalize.RollingStats(series.Values, cfg.Period, tol)
			roc := normalize.RollingROCStats(series.Values, cfg.Period, cfg.ROCPeriod, tol)

			tail := series.Tail(cfg.Period)
			scaled, err := normalize.MinMax(last, tail.Min(), tail.Max(), tol)
			if err != nil {
				return err
			}

			returns := series.Derive(stats.LogReturns(series.Values, tol), "_logret")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bars:           %d\n", series.Len())
			fmt.Fprintf(out, "last:           %g\n", last)
			fmt.Fprintf(out, "median:         %g\n", series.Median())
			fmt.Fprintf(out, "zscore:         %.4f\n", normalize.ZScore(last, series.Values, tol))
			fmt.Fprintf(out, "minmax:         %.4f\n", scaled)
			fmt.Fprintf(out, "rolling_mean:   %.6f\n", rolling.Mean)
			fmt.Fprintf(out, "rolling_std:    %.6f\n", rolling.StdDev)
			fmt.Fprintf(out, "rolling_z:      %.4f\n", rolling.ZScore)
			fmt.Fprintf(out, "roc_mean:       %.4f\n", roc.Mean)
			fmt.Fprintf(out, "roc_std:        %.4f\n", roc.StdDev)
			fmt.Fprintf(out, "roc_z:          %.4f\n", roc.ZScore)
			fmt.Fprintf(out, "autocorr:       %.4f\n", stats.Autocorrelation(returns.Values, cfg.Lag, tol))

			lags := min(10, returns.Len()-1)
			if acf := stats.ACFWithConfidence(returns, lags, tol); acf != nil {
				fmt.Fprintf(out, "acf_sig_lags:   %v\n", acf.Significant())
			}
			if pacf := stats.PACFWithConfidence(returns, lags, tol); pacf != nil {
				fmt.Fprintf(out, "pacf_sig_lags:  %v\n", pacf.Significant())
			}

			lb := stats.LjungBox(returns, lags, 0, tol)
			if lb == nil {
				a.logger.WithFields(log.Fields{"returns": returns.Len()}).Debug("ljung-box skipped")
				return nil
			}
			fmt.Fprintf(out, "ljung_box_q:    %.4f\n", lb.Statistic)
			fmt.Fprintf(out, "ljung_box_p:    %.4f\n", lb.PValue)
			return nil
		},
	}
}
