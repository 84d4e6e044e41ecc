package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gotrend/internal/config"
	"github.com/sartorproj/gotrend/numeric"
	"github.com/sartorproj/gotrend/timeseries"
)

// app carries the resolved configuration and the global flags shared by
// every subcommand.
type app struct {
	cfgFile    string
	file       string
	descending bool

	// flag overrides, applied only when set
	period    int
	rocPeriod int
	lag       int
	tolerance float64
	threshold float64
	column    string
	logLevel  string

	cfg    *config.Config
	logger *log.Entry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gotrend",
		Short:         "Trend scores and normalized statistics for price series",
		Long:          `gotrend loads a price column from CSV and reports an OLS/Mann-Kendall trend score, rolling z-scores, rate-of-change statistics and log-return diagnostics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default is ~/.gotrend/config.yaml)")
	f.StringVarP(&a.file, "file", "f", "", "CSV file with a price column")
	f.BoolVar(&a.descending, "descending", false, "CSV rows are ordered newest first")
	f.IntVar(&a.period, "period", 0, "window length in bars (overrides config)")
	f.IntVar(&a.rocPeriod, "roc-period", 0, "rate-of-change lookback (overrides config)")
	f.IntVar(&a.lag, "lag", 0, "autocorrelation lag (overrides config)")
	f.Float64Var(&a.tolerance, "tolerance", 0, "near-zero tolerance (overrides config)")
	f.Float64Var(&a.threshold, "threshold", 0, "score threshold for up/down (overrides config)")
	f.StringVar(&a.column, "column", "", "price column name (overrides config)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newScoreCmd(a),
		newStatsCmd(a),
		newReturnsCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	c, err := config.Load(a.cfgFile)
	switch {
	case errors.Is(err, config.ErrNotFound) && cmd.Name() == "init":
		// config init creates the file.
		c = config.Default()
	case err != nil:
		return err
	}

	f := cmd.Flags()
	if f.Changed("period") {
		c.Period = a.period
	}
	if f.Changed("roc-period") {
		c.ROCPeriod = a.rocPeriod
	}
	if f.Changed("lag") {
		c.Lag = a.lag
	}
	if f.Changed("tolerance") {
		c.Tolerance = a.tolerance
	}
	if f.Changed("threshold") {
		c.Threshold = a.threshold
	}
	if f.Changed("column") {
		c.Column = a.column
	}
	if f.Changed("log-level") {
		c.LogLevel = a.logLevel
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)

	a.cfg = c
	a.logger = logger.WithField("cmd", cmd.Name())
	return nil
}

func (a *app) tol() numeric.Option {
	return numeric.WithTolerance(a.cfg.Tolerance)
}

func (a *app) loadSeries() (*timeseries.Series, error) {
	if a.file == "" {
		return nil, fmt.Errorf("no input: pass --file")
	}

	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = a.cfg.Column
	opts.Descending = a.descending

	series, err := timeseries.LoadCSV(a.file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.file, err)
	}
	a.logger.WithFields(log.Fields{
		"file":   a.file,
		"column": a.cfg.Column,
		"bars":   series.Len(),
	}).Debug("loaded series")
	return series, nil
}
