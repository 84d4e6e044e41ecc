package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotrend/internal/config"
)

// writePrices writes a date,close CSV with one row per day.
func writePrices(t *testing.T, closes []float64) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("date,close\n")
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		fmt.Fprintf(&b, "%s,%g\n", day.AddDate(0, 0, i).Format("2006-01-02"), c)
	}

	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func rising(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 * (1 + 0.01*float64(i))
	}
	return closes
}

func TestScoreCommand(t *testing.T) {
	file := writePrices(t, rising(30))

	out, err := run(t, "score", "--file", file, "--period", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "bars:       30\n")
	assert.Contains(t, out, "period:     10\n")
	assert.Contains(t, out, "score:      1.0000\n")
	assert.Contains(t, out, "direction:  up\n")
	assert.Contains(t, out, "tau:        1.0000\n")
}

func TestScoreCommandDescending(t *testing.T) {
	closes := rising(15)
	for i, j := 0, len(closes)-1; i < j; i, j = i+1, j-1 {
		closes[i], closes[j] = closes[j], closes[i]
	}
	file := writePrices(t, closes)

	// Read as-is the file falls; flipped it rises.
	out, err := run(t, "score", "--file", file, "--period", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "direction:  down\n")

	out, err = run(t, "score", "--file", file, "--period", "5", "--descending")
	require.NoError(t, err)
	assert.Contains(t, out, "direction:  up\n")
}

func TestScoreCommandAll(t *testing.T) {
	file := writePrices(t, rising(12))

	out, err := run(t, "score", "--file", file, "--period", "5", "--all")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "date,close_trend", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",0"))
	assert.True(t, strings.HasSuffix(lines[12], ",1") || strings.Contains(lines[12], ",0.99999"))
}

func TestStatsCommand(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 104, 103, 106, 105, 108, 110, 109, 112, 111, 115, 114}
	file := writePrices(t, closes)

	out, err := run(t, "stats", "--file", file, "--period", "5", "--roc-period", "2")
	require.NoError(t, err)

	for _, key := range []string{"zscore:", "minmax:", "rolling_mean:", "rolling_z:", "roc_z:", "autocorr:", "acf_sig_lags:", "pacf_sig_lags:", "ljung_box_p:"} {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "rolling_mean:   112.200000\n")
	assert.Contains(t, out, "median:         106\n")
}

func TestStatsCommandCorrelogram(t *testing.T) {
	// Alternating closes give log returns that flip sign every bar: the
	// ACF is significant at every lag, the PACF only at lag 1.
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + 10*float64(i%2)
	}
	file := writePrices(t, closes)

	out, err := run(t, "stats", "--file", file, "--period", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "acf_sig_lags:   [1 2 3 4 5 6 7 8 9 10]\n")
	assert.Contains(t, out, "pacf_sig_lags:  [1]\n")
}

func TestReturnsCommand(t *testing.T) {
	file := writePrices(t, []float64{1, 2, 4, 8})

	out, err := run(t, "returns", "--file", file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "date,close_logret", lines[0])
	assert.Equal(t, "2024-01-02T00:00:00Z,0.6931471805599453", lines[1])

	out, err = run(t, "returns", "--file", file, "--rolling-z", "--period", "2")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,close_logret_z", lines[0])
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotrend.yaml")

	out, err := run(t, "config", "init", "--config", path, "--period", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	saved, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, saved.Period)

	out, err = run(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "period: 42")
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "score")
	assert.ErrorContains(t, err, "--file")

	file := writePrices(t, rising(5))
	_, err = run(t, "score", "--file", file, "--period", "0")
	assert.ErrorContains(t, err, "period must be positive")

	_, err = run(t, "stats", "--file", file, "--column", "vwap")
	assert.Error(t, err)

	_, err = run(t, "score", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrNotFound)
}
