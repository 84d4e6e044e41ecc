// Package config loads gotrend settings from flags, environment and an
// optional yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gotrend/numeric"
)

// Config holds the analysis parameters used by the CLI.
type Config struct {
	Period    int     `mapstructure:"period" yaml:"period"`
	ROCPeriod int     `mapstructure:"roc_period" yaml:"roc_period"`
	Lag       int     `mapstructure:"lag" yaml:"lag"`
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
	Column    string  `mapstructure:"column" yaml:"column"`
	LogLevel  string  `mapstructure:"log_level" yaml:"log_level"`
}

// ErrNotFound is returned by Load when an explicit config file does not exist.
var ErrNotFound = errors.New("config: file not found")

// EnvPrefix is prepended to environment overrides, e.g. GOTREND_PERIOD.
const EnvPrefix = "GOTREND"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Period:    20,
		ROCPeriod: 5,
		Lag:       1,
		Tolerance: numeric.DefaultTolerance,
		Threshold: 0.3,
		Column:    "close",
		LogLevel:  "info",
	}
}

// Validate rejects settings no analysis can run with.
func (c *Config) Validate() error {
	switch {
	case c.Period < 1:
		return fmt.Errorf("period must be positive, got %d", c.Period)
	case c.ROCPeriod < 1:
		return fmt.Errorf("roc_period must be positive, got %d", c.ROCPeriod)
	case c.Lag < 0:
		return fmt.Errorf("lag must not be negative, got %d", c.Lag)
	case c.Tolerance < 0:
		return fmt.Errorf("tolerance must not be negative, got %g", c.Tolerance)
	case c.Threshold < 0 || c.Threshold > 1:
		return fmt.Errorf("threshold must be in [0, 1], got %g", c.Threshold)
	}
	return nil
}

// DefaultPath returns ~/.gotrend/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gotrend", "config.yaml"), nil
}

// Load reads configuration with precedence env > config file > defaults.
// An empty cfgFile looks for ~/.gotrend/config.yaml; a missing default file
// is not an error, but a missing explicit file is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("period", d.Period)
	v.SetDefault("roc_period", d.ROCPeriod)
	v.SetDefault("lag", d.Lag)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("column", d.Column)
	v.SetDefault("log_level", d.LogLevel)

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, cfgFile)
		}
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else if path, err := DefaultPath(); err == nil {
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes c as yaml to path, creating parent directories.
func Save(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
