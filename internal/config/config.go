// SPDX-License-Identifier: MIT
// Package config loads vicinity settings from defaults, an optional file,
// VICINITY_* environment variables and bound command-line flags, in
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VICINITY_CHECK_NODES.
const EnvPrefix = "VICINITY"

// DefaultFileName is looked up in $HOME when no --config is given.
const DefaultFileName = ".vicinity.yaml"

// ErrInvalid indicates a setting outside its allowed range.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the decoded settings tree.
type Config struct {
	Seed       int64         `mapstructure:"seed"`
	LoadFactor float64       `mapstructure:"load_factor"`
	EdgeChecks bool          `mapstructure:"edge_checks"`
	Check      CheckConfig   `mapstructure:"check"`
	Measure    MeasureConfig `mapstructure:"measure"`
}

// CheckConfig sizes the randomized cross-check run.
type CheckConfig struct {
	Nodes      int  `mapstructure:"nodes"`
	Edges      int  `mapstructure:"edges"`
	Deletions  int  `mapstructure:"deletions"`
	Operations int  `mapstructure:"operations"`
	Rounds     int  `mapstructure:"rounds"`
	Full       bool `mapstructure:"full"`
}

// MeasureConfig selects the doubling experiment range.
type MeasureConfig struct {
	From   int `mapstructure:"from"`
	To     int `mapstructure:"to"`
	Trials int `mapstructure:"trials"`
}

var defaults = map[string]interface{}{
	"seed":             int64(1),
	"load_factor":      0.5,
	"edge_checks":      false,
	"check.nodes":      1000,
	"check.edges":      2000,
	"check.deletions":  500,
	"check.operations": 500,
	"check.rounds":     1,
	"check.full":       false,
	"measure.from":     6,
	"measure.to":       16,
	"measure.trials":   1,
}

// Loader wraps a private viper instance.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment lookup installed.
func NewLoader() *Loader {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// BindFlag lets f override key when the flag was set explicitly.
func (l *Loader) BindFlag(key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("config: bind %q: nil flag", key)
	}
	return l.v.BindPFlag(key, f)
}

// Load reads path, or $HOME/.vicinity.yaml when path is empty. A missing
// default file is not an error; a missing explicit file is.
func (l *Loader) Load(path string) (Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		def := filepath.Join(home, DefaultFileName)
		if _, statErr := os.Stat(def); statErr == nil {
			l.v.SetConfigFile(def)
			l.v.SetConfigType("yaml")
			if err := l.v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("config: read %s: %w", def, err)
			}
		}
	}

	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Used returns the config file that was read, or "".
func (l *Loader) Used() string { return l.v.ConfigFileUsed() }

// Validate checks ranges. Measurement exponents are checked again by the
// measure package against its own ceiling.
func (c Config) Validate() error {
	switch {
	case c.LoadFactor <= 0 || c.LoadFactor > 1:
		return fmt.Errorf("%w: load_factor=%v not in (0,1]", ErrInvalid, c.LoadFactor)
	case c.Check.Nodes < 0 || c.Check.Edges < 0 || c.Check.Deletions < 0 || c.Check.Operations < 0:
		return fmt.Errorf("%w: check sizes must be non-negative", ErrInvalid)
	case c.Check.Deletions > c.Check.Nodes:
		return fmt.Errorf("%w: check.deletions=%d > check.nodes=%d", ErrInvalid, c.Check.Deletions, c.Check.Nodes)
	case c.Check.Rounds < 1:
		return fmt.Errorf("%w: check.rounds=%d < 1", ErrInvalid, c.Check.Rounds)
	case c.Measure.From < 0 || c.Measure.To < c.Measure.From:
		return fmt.Errorf("%w: measure range [%d,%d]", ErrInvalid, c.Measure.From, c.Measure.To)
	case c.Measure.Trials < 1:
		return fmt.Errorf("%w: measure.trials=%d < 1", ErrInvalid, c.Measure.Trials)
	}
	return nil
}
