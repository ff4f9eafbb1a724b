// Package config loads the bar and logging settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elizafairlady/circleprogress/progress"
	"github.com/elizafairlady/circleprogress/widget"
)

// Config is the top-level configuration.
type Config struct {
	Log  LogConfig   `yaml:"log"`
	Bars []BarConfig `yaml:"bars"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // rotated files kept
	MaxAge     int    `yaml:"max_age"`     // days
	Compress   bool   `yaml:"compress"`
}

// BarConfig describes one progress bar. Pointer fields distinguish
// "unset" from zero so defaults can fill them.
type BarConfig struct {
	Max         *int    `yaml:"max"`
	Progress    int     `yaml:"progress"`
	Color       *uint32 `yaml:"color"`
	CircleWidth *int    `yaml:"circle_width"`
	Padding     int     `yaml:"padding"`
	Suffix      *string `yaml:"suffix"`
}

// Default returns the configuration used without a config file:
// four bars at 90, 65, 125 and 356.
func Default() *Config {
	return &Config{
		Log: defaultLog(),
		Bars: []BarConfig{
			{Progress: 90},
			{Progress: 65},
			{Progress: 125},
			{Max: intp(360), Progress: 356},
		},
	}
}

func defaultLog() LogConfig {
	return LogConfig{
		Level:      "info",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
}

// Load reads the config at path. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, fills defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Log: defaultLog()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Bars) == 0 {
		cfg.Bars = Default().Bars
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be coerced. Out-of-range bar
// values are clamped by the bar itself rather than rejected.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	for i, b := range c.Bars {
		if b.CircleWidth != nil && *b.CircleWidth < 0 {
			errs = append(errs, fmt.Errorf("bars[%d].circle_width: must not be negative", i))
		}
		if b.Padding < 0 {
			errs = append(errs, fmt.Errorf("bars[%d].padding: must not be negative", i))
		}
	}
	return errors.Join(errs...)
}

// Style returns the widget style for b, with defaults for unset fields.
func (b BarConfig) Style() widget.Style {
	s := widget.DefaultStyle()
	if b.Color != nil {
		s.Color = *b.Color
	}
	if b.CircleWidth != nil {
		s.CircleWidth = *b.CircleWidth
	}
	if b.Suffix != nil {
		s.Suffix = *b.Suffix
	}
	s.Padding = b.Padding
	return s
}

// MaxValue returns the configured max or progress.DefaultMax.
func (b BarConfig) MaxValue() int {
	if b.Max == nil {
		return progress.DefaultMax
	}
	return *b.Max
}

// Build returns a bar with max coerced to be non-negative and progress
// clamped into [0, max].
func (b BarConfig) Build() widget.CircleProgressBar {
	return widget.New(b.Style(), b.Progress, b.MaxValue())
}

func intp(v int) *int { return &v }
