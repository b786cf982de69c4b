// Package config holds the command-line tool's settings: the viewport used
// by the layout command, the ring radius fractions, the default perspective
// person and the log level.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinship/layout"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Radii mirrors layout.Radii with YAML tags.
type Radii struct {
	Superior     float64 `yaml:"superior"`
	Intermediate float64 `yaml:"intermediate"`
	Distant      float64 `yaml:"distant"`
}

// Config is the decoded configuration file.
type Config struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Radii    Radii   `yaml:"radii"`
	You      string  `yaml:"you"`
	LogLevel string  `yaml:"log_level"`
}

// Default returns a configuration that works without any file.
func Default() Config {
	return Config{
		Width:  800,
		Height: 800,
		Radii: Radii{
			Superior:     layout.DefaultRadii.Superior,
			Intermediate: layout.DefaultRadii.Intermediate,
			Distant:      layout.DefaultRadii.Distant,
		},
		LogLevel: "info",
	}
}

// Load starts from Default and overlays the YAML file at path, if any.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err := decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	return cfg, cfg.Validate()
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LayoutRadii converts the configured fractions.
func (c Config) LayoutRadii() layout.Radii {
	return layout.Radii{
		Superior:     c.Radii.Superior,
		Intermediate: c.Radii.Intermediate,
		Distant:      c.Radii.Distant,
	}
}

// Level parses LogLevel (debug, info, warn, error; case-insensitive).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Validate checks the viewport, the radii ordering and the log level.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: viewport must be positive, got %gx%g", ErrInvalidConfig, c.Width, c.Height))
	}
	if err := c.LayoutRadii().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
