// SPDX-License-Identifier: MIT

// Package config loads the mathext CLI configuration from YAML.
//
// Values missing from the file keep their Default() value; the merged result
// is validated with struct tags before use.
//
//	analyzer:
//	  domain: "[-10, 10]"
//	  tolerance: 1e-9
//	log:
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mathext/analyzer"
	"github.com/katalvlaran/mathext/sequence"
	"github.com/katalvlaran/mathext/valuerange"
)

// ErrInvalidConfig wraps every validation failure returned by Load and Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Sampler  SamplerConfig  `yaml:"sampler"`
	Sequence SequenceConfig `yaml:"sequence"`
	Log      LogConfig      `yaml:"log"`
}

// AnalyzerConfig mirrors the analyzer options.
type AnalyzerConfig struct {
	// Domain in interval notation, e.g. "(-inf, +inf)" or "Z[0, 50]".
	Domain        string  `yaml:"domain" validate:"required,interval"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0,finite"`
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1"`
	// Quantum 0 selects the sampler default for the domain kind.
	Quantum    float64 `yaml:"quantum" validate:"gte=0,finite"`
	Window     float64 `yaml:"window" validate:"gt=0,finite"`
	MaxSamples int     `yaml:"max_samples" validate:"gte=1"`
}

// SamplerConfig holds defaults of the sample command.
type SamplerConfig struct {
	// Quantum 0 selects the sampler default for the range kind.
	Quantum float64 `yaml:"quantum" validate:"gte=0,finite"`
	// Limit caps printed samples; 0 means no cap.
	Limit int `yaml:"limit" validate:"gte=0"`
}

// SequenceConfig holds defaults of the sequence command.
type SequenceConfig struct {
	Count uint64 `yaml:"count" validate:"gte=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("interval", validateInterval)
	_ = validate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects ±Inf and NaN float fields.
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validateInterval accepts strings that valuerange.Parse understands.
func validateInterval(fl validator.FieldLevel) bool {
	_, err := valuerange.Parse(fl.Field().String())
	return err == nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Analyzer: AnalyzerConfig{
			Domain:        "(-inf, +inf)",
			Tolerance:     analyzer.DefaultTolerance,
			MaxIterations: analyzer.DefaultMaxIterations,
			Window:        analyzer.DefaultWindow,
			MaxSamples:    analyzer.DefaultMaxSamples,
		},
		Sampler:  SamplerConfig{Limit: 1000},
		Sequence: SequenceConfig{Count: sequence.DefaultMaxEnumerated},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over Default() and validates the result.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ParseDomain parses the configured analysis domain.
func (c AnalyzerConfig) ParseDomain() (*valuerange.Range, error) {
	return valuerange.Parse(c.Domain)
}

// Options converts the section into analyzer options over domain. Logging is
// left to the caller.
func (c AnalyzerConfig) Options(domain *valuerange.Range) []analyzer.Option {
	opts := []analyzer.Option{
		analyzer.WithDomain(domain),
		analyzer.WithTolerance(c.Tolerance),
		analyzer.WithMaxIterations(c.MaxIterations),
		analyzer.WithWindow(-c.Window, c.Window),
		analyzer.WithMaxSamples(c.MaxSamples),
	}
	if c.Quantum > 0 {
		opts = append(opts, analyzer.WithQuantum(c.Quantum))
	}

	return opts
}

// SlogLevel maps the configured level name to a slog.Level.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
