package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/balancedforest/planner"
)

// ErrInvalidConfig wraps every validation failure of Config.
var ErrInvalidConfig = errors.New("balancedforest: invalid config")

// Config is the CLI configuration. Values come from DefaultConfig, then the
// YAML file given by --config, then explicitly set flags.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Solve   SolveConfig   `yaml:"solve"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SolveConfig tunes batch solving.
type SolveConfig struct {
	// Workers bounds how many cases are solved concurrently.
	Workers int `yaml:"workers" validate:"gte=1,lte=1024"`
	// MaxCuts is the planner cut budget.
	MaxCuts int `yaml:"max_cuts" validate:"gte=1,lte=2"`
}

// MetricsConfig controls OpenTelemetry metric export.
type MetricsConfig struct {
	// Exporter is "none" or "stdout" (written to stderr).
	Exporter    string `yaml:"exporter" validate:"oneof=none stdout"`
	ServiceName string `yaml:"service_name" validate:"required"`
}

var configValidate = validator.New()

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Solve: SolveConfig{
			Workers: runtime.GOMAXPROCS(0),
			MaxCuts: planner.DefaultMaxCuts,
		},
		Metrics: MetricsConfig{
			Exporter:    "none",
			ServiceName: "balancedforest",
		},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the
// defaults. The result is not validated; call Validate after applying flags.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its validate tag.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s must satisfy %s=%s, got %v",
				ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
