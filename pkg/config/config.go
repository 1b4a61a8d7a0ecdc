// Package config loads the simulation configuration file and constructs
// the application logger.
package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the depletion run configuration
type Config struct {
	Chain      ChainConfig      `yaml:"chain"`
	Output     OutputConfig     `yaml:"output"`
	Operator   OperatorConfig   `yaml:"operator"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ChainConfig selects the depletion chain and registry sources
type ChainConfig struct {
	// File is an explicit chain file path; empty means resolve through the
	// environment override and registry.
	File string `yaml:"file"`
	// CrossSections optionally names the registry document, bypassing
	// OPENMC_CROSS_SECTIONS discovery.
	CrossSections string `yaml:"cross_sections"`
	// FissionQ overrides per-nuclide fission Q values [eV].
	FissionQ map[string]float64 `yaml:"fission_q"`
}

// OutputConfig controls where run outputs are written
type OutputConfig struct {
	Dir string `yaml:"dir" default:"."`
}

// OperatorConfig parameterizes the built-in constant operator
type OperatorConfig struct {
	Eigenvalue float64   `yaml:"eigenvalue" default:"1.0"`
	Materials  []int     `yaml:"materials" validate:"min=1"`
	Volumes    []float64 `yaml:"volumes"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr" default:":9090"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// Load reads configuration from a YAML file, applies defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if len(config.Operator.Volumes) != len(config.Operator.Materials) {
		return fmt.Errorf("operator.volumes length %d does not match operator.materials length %d",
			len(config.Operator.Volumes), len(config.Operator.Materials))
	}
	return nil
}
