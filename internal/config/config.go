// Package config loads runtime configuration from environment variables
// (prefix ECOMCLEAN) layered over an optional YAML file. Cleaning
// thresholds default to the standard normalization rules and are
// immutable once a pipeline run starts.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig holds caller-supplied file locations. Input and output are
// normally given on the command line; CSVDir enables the CSV side-export
// when non-empty.
type PathsConfig struct {
	Input  string `yaml:"input" envconfig:"INPUT"`
	Output string `yaml:"output" envconfig:"OUTPUT"`
	CSVDir string `yaml:"csv_dir" envconfig:"CSV_DIR"`
}

// CleaningConfig overrides the normalization thresholds. Defaults match
// the standard rules.
type CleaningConfig struct {
	RevenueTolerance   float64 `yaml:"revenue_tolerance" envconfig:"REVENUE_TOLERANCE" validate:"gt=0"`
	HighValueThreshold float64 `yaml:"high_value_threshold" envconfig:"HIGH_VALUE_THRESHOLD" validate:"gt=0"`
}

// Default returns the configuration used when no file and no environment
// overrides exist.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "stdout",
			FilePath: "logs/ecomclean.log",
		},
		Paths: PathsConfig{
			Output: "cleaned_data.xlsx",
		},
		Cleaning: CleaningConfig{
			RevenueTolerance:   0.01,
			HighValueThreshold: 50000,
		},
	}
}

// Load builds the configuration in three layers: defaults, then the YAML
// file at configPath when it exists, then environment variables. Later
// layers win.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := loadFromFile(configPath, cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("ECOMCLEAN", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) validate() error {
	return validator.New().Struct(c)
}
