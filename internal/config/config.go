package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "site2c.yaml"

// Targets supported by the generator. Each one maps to a framework
// variant in internal/generator.
const (
	TargetArduino = "arduino"
	TargetEspidf  = "espidf"
)

// Config represents the resolved generation settings, parsed from site2c.yaml
// and overridden by CLI flags.
type Config struct {
	// Source is the directory containing the compiled website. Required.
	Source string `yaml:"source"`
	// Output is the directory the header/source pair is written to.
	Output string `yaml:"output"`
	// Target selects the framework variant ("arduino" or "espidf").
	Target string `yaml:"target"`
	// Author is the attribution placed in the copyright banner of
	// every generated file.
	Author string `yaml:"author"`
	// Exclude is a list of doublestar glob patterns matched against
	// stored relative paths. Matching files and directories are skipped.
	Exclude []string `yaml:"exclude"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Load reads and parses the YAML config at path. A missing file is not an
// error: flags alone are a valid configuration, so Load returns an empty
// Config in that case.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = "lib"
	}
	if cfg.Target == "" {
		cfg.Target = TargetArduino
	}
	if cfg.Author == "" {
		cfg.Author = "site2c users"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors, such as a missing source
// directory or an unknown target framework.
func Validate(cfg *Config) error {
	if cfg.Source == "" {
		return fmt.Errorf("source directory is required (set 'source' in %s or pass --source)", DefaultFile)
	}

	switch cfg.Target {
	case TargetArduino, TargetEspidf:
		// ok
	default:
		return fmt.Errorf("invalid target: %s (allowed: %s, %s)", cfg.Target, TargetArduino, TargetEspidf)
	}

	for _, pat := range cfg.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("invalid exclude pattern: %q", pat)
		}
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level)
	}

	return nil
}
