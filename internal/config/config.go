package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "commtower.yaml"

// Config represents the top-level configuration structure parsed from commtower.yaml.
type Config struct {
	// Plot contains the dimensions of the plot of land.
	Plot PlotConfig `yaml:"plot"`
	// Simulation controls how towers are placed.
	Simulation SimulationConfig `yaml:"simulation"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// PlotConfig holds the plot dimensions.
type PlotConfig struct {
	// Rows is the vertical dimension (length) of the plot.
	Rows int `yaml:"rows"`
	// Cols is the horizontal dimension (width) of the plot.
	Cols int `yaml:"cols"`
}

// SimulationConfig controls a simulation run.
type SimulationConfig struct {
	// Towers is the number of towers to build; 0 fills the plot.
	Towers int `yaml:"towers"`
	// MaxTowers bounds a fill run; 0 disables the bound.
	MaxTowers int `yaml:"max_towers"`
	// Seed seeds the random source; 0 picks a random seed.
	Seed uint64 `yaml:"seed"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads and decodes the YAML file at path, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors such as non-positive plot
// dimensions or an unknown logging level.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Plot.Rows <= 0 || config.Plot.Cols <= 0 {
		return fmt.Errorf("plot dimensions must be positive integers (got %dx%d)", config.Plot.Rows, config.Plot.Cols)
	}
	if config.Simulation.Towers < 0 {
		return fmt.Errorf("simulation towers must be >= 0 (got %d)", config.Simulation.Towers)
	}
	if config.Simulation.MaxTowers < 0 {
		return fmt.Errorf("simulation max_towers must be >= 0 (got %d)", config.Simulation.MaxTowers)
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Plot.Rows == 0 {
		config.Plot.Rows = 10
	}
	if config.Plot.Cols == 0 {
		config.Plot.Cols = 10
	}
	if config.Simulation.MaxTowers == 0 && config.Simulation.Towers == 0 {
		config.Simulation.MaxTowers = 1_000_000
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}
