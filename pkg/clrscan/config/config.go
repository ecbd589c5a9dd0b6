// Package config loads optional YAML run configuration. Command-line
// flags override anything set here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML run configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Output     OutputConfig     `yaml:"output"`
	Rules      RulesConfig      `yaml:"rules"`
	Log        LogConfig        `yaml:"log"`
}

// ExtractionConfig mirrors the extraction options. Unset values keep
// their defaults (all true).
type ExtractionConfig struct {
	ExcludeParents               *bool `yaml:"exclude_parents"`
	ExcludeExamples              *bool `yaml:"exclude_examples"`
	CollapseDuplicateFulfillment *bool `yaml:"collapse_duplicate_fulfillment"`
}

// OutputConfig sets rendering defaults.
type OutputConfig struct {
	// Format is "terminal", "json", or "csv".
	Format string `yaml:"format"`
	// ShowDetails toggles per-finding tables in terminal output.
	ShowDetails *bool `yaml:"show_details"`
	// Path is the default export file for json/csv output.
	Path string `yaml:"path"`
}

// RulesConfig filters the registered rule set.
type RulesConfig struct {
	// Disabled names rules excluded from scan runs.
	Disabled []string `yaml:"disabled"`
}

// LogConfig sets logging behavior.
type LogConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "terminal"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates a YAML configuration file. Unset fields keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.Output.Format {
	case "", "terminal", "json", "csv":
	default:
		return cfg, fmt.Errorf("invalid output format: %q", cfg.Output.Format)
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
	return cfg, nil
}

// Disabled reports whether a rule name is disabled.
func (c Config) Disabled(name string) bool {
	for _, d := range c.Rules.Disabled {
		if d == name {
			return true
		}
	}
	return false
}
