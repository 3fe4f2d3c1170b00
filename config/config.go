// Package config provides configuration loading and management for Modelspec.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Modelspec configuration
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Discovery  DiscoveryConfig  `yaml:"discovery"`
}

// ValidationConfig configures rule-check behavior
type ValidationConfig struct {
	// StaleAfterDays is the metadata review freshness window in days (default: 90)
	StaleAfterDays int `yaml:"staleAfterDays"`
	// Workers is the number of directory groups validated concurrently (default: 4)
	Workers int `yaml:"workers"`
	// Acronyms is the allow-list of uppercase tokens the abbreviation
	// heuristic does not report
	Acronyms []string `yaml:"acronyms"`
}

// DiscoveryConfig configures file discovery
type DiscoveryConfig struct {
	// ModelsDir is the conventional model-holding subfolder name (default: models)
	ModelsDir string `yaml:"modelsDir"`
	// SharedDirs are folder names reserved for shared type/enum definitions
	SharedDirs []string `yaml:"sharedDirs"`
	// Exclude is a list of doublestar glob patterns for directories to skip
	// during the flat fallback scan
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			StaleAfterDays: 90,
			Workers:        4,
			Acronyms: []string{
				"ID", "URL", "URI", "API", "HTTP", "HTTPS", "JSON", "YAML",
				"XML", "UUID", "SQL", "HTML", "CSS", "CSV", "PDF", "UTC",
				"ISO", "CRUD", "REST", "DDD",
			},
		},
		Discovery: DiscoveryConfig{
			ModelsDir:  "models",
			SharedDirs: []string{"shared", "shared-types", "enums"},
			Exclude: []string{
				"**/bin", "**/obj", "**/node_modules", "**/vendor",
				"**/dist", "**/target", "**/.*",
			},
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Validation.StaleAfterDays <= 0 {
		return fmt.Errorf("validation.staleAfterDays must be positive")
	}
	if c.Validation.Workers <= 0 {
		return fmt.Errorf("validation.workers must be positive")
	}
	if c.Discovery.ModelsDir == "" {
		return fmt.Errorf("discovery.modelsDir is required")
	}
	if len(c.Discovery.SharedDirs) == 0 {
		return fmt.Errorf("discovery.sharedDirs must not be empty")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Validation
	if other.Validation.StaleAfterDays != 0 {
		c.Validation.StaleAfterDays = other.Validation.StaleAfterDays
	}
	if other.Validation.Workers != 0 {
		c.Validation.Workers = other.Validation.Workers
	}
	if len(other.Validation.Acronyms) > 0 {
		c.Validation.Acronyms = other.Validation.Acronyms
	}

	// Discovery
	if other.Discovery.ModelsDir != "" {
		c.Discovery.ModelsDir = other.Discovery.ModelsDir
	}
	if len(other.Discovery.SharedDirs) > 0 {
		c.Discovery.SharedDirs = other.Discovery.SharedDirs
	}
	if len(other.Discovery.Exclude) > 0 {
		c.Discovery.Exclude = other.Discovery.Exclude
	}
}
