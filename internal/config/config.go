// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional YAML configuration file that supplies
// default CLI behavior. Command-line flags always override config values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default output settings
	Defaults struct {
		Format  string `yaml:"format"`
		Masked  bool   `yaml:"masked"`
		Quiet   bool   `yaml:"quiet"`
		NoColor bool   `yaml:"no_color"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"defaults"`

	// BIN lookup settings
	Lookup struct {
		Enabled        bool   `yaml:"enabled"`
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"lookup"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// built-in defaults with a warning when the file is missing or malformed.
// When configPath is empty the standard locations are searched first.
func LoadConfigOrDefault(configPath string) *Config {
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations and
// returns the first hit, or an empty string when none exists.
func FindConfigFile() string {
	for _, name := range []string{".cardparse.yaml", ".cardparse.yml", "cardparse.yaml"} {
		if fileExists(name) {
			return name
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range []string{".cardparse.yaml", ".cardparse.yml"} {
			path := filepath.Join(home, name)
			if fileExists(path) {
				return path
			}
		}
	}

	return ""
}

func defaultConfig() *Config {
	config := &Config{}
	config.Defaults.Format = "text"
	config.Lookup.URL = "https://lookup.binlist.net"
	config.Lookup.TimeoutSeconds = 10
	return config
}

func validate(config *Config) error {
	switch config.Defaults.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", config.Defaults.Format)
	}
	if config.Lookup.TimeoutSeconds <= 0 {
		return fmt.Errorf("lookup timeout must be positive, got %d", config.Lookup.TimeoutSeconds)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
