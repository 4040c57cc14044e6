// Package config loads the settings of plessvar from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"src.pless.dev/pkg/variant"
)

// Config holds the settings. Command-line flags take precedence over all of
// them.
type Config struct {
	// Culture is a BCP 47 tag selecting the format provider. Empty means the
	// invariant culture.
	Culture string `yaml:"culture"`
	// DB is the path of the property store.
	DB string `yaml:"db"`
	// Log is a file to write debug log to.
	Log string `yaml:"log"`
	// Format is the format string used when none is given on the command
	// line.
	Format string `yaml:"format"`
	// Table forces the aligned table output even when stdout is not a
	// terminal.
	Table bool `yaml:"table"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{}
}

// DefaultPath returns the path of the configuration file in the user's
// config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot find config directory: %w", err)
	}
	return filepath.Join(dir, "pless", "config.yaml"), nil
}

// DefaultDBPath returns the path of the property store in the user's config
// directory.
func DefaultDBPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot find config directory: %w", err)
	}
	return filepath.Join(dir, "pless", "props.db"), nil
}

// Load reads the configuration at path. A missing file yields the default
// configuration. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("error opening configuration: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing configuration %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := variant.CultureByName(c.Culture); err != nil {
		return fmt.Errorf("culture: %w", err)
	}
	if c.Format != "" {
		if _, err := variant.FromFloat64(0).FormatString(c.Format); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}
	return nil
}

// Save writes the configuration to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}
	return nil
}

// Provider returns the format provider named by Culture.
func (c *Config) Provider() (variant.FormatProvider, error) {
	culture, err := variant.CultureByName(c.Culture)
	if err != nil {
		return nil, err
	}
	return culture, nil
}
