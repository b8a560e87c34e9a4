// Package config loads settings for the clif binary.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional YAML file, and explicit overrides (command-line flags).
package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/aretw0/clif/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up when no config file is given explicitly.
const DefaultPath = "clif.yaml"

// Config holds the binary's settings.
type Config struct {
	// Prompt is printed before each read when stdin is a terminal.
	Prompt string `yaml:"prompt" mapstructure:"prompt"`
	// Banner prints the start-up banner when stdout is a terminal.
	Banner bool `yaml:"banner" mapstructure:"banner"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// MaxInputSize limits accepted line length in bytes.
	MaxInputSize int `yaml:"max_input_size" mapstructure:"max_input_size"`
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string `yaml:"metrics_addr" mapstructure:"metrics_addr"`
	// Markdown renders long help pages through a terminal markdown renderer.
	Markdown bool `yaml:"markdown" mapstructure:"markdown"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Prompt:       "> ",
		Banner:       true,
		LogLevel:     "warn",
		MaxInputSize: 4096,
		Markdown:     true,
	}
}

// Load reads path (if non-empty) and applies overrides on top of the defaults.
// A missing file is an error only when required is true.
func Load(path string, required bool, overrides map[string]any) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
			if raw == nil {
				raw = map[string]any{}
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for k, v := range overrides {
		raw[k] = v
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that decode fine but cannot be used.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.MaxInputSize < 0 {
		return fmt.Errorf("invalid config: max_input_size must not be negative, got %d", c.MaxInputSize)
	}
	if c.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(c.MetricsAddr); err != nil {
			return fmt.Errorf("invalid config: metrics_addr: %w", err)
		}
	}
	return nil
}
