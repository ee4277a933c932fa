package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, as in
// KMPD_ADDR=:9090.
const EnvPrefix = "KMPD_"

// Config holds service configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `koanf:"addr"`

	// Pattern is the initial pattern on the page.
	Pattern string `koanf:"pattern"`

	// Width is the viewport width used when a client doesn't
	// send one.
	Width float64 `koanf:"width"`

	// AllowAllOrigins turns on permissive CORS for the HTTP API
	// and lets websockets connect from any origin.
	AllowAllOrigins bool `koanf:"allow_all_origins"`

	// Verbose turns on util.Logging.
	Verbose bool `koanf:"verbose"`
}

// DefaultConfig returns the defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:    ":8080",
		Pattern: "abacaba",
		Width:   800,
	}
}

// LoadConfig starts with the defaults, then reads the given YAML file
// (if the filename isn't empty), then overlays environment variables
// (KMPD_*).
func LoadConfig(filename string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if filename != "" {
		if _, err := os.Stat(filename); err != nil {
			return nil, fmt.Errorf("accessing config %s: %w", filename, err)
		}
		if err := k.Load(file.Provider(filename), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", filename, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive")
	}
	if MaxWidth < c.Width {
		return fmt.Errorf("width must be at most %v", MaxWidth)
	}
	return nil
}
