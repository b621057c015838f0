package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/idilsaglam/sentiment/internal/sentiment"
)

const (
	BackendRemote = "remote"
	BackendVader  = "vader"
)

// Config holds the complete application configuration
type Config struct {
	Backend  string        `yaml:"backend"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"` // 0 means no timeout
	UI       UIConfig      `yaml:"ui"`
	Log      LogConfig     `yaml:"log"`
}

type UIConfig struct {
	Theme         string        `yaml:"theme"` // classic|neon|mono
	NoColor       bool          `yaml:"no_color"`
	ToastDuration time.Duration `yaml:"toast_duration"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
	File  string `yaml:"file"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Backend:  BackendRemote,
		Endpoint: sentiment.DefaultEndpoint,
		UI: UIConfig{
			Theme:         "classic",
			ToastDuration: 3 * time.Second,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Normalize lowercases the enumerated settings.
func (c *Config) Normalize() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendRemote:
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint: %w", err)
		}
		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("invalid endpoint: %q must be an absolute URL", c.Endpoint)
		}
	case BackendVader:
	default:
		return fmt.Errorf("invalid backend: %s (must be one of: remote, vader)", c.Backend)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if c.UI.ToastDuration < 0 {
		return fmt.Errorf("ui.toast_duration must be non-negative")
	}

	validThemes := map[string]bool{"classic": true, "neon": true, "mono": true}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s (must be one of: classic, neon, mono)", c.UI.Theme)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Log.Level)
	}
	return nil
}
