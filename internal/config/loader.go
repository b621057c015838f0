package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const projectConfigFile = ".sentiment.yaml"

// Loader resolves configuration from files and the environment.
type Loader struct {
	paths  []string
	getenv func(string) string
	dotenv bool
}

// NewLoader searches the user config dir, then ./.sentiment.yaml.
// Later files override earlier ones.
func NewLoader() *Loader {
	return &Loader{
		paths:  []string{UserConfigPath(), projectConfigFile},
		getenv: os.Getenv,
		dotenv: true,
	}
}

// UserConfigPath is where the per-user config file lives.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sentiment", "config.yaml")
}

// Load builds the configuration: defaults, then files (only customPath when
// set), then .env and SENTIMENT_* variables. It also returns the files that
// were actually read. The result is not validated; callers apply their own
// overrides first and then call Validate.
func (l *Loader) Load(customPath string) (*Config, []string, error) {
	cfg := DefaultConfig()
	var used []string

	if customPath != "" {
		if err := loadFile(cfg, expandPath(customPath)); err != nil {
			return nil, nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
		used = append(used, customPath)
	} else {
		for _, p := range l.paths {
			p = expandPath(p)
			err := loadFile(cfg, p)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load config from %s: %w", p, err)
			}
			used = append(used, p)
		}
	}

	if l.dotenv {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("could not read .env file", slog.Any("error", err))
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.Normalize()
	return cfg, used, nil
}

// loadFile decodes path over cfg so absent keys keep their current values.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	envMappings := []struct {
		name  string
		apply func(string) error
	}{
		{"SENTIMENT_BACKEND", func(v string) error { cfg.Backend = v; return nil }},
		{"SENTIMENT_ENDPOINT", func(v string) error { cfg.Endpoint = v; return nil }},
		{"SENTIMENT_TIMEOUT", func(v string) error { return parseDuration(v, &cfg.Timeout) }},
		{"SENTIMENT_THEME", func(v string) error { cfg.UI.Theme = v; return nil }},
		{"SENTIMENT_TOAST_DURATION", func(v string) error { return parseDuration(v, &cfg.UI.ToastDuration) }},
		{"SENTIMENT_LOG_LEVEL", func(v string) error { cfg.Log.Level = v; return nil }},
		{"SENTIMENT_LOG_FILE", func(v string) error { cfg.Log.File = v; return nil }},
		{"SENTIMENT_NO_COLOR", func(v string) error { return parseBool(v, &cfg.UI.NoColor) }},
		// https://no-color.org: any non-empty value disables color
		{"NO_COLOR", func(string) error { cfg.UI.NoColor = true; return nil }},
	}

	for _, m := range envMappings {
		v := strings.TrimSpace(l.getenv(m.name))
		if v == "" {
			continue
		}
		if err := m.apply(v); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
	}
	return nil
}

func parseDuration(v string, out *time.Duration) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*out = d
	return nil
}

func parseBool(v string, out *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*out = b
	return nil
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
