package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Log      LogConfig
	Bindings []BindingConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme      string
	ErrorToken string `mapstructure:"error_token"`
}

// LogConfig holds the log sink settings.
type LogConfig struct {
	Dir   string
	Level string
}

// BindingConfig binds an extra key to a calculator command.
type BindingConfig struct {
	Key     string
	Command string
}

// Themes lists the accepted values of ui.theme.
var Themes = []string{"auto", "dark", "light"}

// DefaultPath returns the config file used when neither an explicit path nor
// URBANCALC_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "urbancalc", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// URBANCALC_. If path is empty, URBANCALC_CONFIG names the file, and failing
// that DefaultPath; a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("ui.error_token", "Error")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	explicit := true
	if path == "" {
		path = os.Getenv("URBANCALC_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
		explicit = false
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("URBANCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that the TOML types alone do not constrain.
func (c Config) Validate() error {
	ok := false
	for _, t := range Themes {
		if c.UI.Theme == t {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("ui.theme: %q is not one of %s", c.UI.Theme, strings.Join(Themes, ", "))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	for i, b := range c.Bindings {
		if b.Key == "" || b.Command == "" {
			return fmt.Errorf("bindings[%d]: key and command are required", i)
		}
	}
	return nil
}

// SlogLevel parses Level, e.g. "debug" or "WARN".
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.Level))
	return l, err
}

// Save writes the provided config to path, creating its directory if needed.
// The TUI settings view uses it to persist the theme.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("URBANCALC_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.error_token", cfg.UI.ErrorToken)
	v.Set("log.dir", cfg.Log.Dir)
	v.Set("log.level", cfg.Log.Level)
	if len(cfg.Bindings) > 0 {
		bs := make([]map[string]any, len(cfg.Bindings))
		for i, b := range cfg.Bindings {
			bs[i] = map[string]any{"key": b.Key, "command": b.Command}
		}
		v.Set("bindings", bs)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
