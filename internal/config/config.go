// Package config loads EduLanding user preferences.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/edulanding/config.yaml
//   - State:  ~/.local/state/edulanding/ (log file)
//
// Only presentation and logging preferences live here; the curriculum itself
// is compiled into the binary and is not configurable.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "edulanding"

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "EDULANDING_CONFIG"

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`  // path, or "-" to disable
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	MarkdownStyle string `yaml:"markdown_style,omitempty"` // glamour style: dark, light, notty, auto
	WordWrap      int    `yaml:"word_wrap,omitempty"`      // 0 = fit the content pane
	SkipWelcome   bool   `yaml:"skip_welcome,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Log LogConfig `yaml:"log,omitempty"`
	UI  UIConfig  `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			File:  DefaultLogPath(),
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
		},
	}
}

// ConfigDir returns the XDG config directory for edulanding.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// StateDir returns the XDG state directory for edulanding.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", appName)
}

// DefaultLogPath returns the default log file path, or "-" when no state
// directory can be determined.
func DefaultLogPath() string {
	dir := StateDir()
	if dir == "" {
		return "-"
	}
	return filepath.Join(dir, appName+".log")
}

// ResolvePath returns the config path using the explicit flag value (highest
// priority), then the EDULANDING_CONFIG env var, then the XDG default.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// LoadFrom reads config from path. A missing file (or empty path) yields
// DefaultConfig.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []string
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}
	if c.UI.WordWrap < 0 {
		errs = append(errs, fmt.Sprintf("ui.word_wrap must be >= 0, got %d", c.UI.WordWrap))
	}
	switch c.UI.MarkdownStyle {
	case "", "dark", "light", "notty", "auto", "dracula", "pink", "tokyo-night", "ascii":
	default:
		errs = append(errs, fmt.Sprintf("ui.markdown_style %q is not a known style", c.UI.MarkdownStyle))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log.level %q must be one of debug, info, warn, error", s)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
