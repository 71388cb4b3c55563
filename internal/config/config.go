// Package config resolves the task file location and user settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "journal"

	// SettingsFile is the optional TOML settings filename inside Dir.
	SettingsFile = "config.toml"

	// DefaultTaskFile is the task file name used in the home directory.
	DefaultTaskFile = ".journal-list.json"

	// EnvFile overrides the task file location.
	EnvFile = "JOURNAL_FILE"
)

// ColorMode controls whether list output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode: %s", s)
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File is the task file path. Empty until resolved.
	File string

	// Lock guards every store transaction with a lock file.
	Lock bool

	// Color selects colored list output.
	Color ColorMode

	// Location is the time zone dates are displayed in.
	Location *time.Location

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// settings mirrors config.toml.
type settings struct {
	File  string `toml:"file"`
	Lock  *bool  `toml:"lock"`
	Color string `toml:"color"`
}

// New creates a Config from the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/journal or $HOME/.config/journal.
// Settings are read from config.toml when present, then $JOURNAL_FILE
// overrides the task file.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:      dir,
		Color:    ColorAuto,
		Location: time.Local,
	}

	if err := cfg.load(); err != nil {
		return nil, err
	}
	if env := os.Getenv(EnvFile); env != "" {
		cfg.File = env
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultFile returns the task file in the user's home directory.
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find the task file: %w", err)
	}
	return filepath.Join(home, DefaultTaskFile), nil
}

// SettingsPath returns the path to the TOML settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// ResolveFile settles the task file path. A non-empty override wins over
// anything already configured; with neither, the home directory default is
// used. A leading ~/ is expanded.
func (c *Config) ResolveFile(override string) error {
	if override != "" {
		c.File = override
	}
	if c.File == "" {
		file, err := DefaultFile()
		if err != nil {
			return err
		}
		c.File = file
	}

	file, err := expandHome(c.File)
	if err != nil {
		return err
	}
	c.File = file
	return nil
}

func (c *Config) load() error {
	path := c.SettingsPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var s settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}

	if s.File != "" {
		c.File = s.File
	}
	if s.Lock != nil {
		c.Lock = *s.Lock
	}
	if s.Color != "" {
		mode, err := ParseColorMode(s.Color)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		c.Color = mode
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
