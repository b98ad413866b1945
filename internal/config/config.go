package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds options for one build.
type Config struct {
	// StagingDir is the root under which generated artifacts are written.
	// Each scene gets its own sub-directory that is recreated on every build.
	StagingDir string `toml:"staging_dir"`
	// MaxMenuItems is the page size used when splitting menus.
	MaxMenuItems int `toml:"max_menu_items"`
	// SyncedBitsBudget is the upper bound on synced parameter bits.
	SyncedBitsBudget int `toml:"synced_bits_budget"`
	// ForceExplicitValues forces the explicit-values convention on every state.
	ForceExplicitValues bool `toml:"force_explicit_values"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the default build configuration.
func DefaultConfig() Config {
	return Config{
		StagingDir:       "_generated",
		MaxMenuItems:     8,
		SyncedBitsBudget: 256,
		LogLevel:         "info",
	}
}

// LoadFile reads a TOML options file on top of DefaultConfig.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML options on top of DefaultConfig.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.MaxMenuItems < 2 {
		return fmt.Errorf("max_menu_items must be at least 2, got %d", c.MaxMenuItems)
	}

	if c.SyncedBitsBudget <= 0 {
		return errors.New("synced_bits_budget must be positive")
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the configured slog level, falling back to info.
func (c Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// ParseLevel maps a level name onto a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// LevelFromFlags returns the level selected by the verbose and quiet flags.
// Verbose wins over quiet.
func LevelFromFlags(verbose, quiet bool, fallback slog.Level) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return fallback
	}
}

// Marshal encodes the configuration as TOML.
func Marshal(c Config) ([]byte, error) {
	return toml.Marshal(c)
}
