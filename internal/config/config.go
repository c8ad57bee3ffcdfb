// Package config holds folio's runtime settings. Values come from the
// environment (optionally seeded from a .env file) and are then
// overridden by command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Config represents the full folio configuration
type Config struct {
	Log     LogConfig `envPrefix:"LOG_"`
	UI      UIConfig
	Content ContentConfig
}

// LogConfig controls the structured log output. The terminal belongs to
// the UI, so logs only go to a file.
type LogConfig struct {
	File  string `env:"FILE"`
	Level string `env:"LEVEL" envDefault:"info"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	Animate           bool          `env:"ANIMATE" envDefault:"true"`
	AnimationDuration time.Duration `env:"ANIMATION_DURATION" envDefault:"200ms"`
	FPS               int           `env:"FPS" envDefault:"60"`
	Mouse             bool          `env:"MOUSE" envDefault:"true"`
	AltScreen         bool          `env:"ALT_SCREEN" envDefault:"true"`
	MarkdownStyle     string        `env:"MARKDOWN_STYLE" envDefault:"dark"`
}

// ContentConfig adjusts the compiled-in content
type ContentConfig struct {
	// ResumePath replaces the document link's target when set
	ResumePath string `env:"RESUME_PATH"`
}

// EnvPrefix is prepended to every variable name
const EnvPrefix = "FOLIO_"

var (
	// ErrInvalidFPS is returned for a non-positive frame rate
	ErrInvalidFPS = errors.New("fps must be positive")
	// ErrInvalidDuration is returned for a negative animation duration
	ErrInvalidDuration = errors.New("animation duration must not be negative")
	// ErrInvalidLevel is returned for an unknown log level
	ErrInvalidLevel = errors.New("unknown log level")
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Animate:           true,
			AnimationDuration: 200 * time.Millisecond,
			FPS:               60,
			Mouse:             true,
			AltScreen:         true,
			MarkdownStyle:     "dark",
		},
	}
}

// Duration returns the effective animation length: zero when animation
// is turned off.
func (c *Config) Duration() time.Duration {
	if !c.UI.Animate {
		return 0
	}
	return c.UI.AnimationDuration
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w %q", ErrInvalidLevel, c.Log.Level)
	}
	return level, nil
}

// Validate checks the config for values the UI cannot work with
func (c *Config) Validate() error {
	var errs []error
	if c.UI.FPS <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidFPS, c.UI.FPS))
	}
	if c.UI.AnimationDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDuration, c.UI.AnimationDuration))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
