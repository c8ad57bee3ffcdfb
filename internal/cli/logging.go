package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/friskycodeur/folio/internal/config"
)

// newLogger builds the process logger. The terminal belongs to the TUI, so
// logs go to cfg.Log.File when set and are discarded otherwise.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Log.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}

// logger returns the configured logger and remembers the file to close
func (a *App) logger() (*slog.Logger, error) {
	logger, closer, err := newLogger(a.Config)
	if err != nil {
		return nil, err
	}
	a.logClose = closer
	logger.Debug("configuration loaded",
		"env_file", a.EnvFile,
		"animate", a.Config.UI.Animate,
		"mouse", a.Config.UI.Mouse,
		"markdown_style", a.Config.UI.MarkdownStyle,
	)
	return logger, nil
}
