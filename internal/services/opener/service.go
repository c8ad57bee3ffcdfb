// Package opener hands profile links to the operating system: URLs and
// mailto: targets go to the platform's default handler, local documents
// are resolved to absolute paths first. Targets can also be copied to the
// system clipboard.
package opener

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/friskycodeur/folio/internal/domain"
)

// Service opens and copies link targets
type Service struct {
	runner CommandRunner
	goos   string
	copy   func(string) error
	stat   func(string) (os.FileInfo, error)
	logger *slog.Logger
}

// Option configures a Service
type Option func(*Service)

// WithRunner replaces the command runner
func WithRunner(r CommandRunner) Option {
	return func(s *Service) { s.runner = r }
}

// WithPlatform overrides runtime.GOOS when choosing the opener command
func WithPlatform(goos string) Option {
	return func(s *Service) { s.goos = goos }
}

// WithClipboard replaces the clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(s *Service) { s.copy = write }
}

// WithStat replaces os.Stat for local documents
func WithStat(stat func(string) (os.FileInfo, error)) Option {
	return func(s *Service) { s.stat = stat }
}

// NewService creates a new opener service
func NewService(logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		runner: &ExecRunner{},
		goos:   runtime.GOOS,
		copy:   clipboard.WriteAll,
		stat:   os.Stat,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Command returns the program and arguments that open target on goos
func Command(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{target}, nil
	default:
		return "", nil, ErrUnsupported
	}
}

// IsLocal reports whether target is a filesystem path rather than a URL
func IsLocal(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return true
	}
	// a single letter scheme is a Windows drive
	return len(u.Scheme) <= 1
}

// Resolve returns what will be handed to the opener for link
func (s *Service) Resolve(link domain.Link) (string, error) {
	target := link.Target()
	if target == "" {
		return "", &OpenError{Op: "open", Err: ErrEmptyTarget}
	}
	if !IsLocal(target) {
		return target, nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", &OpenError{Op: "open", Target: target, Err: err}
	}
	if _, err := s.stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", &OpenError{Op: "open", Target: abs, Err: ErrMissingFile}
		}
		return "", &OpenError{Op: "open", Target: abs, Err: err}
	}
	return abs, nil
}

// Open launches the platform handler for link
func (s *Service) Open(ctx context.Context, link domain.Link) error {
	target, err := s.Resolve(link)
	if err != nil {
		s.logger.Warn("link not opened", "label", link.Label, "error", err)
		return err
	}

	name, args, err := Command(s.goos, target)
	if err != nil {
		return &OpenError{Op: "open", Target: target, Err: err}
	}

	s.logger.Info("opening link", "label", link.Label, "target", target, "command", name)
	if err := s.runner.Run(ctx, name, args...); err != nil {
		s.logger.Error("opener failed", "target", target, "error", err)
		return &OpenError{Op: "open", Target: target, Err: err}
	}
	return nil
}

// Copy writes link's target to the system clipboard. Local documents are
// copied as given, without resolving.
func (s *Service) Copy(link domain.Link) error {
	target := link.Target()
	if target == "" {
		return &OpenError{Op: "copy", Err: ErrEmptyTarget}
	}
	if err := s.copy(target); err != nil {
		s.logger.Warn("clipboard write failed", "target", target, "error", err)
		return &OpenError{Op: "copy", Target: target, Err: err}
	}
	s.logger.Debug("copied link", "label", link.Label)
	return nil
}
