package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenLogger builds the diagnostic logger. The TUI owns stdout, so logs go to
// a file; "-" discards them. The returned closer must be called on exit.
func (c Config) OpenLogger() (*slog.Logger, io.Closer, error) {
	if c.Log.File == "" || c.Log.File == "-" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(c.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.SlogLevel()})
	return slog.New(h), f, nil
}
