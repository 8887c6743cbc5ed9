// Package logging builds the charmbracelet loggers used by every frontend.
// Terminal frontends own stdout, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// DefaultFile is the log file name inside ~/.pong.
const DefaultFile = "pong.log"

// Prefix is the root logger prefix.
const Prefix = "pong"

// Categories used across the module.
const (
	CategorySim     = "sim"
	CategoryTUI     = "tui"
	CategorySSH     = "ssh"
	CategoryWindow  = "window"
	CategoryStorage = "storage"
	CategoryAudio   = "audio"
)

// ParseVerbosity maps a verbosity name onto a log level.
// It accepts fatal, error, warning, info and verbose as well as the
// charmbracelet names (debug, warn).
func ParseVerbosity(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verbose":
		return log.DebugLevel, nil
	case "warning":
		return log.WarnLevel, nil
	case "":
		return log.InfoLevel, nil
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: unknown verbosity %q", name)
	}
	return level, nil
}

// New opens the configured log file for appending and returns a logger
// writing to it. The closer releases the file.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level, err := ParseVerbosity(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.File
	if path == "" {
		path = config.DataPath(DefaultFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return NewWriter(f, level), f, nil
}

// NewWriter returns a logger writing to w at the given level.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Category returns a sub-logger whose prefix names the subsystem,
// e.g. "pong/sim".
func Category(l *log.Logger, name string) *log.Logger {
	if prefix := l.GetPrefix(); prefix != "" {
		return l.WithPrefix(prefix + "/" + name)
	}
	return l.WithPrefix(name)
}
