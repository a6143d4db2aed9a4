// Package logging builds the charmbracelet logger shared by the asc command.
// Output goes to stderr, or to a size-rotated file when one is configured.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level      string // debug, info, warn, error; empty means info
	File       string // optional path; enables rotation and JSON output
	MaxSizeMB  int
	MaxBackups int
	Prefix     string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and a Closer that releases its output. The Closer is
// never nil.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		parsed, err := log.ParseLevel(strings.ToLower(s))
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "asc"
	}

	if strings.TrimSpace(opts.File) == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          prefix,
		})
		return logger, nopCloser{}, nil
	}

	w := &lj.Logger{
		Filename:   opts.File,
		MaxSize:    positiveOr(opts.MaxSizeMB, 10),
		MaxBackups: positiveOr(opts.MaxBackups, 3),
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
		Formatter:       log.JSONFormatter,
	})
	return logger, w, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
