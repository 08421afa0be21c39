// Package logging builds leveled loggers with charmbracelet/log and wires
// them to task store events.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todoapp-go/internal/config"
	"github.com/nibzard/todoapp-go/internal/todo"
)

// DefaultPrefix is the prefix printed before every log line.
const DefaultPrefix = "todoapp"

// Options holds configuration for a logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          DefaultPrefix,
	}
}

// OptionsFromConfig converts config values to logger options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Level = ParseLevel(cfg.LogLevel)
	opts.Formatter = ParseFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	return opts
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// Open creates the logger described by cfg. When cfg.LogFile is set the
// file is opened for appending (parent directories are created); otherwise
// output goes to fallback. The returned closer is never nil.
func Open(cfg *config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	opts := OptionsFromConfig(cfg)
	if cfg.LogFile == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return New(fallback, opts), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, opts), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ObserveStore logs every mutation applied to store at debug level.
// The returned function stops observing.
func ObserveStore(logger *log.Logger, store *todo.Store) (stop func()) {
	return store.Subscribe(func(ev todo.Event) {
		switch ev.Kind {
		case todo.EventAdded:
			logger.Debug("task added", "id", ev.Task.ID, "title", ev.Task.Title)
		case todo.EventToggled:
			logger.Debug("task toggled", "id", ev.Task.ID, "complete", ev.Task.IsComplete)
		default:
			logger.Debug("task event", "kind", string(ev.Kind), "id", ev.Task.ID)
		}
	})
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
