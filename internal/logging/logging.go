// Package logging provides structured logging for ghgfocus built on zerolog.
//
// Loggers travel on the context: command entry points build a logger with
// NewLogger, attach it via logger.WithContext, and library code retrieves it
// with FromContext. Every request gets a ULID trace ID so log lines from one
// invocation can be correlated.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output types for log destinations.
const (
	outputStderr = "stderr"
	outputStdout = "stdout"
	outputFile   = "file"
)

// Log formats.
const (
	formatConsole = "console"
	formatJSON    = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error).
	Level string
	// Format selects "console" (human-readable) or "json" output.
	Format string
	// Output selects the destination: "stderr", "stdout", or "file".
	Output string
	// File is the log file path, used when Output is "file".
	File string
	// Caller enables caller annotation on every event.
	Caller bool
}

// Result holds a constructed logger together with file-output bookkeeping so
// callers can report where logs went and close handles on shutdown.
type Result struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a zerolog.Logger from cfg.
//
// An unparseable level falls back to info. A file output that cannot be
// opened falls back to stderr with FallbackUsed set, so the CLI can warn the
// user instead of failing the whole command over a log destination.
func NewLogger(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	result := Result{}

	var out io.Writer
	switch cfg.Output {
	case outputFile:
		file, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
			out = os.Stderr
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
			out = file
		}
	case outputStdout:
		out = os.Stdout
	case outputStderr, "":
		out = os.Stderr
	default:
		out = os.Stderr
	}

	if cfg.Format != formatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    result.UsingFile,
		}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logger = logger.Caller()
	}
	result.Logger = logger.Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where file logging is going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = io.WriteString(w, "Logging to "+path+"\n")
}

// PrintFallbackWarning tells the user that file logging was unavailable.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = io.WriteString(w, "Warning: log file unavailable, logging to stderr: "+reason+"\n")
}
