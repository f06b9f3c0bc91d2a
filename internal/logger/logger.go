// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Logger is the process-wide logger; it discards output until Init is called
var Logger = zerolog.Nop()

// SessionID identifies the current run in every log entry
var SessionID string

// Init logs to stderr
func Init(level, format string) {
	InitWithWriter(os.Stderr, level, format)
}

// InitFile logs to path, creating or appending to it. The returned closer
// must be called on exit.
func InitFile(path, level, format string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Color codes make no sense in a file
	if format == "console" {
		Logger = newConsole(f, true, parseLevel(level))
		setGlobal()
		return f, nil
	}

	InitWithWriter(f, level, format)
	return f, nil
}

// InitWithWriter logs to w. Unknown levels fall back to info, unknown
// formats to json.
func InitWithWriter(w io.Writer, level, format string) {
	lvl := parseLevel(level)

	if format == "console" {
		Logger = newConsole(w, false, lvl)
	} else {
		Logger = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	}

	setGlobal()
}

func newConsole(w io.Writer, noColor bool, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(lvl)
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func setGlobal() {
	if SessionID == "" {
		SessionID = uuid.NewString()
	}
	Logger = Logger.With().Str("session", SessionID).Logger()
	zlog.Logger = Logger
}
