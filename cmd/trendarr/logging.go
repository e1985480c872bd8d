package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// logger is replaced once the config is loaded.
var logger = newLogger(os.Stderr, "info", "auto")

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseLogFormat(s string, w io.Writer) charmlog.Formatter {
	switch strings.ToLower(s) {
	case "text":
		return charmlog.TextFormatter
	case "logfmt":
		return charmlog.LogfmtFormatter
	case "json":
		return charmlog.JSONFormatter
	default:
		if isTerminal(w) {
			return charmlog.TextFormatter
		}
		return charmlog.LogfmtFormatter
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLogger returns a slog.Logger backed by a charm log handler on w.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(parseLogLevel(level)),
		Formatter:       parseLogFormat(format, w),
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return slog.New(handler)
}
