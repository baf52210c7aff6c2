package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/masq"
)

// redactedFields are attribute keys whose values never reach the log output.
var redactedFields = []string{"email", "Email", "password", "secret", "token"}

// NewLogger returns a slog.Logger configured from GO_ENV and LOG_LEVEL.
// Production uses JSON handler; otherwise text handler.
// LOG_LEVEL may be: debug, info, warn, error (default: info).
func NewLogger() *slog.Logger {
	return newLogger(os.Stdout, os.Getenv("GO_ENV"), os.Getenv("LOG_LEVEL"))
}

func newLogger(w io.Writer, env, levelName string) *slog.Logger {
	if env == "" {
		env = "development"
	}
	level := slog.LevelInfo
	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: redactAttr()}
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// redactAttr masks speaker PII and credentials, including fields of logged structs.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(redactedFields))
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
