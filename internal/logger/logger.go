package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON logger the service writes to stdout. LOG_LEVEL
// (debug/info/warn/error) overrides the info default.
func New() *slog.Logger {
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
