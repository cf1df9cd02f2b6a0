package logger

import (
	"log/slog"
	"os"
)

// New builds the JSON logger every component shares. The service attribute
// keeps log lines attributable when several services feed one collector.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "joyeria"))
}
