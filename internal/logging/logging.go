package logging

import (
	"io"
	"log/slog"

	"camp-admin/backend/internal/config"
)

// New returns the logger for env: readable text locally, JSON elsewhere.
func New(w io.Writer, env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// Err is the attribute every error is logged under.
func Err(err error) slog.Attr {
	return slog.String("error", err.Error())
}
