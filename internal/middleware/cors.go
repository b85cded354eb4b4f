package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
)

func CORS(log *slog.Logger, allowedOrigins []string) func(http.Handler) http.Handler {
	log.Info("cors configured", "allowedOrigins", allowedOrigins)

	// Empty means everything, which is only sensible locally.
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
