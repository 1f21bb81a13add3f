package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

// Pinger verifica a disponibilidade de uma dependência, como o banco de dados
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"time":     time.Now().UTC().Format(time.RFC3339),
			"database": "ok",
		}
		code := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Healthcheck: banco de dados indisponível")
				status["database"] = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, code, status)
	})
}
