package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
)

// HealthCheck checks one dependency.
type HealthCheck func(ctx context.Context) error

// HealthResponse reports readiness
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
	// Per-dependency result
	Checks map[string]string `json:"checks"`
}

// NewHealthHandler returns an HTTP handler running every check with a short timeout.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} handlers.HealthResponse "All dependencies reachable"
// @Failure 503 {object} handlers.HealthResponse "A dependency is unreachable"
// @Router /healthz [get]
func NewHealthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK

		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Log.Warnw("health check failed", "dependency", name, "error", err)
				resp.Checks[name] = "unavailable"
				resp.Status = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		writeJSON(w, status, resp)
	}
}
