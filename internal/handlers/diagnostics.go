package handlers

import (
	"context"
	"net/http"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
)

//go:generate mockgen -source=diagnostics.go -destination=diagnostics_mock.go -package=handlers

// DiagnosticsReporter builds the diagnostics report.
type DiagnosticsReporter interface {
	Report(ctx context.Context) (*models.Diagnostics, error)
}

// Pinger checks that a dependency answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of the health endpoint
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewDiagnosticsHandler returns record counts and collaborator health.
// @Summary Diagnostics
// @Tags diagnostics
// @Produce json
// @Success 200 {object} models.Diagnostics
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /diagnostics [get]
// @Security BearerAuth
func NewDiagnosticsHandler(svc DiagnosticsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Report(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build diagnostics", "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewHealthHandler reports whether the database answers.
// @Summary Health check
// @Tags diagnostics
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Failure 503 {object} handlers.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Warnw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
