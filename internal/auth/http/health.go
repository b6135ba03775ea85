package http

import (
	"net/http"
	"time"

	"github.com/acadcopilot/copilot/internal/auth/store"
	"github.com/acadcopilot/copilot/pkg/authsdk"
	"github.com/acadcopilot/copilot/pkg/httpx"
	"github.com/acadcopilot/copilot/pkg/slogx"
)

// health answers the liveness and readiness probes.
type health struct {
	startTime time.Time
	version   string
	store     store.Store
}

func (h health) response(status string) authsdk.HealthResponse {
	return authsdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
		Version: h.version,
	}
}

// Livez godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get]
func (h health) Livez(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, h.response("ok"))
}

// Readyz godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and the database connection status
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	authsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get]
func (h health) Readyz(w http.ResponseWriter, r *http.Request) {
	resp := h.response("ok")
	resp.Checks = &authsdk.HealthChecks{Database: "ok"}
	code := http.StatusOK

	// Ping errors stay in the log, probes only see that the database is down.
	if err := h.store.Ping(r.Context()); err != nil {
		slogx.FromContext(r.Context()).Error("readiness check failed", "err", err)
		resp.Status = "degraded"
		resp.Checks.Database = "unavailable"
		code = http.StatusServiceUnavailable
	}

	httpx.WriteJSON(w, code, resp)
}
