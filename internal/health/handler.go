// Package health serves liveness and readiness probes.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/photoupload/service/internal/response"
)

// ServiceName is reported by the liveness probe.
const ServiceName = "Photo Upload API"

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ReadinessCheck is satisfied by anything that can report whether its backend is reachable.
type ReadinessCheck interface {
	Ready(ctx context.Context) error
}

// Handler serves /health and /ready.
type Handler struct {
	check   ReadinessCheck
	now     func() time.Time
	timeout time.Duration
}

// NewHandler creates a health Handler probing check on /ready.
func NewHandler(check ReadinessCheck) *Handler {
	return &Handler{check: check, now: time.Now, timeout: 2 * time.Second}
}

type healthBody struct {
	Status    string `json:"status"    example:"OK"`
	Timestamp string `json:"timestamp" example:"2026-10-17T12:00:00.000Z"`
	Service   string `json:"service"   example:"Photo Upload API"`
}

// Health godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 while the process is serving requests.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthBody
//	@Router			/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, healthBody{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(timestampLayout),
		Service:   ServiceName,
	})
}

// Ready godoc
//
//	@Summary		Readiness probe
//	@Description	Returns 200 when object storage is reachable, 503 otherwise.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	response.Envelope
//	@Router			/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.check.Ready(ctx); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("storage readiness check failed")
		response.ServiceUnavailable(w, "Storage unavailable")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
