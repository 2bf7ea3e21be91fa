// Package health provides the health check sub-router mounted at /health.
//
// Routes (relative to the mount point):
//
//	GET /       service status, instance id and uptime
//	GET /live   liveness check (plain text)
//	GET /ready  readiness, runs the registered checks
package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/information-sharing-networks/cicd-demo/internal/api"
)

// checkTimeout bounds the time spent running all readiness checks
const checkTimeout = 5 * time.Second

// Check is a named readiness check. Check returns nil when the dependency is usable.
type Check struct {
	Name  string
	Check func(ctx context.Context) error
}

// StatusResponse is returned by GET /health
type StatusResponse struct {
	Status        string `json:"status" example:"healthy"`
	InstanceID    string `json:"instance_id" example:"0b6f3c1e-8d1f-4a39-9a0e-5b0f6f0c2d7a"`
	UptimeSeconds int64  `json:"uptime_seconds" example:"3600"`
	Timestamp     string `json:"timestamp" example:"2024-01-28T10:00:00Z"`
}

// ReadinessResponse is returned by GET /health/ready
type ReadinessResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks,omitempty"`
}

type handler struct {
	instanceID string
	startedAt  time.Time
	checks     []Check
	now        func() time.Time
}

// NewRouter returns the health router. checks are run by the readiness endpoint.
func NewRouter(checks ...Check) chi.Router {
	h := &handler{
		instanceID: uuid.NewString(),
		startedAt:  time.Now(),
		checks:     checks,
		now:        time.Now,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleStatus)
	r.Get("/live", h.handleLive)
	r.Get("/ready", h.handleReady)
	return r
}

// handleStatus godoc
//
//	@Summary		Service status
//	@Description	Returns the service status, the id of the responding instance and its uptime.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	StatusResponse
//	@Router			/health [get]
func (h *handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	api.RespondWithJSONPayload(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		InstanceID:    h.instanceID,
		UptimeSeconds: int64(now.Sub(h.startedAt).Seconds()),
		Timestamp:     now.UTC().Format(time.RFC3339),
	})
}

// handleLive godoc
//
//	@Summary		Health (liveness) Check
//	@Description	Check if the HTTP service is alive and responding.
//	@Tags			Health
//	@Produce		plain
//	@Success		200	{string}	string	"OK"
//	@Router			/health/live [get]
func (h *handler) handleLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReady godoc
//
//	@Summary		Readiness Check
//	@Description	Checks if the service is ready to accept traffic
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	ReadinessResponse	"status ready"
//	@Failure		503	{object}	ReadinessResponse	"status not ready"
//	@Router			/health/ready [get]
func (h *handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	failed := make(map[string]string)
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			failed[c.Name] = err.Error()
		}
	}

	if len(failed) > 0 {
		api.RespondWithJSONPayload(w, http.StatusServiceUnavailable, ReadinessResponse{
			Status: "not ready",
			Checks: failed,
		})
		return
	}

	api.RespondWithJSONPayload(w, http.StatusOK, ReadinessResponse{Status: "ready"})
}

// DirCheck reports an error when dir is not a readable directory.
func DirCheck(name, dir string) Check {
	return Check{
		Name: name,
		Check: func(ctx context.Context) error {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("%s unavailable", dir)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}
			return nil
		},
	}
}
