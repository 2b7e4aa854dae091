package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/dummy-controller/internal/infra/pinger"
	"github.com/skillcoder/dummy-controller/internal/logic/controller"
)

type statusResponse struct {
	State     string                   `json:"state"`
	Uptime    string                   `json:"uptime"`
	StartTime time.Time                `json:"startTime"`
	UptimeSec float64                  `json:"uptimeSeconds"`
	Checks    map[string]pinger.Result `json:"checks"`
}

// handleHealthz reports the controller health. The status is DOWN whenever the
// application itself is not healthy.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	health := s.health.Health(ctx)
	if !s.appState.IsHealthy() {
		health.Status = controller.HealthDown
	}

	code := http.StatusOK
	if health.Status != controller.HealthUp {
		code = http.StatusServiceUnavailable
	}

	s.writeJSON(w, r, code, health)
	logger.DebugContext(ctx, "health check", "status", health.Status)
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	if !s.appState.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		logger.DebugContext(ctx, "readiness check failed")

		return
	}

	w.WriteHeader(http.StatusOK)
	logger.DebugContext(ctx, "readiness check passed")
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	uptime := s.appState.GetUptime()

	s.writeJSON(w, r, http.StatusOK, statusResponse{
		State:     string(s.appState.GetState()),
		Uptime:    uptime.String(),
		StartTime: s.appState.GetStartTime(),
		UptimeSec: uptime.Seconds(),
		Checks:    s.appState.GetAllResults(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"reason", err,
		)
	}
}
