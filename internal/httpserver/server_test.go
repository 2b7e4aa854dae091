package httpserver_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/dummy-controller/internal/httpserver"
	"github.com/skillcoder/dummy-controller/internal/infra/appstate"
	"github.com/skillcoder/dummy-controller/internal/infra/pinger"
	"github.com/skillcoder/dummy-controller/internal/logic/controller"
)

type staticHealth controller.Health

func (h staticHealth) Health(context.Context) controller.Health {
	return controller.Health(h)
}

var (
	healthUp = staticHealth{
		Status:  controller.HealthUp,
		Details: map[string]string{"Dummy Custom Resource Definition": "Available"},
	}
	healthDown = staticHealth{
		Status:  controller.HealthDown,
		Details: map[string]string{"Dummy Custom Resource Definition": "Not Available"},
	}
)

func newAppState(t *testing.T, running bool) *appstate.AppState {
	t.Helper()

	logger := slog.Default()
	appState := appstate.New(logger, time.Now(), make(chan os.Signal, 1), pinger.New(logger, time.Second))

	if running {
		require.NoError(t, appState.SetStarting(t.Context()))
		require.NoError(t, appState.SetRunning(t.Context()))
	}

	return appState
}

func doGet(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequestWithContext(t.Context(), http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_Name(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(slog.Default(), newAppState(t, false), healthUp, "")
	require.Equal(t, "http-server", srv.Name())
}

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		giveRunning bool
		giveHealth  staticHealth
		wantCode    int
		wantStatus  controller.HealthStatus
		wantDetail  string
	}{
		{
			name:        "running and kind registered",
			giveRunning: true,
			giveHealth:  healthUp,
			wantCode:    http.StatusOK,
			wantStatus:  controller.HealthUp,
			wantDetail:  "Available",
		},
		{
			name:        "running and kind missing",
			giveRunning: true,
			giveHealth:  healthDown,
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  controller.HealthDown,
			wantDetail:  "Not Available",
		},
		{
			name:        "not running",
			giveRunning: false,
			giveHealth:  healthUp,
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  controller.HealthDown,
			wantDetail:  "Available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httpserver.New(slog.Default(), newAppState(t, tt.giveRunning), tt.giveHealth, "")
			rec := doGet(t, srv.Handler(), "/-/healthz")

			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got controller.Health
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, tt.wantDetail, got.Details["Dummy Custom Resource Definition"])
		})
	}
}

func TestServer_Readyz(t *testing.T) {
	t.Parallel()

	notRunning := httpserver.New(slog.Default(), newAppState(t, false), healthUp, "")
	require.Equal(t, http.StatusServiceUnavailable, doGet(t, notRunning.Handler(), "/-/readyz").Code)

	running := httpserver.New(slog.Default(), newAppState(t, true), healthUp, "")
	require.Equal(t, http.StatusOK, doGet(t, running.Handler(), "/-/readyz").Code)
}

func TestServer_Status(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(slog.Default(), newAppState(t, true), healthUp, "")
	rec := doGet(t, srv.Handler(), "/-/status")

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		State  string                   `json:"state"`
		Checks map[string]pinger.Result `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Equal(t, string(appstate.StateRunning), got.State)
	require.NotNil(t, got.Checks)
}

func TestServer_StartPingShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(slog.Default(), newAppState(t, true), healthUp, "0")
	require.ErrorIs(t, srv.Ping(t.Context()), httpserver.ErrNotReady)

	require.NoError(t, srv.Start(t.Context()))

	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		t.Fatal("server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestMetricsServer(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewMetricsServer(slog.Default(), prometheus.NewRegistry(), "0")
	require.Equal(t, "metrics-server", srv.Name())
	require.False(t, srv.PingerCritical())
	require.ErrorIs(t, srv.Ping(t.Context()), httpserver.ErrNotReady)

	require.NoError(t, srv.Start(t.Context()))

	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		t.Fatal("metrics server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestMetricsServer_Handler(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dummy_controller_test_total",
		Help: "Test counter.",
	})
	registry.MustRegister(counter)
	counter.Add(2)

	srv := httpserver.NewMetricsServer(slog.Default(), registry, "0")

	tests := []struct {
		name       string
		giveMethod string
		wantStatus int
	}{
		{name: "get serves metrics", giveMethod: http.MethodGet, wantStatus: http.StatusOK},
		{name: "post not allowed", giveMethod: http.MethodPost, wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequestWithContext(t.Context(), tt.giveMethod, "/metrics", http.NoBody)
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				require.Contains(t, rec.Body.String(), "dummy_controller_test_total 2")
			}
		})
	}
}
