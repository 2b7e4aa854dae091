package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/dummy-controller/internal/infra/shutdown"
)

const defaultMetricsPort = "9090"

// MetricsServer exposes the reconcile and queue metrics on a dedicated port.
type MetricsServer struct {
	logger     *slog.Logger
	port       string
	router     chi.Router
	server     *http.Server
	ready      chan struct{}
	inShutdown atomic.Bool
}

// NewMetricsServer serves GET /metrics from gatherer on the given port.
// A nil gatherer means prometheus.DefaultGatherer.
func NewMetricsServer(logger *slog.Logger, gatherer prometheus.Gatherer, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		ErrorLog:      slog.NewLogLogger(logger.Handler(), slog.LevelError),
		ErrorHandling: promhttp.ContinueOnError,
	}))

	return &MetricsServer{
		logger: logger,
		port:   port,
		router: router,
		ready:  make(chan struct{}),
	}
}

// Handler exposes the metrics router.
func (s *MetricsServer) Handler() http.Handler {
	return s.router
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

// Name returns the name of the metrics server component.
func (s *MetricsServer) Name() string {
	return "metrics-server"
}

// Ping returns nil when the server is ready to serve.
func (s *MetricsServer) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("metrics %w", ErrNotReady)
	}
}

// PingerCritical keeps a broken metrics endpoint from failing liveness.
func (s *MetricsServer) PingerCritical() bool {
	return false
}

// Start starts the metrics HTTP server in a goroutine.
func (s *MetricsServer) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "metrics server is shutting down, skipping start")

		return nil
	}

	addr := ":" + s.port
	s.server = newHTTPServer(addr, s.router)

	listener, err := listen(ctx, addr)
	if err != nil {
		return fmt.Errorf("listen metrics tcp: %w", err)
	}

	s.logger.InfoContext(ctx, "metrics server listening", "addr", listener.Addr().String())

	go func() {
		close(s.ready)

		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "metrics server error", "reason", err)
		}
	}()

	return nil
}

// Ready returns a channel that is closed when the metrics server is ready.
func (s *MetricsServer) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "metrics server is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down metrics server")

	return shutdownHTTPServer(ctx, s.server, "metrics server")
}
