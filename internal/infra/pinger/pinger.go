package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/dummy-controller/internal/infra/shutdown"
)

const (
	// defaultPingTimeout is the default timeout for ping operations
	defaultPingTimeout = 1 * time.Second
)

// Optional interface types for type assertions
type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type healthCriticalPinger interface {
	PingerCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}

// Result is the outcome of the latest ping of one check.
type Result struct {
	LastRun             time.Time     `json:"lastRun"`
	Latency             time.Duration `json:"latency"`
	LastError           string        `json:"lastError,omitempty"`
	ConsecutiveFailures int           `json:"consecutiveFailures"`
	ReadyCritical       bool          `json:"readyCritical"`
	HealthCritical      bool          `json:"healthCritical"`
}

// OK reports whether the check has run and its latest ping succeeded.
func (r Result) OK() bool {
	return !r.LastRun.IsZero() && r.LastError == ""
}

// IsReady is false only for a ready-critical check that is not OK.
func (r Result) IsReady() bool {
	return !r.ReadyCritical || r.OK()
}

// IsHealthy is false only for a health-critical check that is not OK.
func (r Result) IsHealthy() bool {
	return !r.HealthCritical || r.OK()
}

// pingerInfo holds pinger instance and its configuration
type pingerInfo struct {
	pinger  Pinger
	timeout time.Duration
}

// Service runs registered pingers periodically and keeps their latest results
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	pingers    map[string]*pingerInfo
	results    map[string]Result
	mu         sync.RWMutex
	ready      chan struct{}
	inShutdown atomic.Bool
	doneCh     chan struct{}
	wg         sync.WaitGroup
}

// New creates a new pinger service with the specified interval
func New(
	logger *slog.Logger,
	interval time.Duration,
) *Service {
	return &Service{
		logger:   logger,
		interval: interval,
		pingers:  make(map[string]*pingerInfo),
		results:  make(map[string]Result),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

// Name returns the name of the pinger service component
func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a check. Checks are ready- and health-critical unless they say otherwise.
func (s *Service) Register(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	name := pinger.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pingers[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	result := Result{
		ReadyCritical:  true,
		HealthCritical: true,
	}

	if rc, ok := pinger.(readyCriticalPinger); ok {
		result.ReadyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := pinger.(healthCriticalPinger); ok {
		result.HealthCritical = hc.PingerCritical()
	}

	timeout := defaultPingTimeout

	if tp, ok := pinger.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		timeout = tp.PingerTimeout()
	}

	s.pingers[name] = &pingerInfo{
		pinger:  pinger,
		timeout: timeout,
	}
	s.results[name] = result

	s.logger.Info("pinger registered",
		"name", name,
		"readyCritical", result.ReadyCritical,
		"healthCritical", result.HealthCritical,
		"timeout", timeout,
	)

	return nil
}

// Start starts the pinger service in a goroutine
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready returns a channel that is closed after the first round of pings
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the pinger service
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "pinger service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down pinger service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "pinger loop exited")
	}

	// Wait for any in-flight ping operations to complete
	s.wg.Wait()

	return nil
}

// GetResult returns the latest result of a single check
func (s *Service) GetResult(name string) (Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[name]
	if !ok {
		return Result{}, fmt.Errorf("get result: %w: %s", ErrPingerNotFound, name)
	}

	return result, nil
}

// GetAllResults returns a copy of every check's latest result
func (s *Service) GetAllResults() map[string]Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.results)
}

// IsReady reports whether every ready-critical check passed its latest ping
func (s *Service) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, result := range s.results {
		if !result.IsReady() {
			return false
		}
	}

	return true
}

// IsHealthy reports whether every health-critical check passed its latest ping
func (s *Service) IsHealthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, result := range s.results {
		if !result.IsHealthy() {
			return false
		}
	}

	return true
}

// run is the main goroutine that runs pingers at intervals
func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "pinger-run")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runPingers(ctx, logger)

	close(s.ready)

	for {
		if s.inShutdown.Load() {
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}

		select {
		case <-ticker.C:
			s.runPingers(ctx, logger)
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// runPingers executes all registered pingers in parallel and waits for them
func (s *Service) runPingers(ctx context.Context, logger *slog.Logger) {
	s.mu.RLock()
	pingers := maps.Clone(s.pingers)
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for name, info := range pingers {
		select {
		case <-ctx.Done():
			return
		default:
		}

		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			pingCtx, cancel := context.WithTimeout(ctx, info.timeout)
			defer cancel()

			start := time.Now()
			err := info.pinger.Ping(pingCtx)
			latency := time.Since(start)

			s.record(name, start, latency, err)

			if err != nil {
				logger.DebugContext(ctx, "pinger error",
					"name", name,
					"latency", latency,
					"reason", err,
				)

				return
			}

			logger.DebugContext(ctx, "pinger success",
				"name", name,
				"latency", latency,
			)
		}()
	}

	wg.Wait()
}

func (s *Service) record(name string, at time.Time, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, ok := s.results[name]
	if !ok {
		return
	}

	result.LastRun = at
	result.Latency = latency

	if err != nil {
		result.LastError = err.Error()
		result.ConsecutiveFailures++
	} else {
		result.LastError = ""
		result.ConsecutiveFailures = 0
	}

	s.results[name] = result
}
