package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/dummy-controller/internal/infra/metrics"
)

const (
	sourceSweep = "sweep"

	// overdueGrace is how long past its scheduled time a sweep may lag before Ping fails.
	overdueGrace = time.Minute
)

// Service enqueues every cached Dummy key on a cron schedule, so keys whose
// last reconcile failed are retried even when no watch event arrives.
type Service struct {
	logger        *slog.Logger
	schedule      Schedule
	dummies       DummyLister
	queue         Enqueuer
	synced        <-chan struct{}
	now           func() time.Time
	ready         chan struct{}
	doneCh        chan struct{}
	inShutdown    atomic.Bool
	mu            sync.RWMutex
	lastSweepTime time.Time
	nextSweepTime time.Time
	exhausted     bool
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for scheduling and overdue checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a new sweeper. Sweeping starts only once synced is closed.
func New(
	logger *slog.Logger,
	schedule Schedule,
	dummies DummyLister,
	queue Enqueuer,
	synced <-chan struct{},
	opts ...Option,
) *Service {
	s := &Service{
		logger:   logger,
		schedule: schedule,
		dummies:  dummies,
		queue:    queue,
		synced:   synced,
		now:      time.Now,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the name of the sweeper component
func (s *Service) Name() string {
	return "sweeper"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "sweeper is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Ping fails before the caches sync, once the schedule has no next occurrence,
// and when the pending sweep is overdue.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
	default:
		return ErrNotReady
	}

	s.mu.RLock()
	exhausted, next := s.exhausted, s.nextSweepTime
	s.mu.RUnlock()

	if exhausted {
		return ErrScheduleExhausted
	}

	if !next.IsZero() && s.now().After(next.Add(overdueGrace)) {
		return fmt.Errorf("%w: scheduled at %s, last sweep at %s",
			ErrSweepOverdue, next.Format(time.RFC3339), s.LastSweepTime().Format(time.RFC3339))
	}

	return nil
}

// PingerCritical keeps a stalled sweeper from failing liveness; watch events still drive reconciles.
func (s *Service) PingerCritical() bool {
	return false
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "sweeper is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down sweeper")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before sweeper loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "sweeper loop exited")
	}

	return nil
}

// LastSweepTime returns when the last sweep ran; zero before the first one.
func (s *Service) LastSweepTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSweepTime
}

// RunCommand waits for the caches to sync and then sweeps at every scheduled occurrence.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("sweeper", "RunCommand")

	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "context done before caches synced")

		return
	case <-s.synced:
	}

	close(s.ready)

	for {
		now := s.now()
		next := s.schedule.Next(now)

		if next.IsZero() {
			s.mu.Lock()
			s.exhausted = true
			s.mu.Unlock()

			logger.ErrorContext(ctx, "sweep schedule has no next occurrence, stopping sweeper")

			return
		}

		s.mu.Lock()
		s.nextSweepTime = next
		s.mu.Unlock()

		logger.DebugContext(ctx, "next sweep scheduled", "at", next)

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating sweeper loop")

			return
		case <-timer.C:
		}

		count := s.SweepCommand(ctx)
		logger.InfoContext(ctx, "sweep done", "enqueued", count)
	}
}

// SweepCommand enqueues the key of every cached Dummy and returns how many were enqueued.
func (s *Service) SweepCommand(ctx context.Context) int {
	dummies := s.dummies.List()

	for _, dummy := range dummies {
		s.queue.Add(dummy.Key())
		metrics.RecordEnqueued(sourceSweep)
	}

	s.mu.Lock()
	s.lastSweepTime = s.now()
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "enqueued cached dummies", "count", len(dummies))

	return len(dummies)
}
