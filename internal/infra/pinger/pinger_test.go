package pinger

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("register valid pinger", func(t *testing.T) {
		t.Parallel()

		service := New(slog.Default(), time.Second)

		err := service.Register(&mockPinger{name: "test1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := service.GetResult("test1")
		if err != nil {
			t.Fatalf("get result failed: %v", err)
		}

		if !result.ReadyCritical || !result.HealthCritical {
			t.Fatalf("expected pinger to be critical by default, got %+v", result)
		}
	})

	t.Run("register nil pinger", func(t *testing.T) {
		t.Parallel()

		service := New(slog.Default(), time.Second)

		err := service.Register(nil)
		if !errors.Is(err, ErrNilPinger) {
			t.Fatalf("expected %v, got %v", ErrNilPinger, err)
		}
	})

	t.Run("register duplicate pinger", func(t *testing.T) {
		t.Parallel()

		service := New(slog.Default(), time.Second)

		err := service.Register(&mockPinger{name: "test3"})
		if err != nil {
			t.Fatalf("first registration failed: %v", err)
		}

		err = service.Register(&mockPinger{name: "test3"})
		if !errors.Is(err, ErrPingerAlreadyRegistered) {
			t.Fatalf("expected error type %v, got %v", ErrPingerAlreadyRegistered, err)
		}
	})

	t.Run("unknown pinger result", func(t *testing.T) {
		t.Parallel()

		service := New(slog.Default(), time.Second)

		_, err := service.GetResult("nonexistent")
		if !errors.Is(err, ErrPingerNotFound) {
			t.Fatalf("expected ErrPingerNotFound, got %v", err)
		}
	})
}

func TestResult(t *testing.T) {
	t.Parallel()

	ran := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		give        Result
		wantOK      bool
		wantReady   bool
		wantHealthy bool
	}{
		{
			name:        "never ran critical",
			give:        Result{ReadyCritical: true, HealthCritical: true},
			wantOK:      false,
			wantReady:   false,
			wantHealthy: false,
		},
		{
			name:        "success",
			give:        Result{LastRun: ran, ReadyCritical: true, HealthCritical: true},
			wantOK:      true,
			wantReady:   true,
			wantHealthy: true,
		},
		{
			name:        "failure non critical",
			give:        Result{LastRun: ran, LastError: "boom"},
			wantOK:      false,
			wantReady:   true,
			wantHealthy: true,
		},
		{
			name:        "failure ready critical only",
			give:        Result{LastRun: ran, LastError: "boom", ReadyCritical: true},
			wantOK:      false,
			wantReady:   false,
			wantHealthy: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.give.OK(); got != tt.wantOK {
				t.Errorf("OK: expected %v, got %v", tt.wantOK, got)
			}

			if got := tt.give.IsReady(); got != tt.wantReady {
				t.Errorf("IsReady: expected %v, got %v", tt.wantReady, got)
			}

			if got := tt.give.IsHealthy(); got != tt.wantHealthy {
				t.Errorf("IsHealthy: expected %v, got %v", tt.wantHealthy, got)
			}
		})
	}
}

func TestService_Start_Shutdown(t *testing.T) {
	t.Parallel()

	service := New(slog.Default(), 20*time.Millisecond)
	counter := &mockPinger{name: "counter"}

	if err := service.Register(counter); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := service.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	select {
	case <-service.Ready():
	case <-time.After(time.Second):
		t.Fatal("service did not become ready")
	}

	if counter.calls.Load() == 0 {
		t.Fatal("expected first ping to run before ready")
	}

	time.Sleep(100 * time.Millisecond)

	if counter.calls.Load() < 2 {
		t.Fatalf("expected periodic pings, got %d", counter.calls.Load())
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := service.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if err := service.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("second shutdown should be a no-op: %v", err)
	}
}

func TestService_IsReady_IsHealthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		pinger        Pinger
		wantIsReady   bool
		wantIsHealthy bool
	}{
		{
			name:          "normal pinger with error",
			pinger:        &mockPinger{name: "error", shouldError: true},
			wantIsReady:   false,
			wantIsHealthy: false,
		},
		{
			name:          "normal pinger without error",
			pinger:        &mockPinger{name: "success"},
			wantIsReady:   true,
			wantIsHealthy: true,
		},
		{
			name: "non-critical pinger with error",
			pinger: &criticalMockPinger{
				mockPinger: mockPinger{name: "non-critical-error", shouldError: true},
			},
			wantIsReady:   true,
			wantIsHealthy: true,
		},
		{
			name: "ready critical pinger with error",
			pinger: &criticalMockPinger{
				mockPinger:    mockPinger{name: "ready-critical-error", shouldError: true},
				readyCritical: true,
			},
			wantIsReady:   false,
			wantIsHealthy: true,
		},
		{
			name: "health critical pinger with error",
			pinger: &criticalMockPinger{
				mockPinger:     mockPinger{name: "health-critical-error", shouldError: true},
				healthCritical: true,
			},
			wantIsReady:   true,
			wantIsHealthy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := New(slog.Default(), time.Hour)

			if err := service.Register(tt.pinger); err != nil {
				t.Fatalf("register failed: %v", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if err := service.Start(ctx); err != nil {
				t.Fatalf("start failed: %v", err)
			}

			select {
			case <-service.Ready():
			case <-time.After(time.Second):
				t.Fatal("service did not become ready")
			}

			if got := service.IsReady(); got != tt.wantIsReady {
				t.Errorf("IsReady: expected %v, got %v", tt.wantIsReady, got)
			}

			if got := service.IsHealthy(); got != tt.wantIsHealthy {
				t.Errorf("IsHealthy: expected %v, got %v", tt.wantIsHealthy, got)
			}

			results := service.GetAllResults()
			if results[tt.pinger.Name()].LastRun.IsZero() {
				t.Error("expected the pinger to have run")
			}

			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			_ = service.Shutdown(shutdownCtx)
		})
	}
}

func TestService_PingerTimeout(t *testing.T) {
	t.Parallel()

	service := New(slog.Default(), time.Hour)

	fast := &timeoutMockPinger{
		mockPinger: mockPinger{name: "fast", delay: 5 * time.Millisecond},
		timeout:    200 * time.Millisecond,
	}
	slow := &timeoutMockPinger{
		mockPinger: mockPinger{name: "slow", delay: 500 * time.Millisecond},
		timeout:    20 * time.Millisecond,
	}

	for _, p := range []Pinger{fast, slow} {
		if err := service.Register(p); err != nil {
			t.Fatalf("register failed: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := service.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	select {
	case <-service.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("service did not become ready")
	}

	fastResult, _ := service.GetResult("fast")
	if !fastResult.OK() {
		t.Errorf("expected fast pinger to succeed, got %q", fastResult.LastError)
	}

	slowResult, _ := service.GetResult("slow")
	if slowResult.OK() || slowResult.ConsecutiveFailures != 1 {
		t.Errorf("expected slow pinger to time out once, got %+v", slowResult)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	_ = service.Shutdown(shutdownCtx)
}

// mockPinger is a test implementation of Pinger
type mockPinger struct {
	name        string
	shouldError bool
	delay       time.Duration
	calls       atomic.Int32
}

func (m *mockPinger) Name() string {
	return m.name
}

func (m *mockPinger) Ping(ctx context.Context) error {
	m.calls.Add(1)

	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.delay):
		}
	}

	if m.shouldError {
		return errors.New("mock pinger error")
	}

	return nil
}

// criticalMockPinger overrides both critical flags
type criticalMockPinger struct {
	mockPinger

	readyCritical  bool
	healthCritical bool
}

func (m *criticalMockPinger) PingerReadyCritical() bool {
	return m.readyCritical
}

func (m *criticalMockPinger) PingerCritical() bool {
	return m.healthCritical
}

// timeoutMockPinger overrides the ping timeout
type timeoutMockPinger struct {
	mockPinger

	timeout time.Duration
}

func (m *timeoutMockPinger) PingerTimeout() time.Duration {
	return m.timeout
}
