package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/dummy-controller/internal/infra/appstate"
	"github.com/skillcoder/dummy-controller/internal/infra/pinger"
	"github.com/skillcoder/dummy-controller/internal/infra/shutdown/mocks"
)

type failingPinger struct{}

func (failingPinger) Name() string               { return "failing" }
func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func newTestAppState(t *testing.T) (*appstate.AppState, *pinger.Service) {
	t.Helper()

	logger := slog.Default()
	pingerService := pinger.New(logger, time.Hour)

	return appstate.New(logger, time.Now(), make(chan os.Signal, 1), pingerService), pingerService
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.Equal(t, appstate.StateStarting, s.GetState())
	})

	t.Run("starting to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.Equal(t, appstate.StateRunning, s.GetState())
	})

	t.Run("running to terminating", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.SetTerminating(t.Context()))
		require.Equal(t, appstate.StateTerminating, s.GetState())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestAppState(t)
		require.ErrorIs(t, s.SetRunning(t.Context()), appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.Error(t, s.SetStarting(t.Context()))
		require.ErrorIs(t, s.SetTerminating(t.Context()), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	startTime := time.Now()
	s := appstate.New(slog.Default(), startTime, make(chan os.Signal, 1), pinger.New(slog.Default(), time.Hour))

	require.Equal(t, appstate.StateInit, s.GetState())
	require.Equal(t, startTime, s.GetStartTime())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(t.Context()))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(t.Context()))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())
	require.Greater(t, s.GetUptime(), time.Duration(0))
}

func TestAppState_FailingCheck(t *testing.T) {
	t.Parallel()

	s, pingerService := newTestAppState(t)
	require.NoError(t, s.RegisterPinger(failingPinger{}))
	require.Error(t, s.RegisterPinger(failingPinger{}))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, pingerService.Start(ctx))
	<-pingerService.Ready()

	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))

	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())
	require.Equal(t, "down", s.GetAllResults()["failing"].LastError)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	s, _ := newTestAppState(t)

	first := mocks.NewMockShutdowner(t)
	first.EXPECT().Name().Return("first").Once()
	first.EXPECT().Shutdown(mock.Anything).Return(nil).Once()

	second := mocks.NewMockShutdowner(t)
	second.EXPECT().Name().Return("second").Once()
	second.EXPECT().Shutdown(mock.Anything).Return(context.DeadlineExceeded).Once()

	require.NoError(t, s.RegisterShutdowner(first))
	require.NoError(t, s.RegisterShutdowner(second))

	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))

	err := s.Shutdown(t.Context())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, appstate.StateTerminated, s.GetState())

	// Shutdown again should be idempotent
	require.NoError(t, s.Shutdown(t.Context()))
	require.Equal(t, appstate.StateTerminated, s.GetState())

	late := mocks.NewMockShutdowner(t)
	late.EXPECT().Name().Return("late").Once()
	require.ErrorIs(t, s.RegisterShutdowner(late), appstate.ErrInvalidStateTransition)
}
