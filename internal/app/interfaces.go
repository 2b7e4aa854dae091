package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/dummy-controller/internal/infra/appstate"
	"github.com/skillcoder/dummy-controller/internal/infra/pinger"
	"github.com/skillcoder/dummy-controller/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	GetAllResults() map[string]pinger.Result
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	GetStartTime() time.Time
	GetState() appstate.State
	GetUptime() time.Duration
	IsHealthy() bool
	IsReady() bool
	Shutdown(ctx context.Context) error
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
}

// component is a long-running part of the application with a managed lifecycle
type component interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}

// pingedComponent is a component that also reports its own health
type pingedComponent interface {
	component
	pinger.Pinger
}
