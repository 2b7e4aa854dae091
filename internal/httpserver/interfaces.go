package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/dummy-controller/internal/infra/appstate"
	"github.com/skillcoder/dummy-controller/internal/infra/pinger"
	"github.com/skillcoder/dummy-controller/internal/logic/controller"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllResults() map[string]pinger.Result
}

// healthReporter reports the controller health shown on /-/healthz
type healthReporter interface {
	Health(ctx context.Context) controller.Health
}
