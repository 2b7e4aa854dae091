package appstate

import (
	"context"

	"github.com/skillcoder/dummy-controller/internal/infra/pinger"
	"github.com/skillcoder/dummy-controller/internal/infra/shutdown"
)

// pingerServer is an internal interface for pinger management
type pingerServer interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
	Register(pinger pinger.Pinger) error
	GetAllResults() map[string]pinger.Result
	IsReady() bool
	IsHealthy() bool
}
