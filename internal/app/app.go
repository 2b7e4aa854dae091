package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	apiextensionsclientset "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/skillcoder/dummy-controller/internal/adapters/inbound/watch"
	"github.com/skillcoder/dummy-controller/internal/adapters/outbound/k8s"
	"github.com/skillcoder/dummy-controller/internal/config"
	"github.com/skillcoder/dummy-controller/internal/httpserver"
	"github.com/skillcoder/dummy-controller/internal/infra/cronparser"
	"github.com/skillcoder/dummy-controller/internal/infra/shutdown"
	"github.com/skillcoder/dummy-controller/internal/logic/controller"
	"github.com/skillcoder/dummy-controller/internal/logic/sweeper"
)

type App struct {
	logger     *slog.Logger
	appState   appstater
	signals    signalHandler
	components []component
}

// New creates a new application instance with all dependencies wired.
// Components are started in the order they are listed and shut down in reverse.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers component,
) (*App, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clients, err := newClients(kubeConfig)
	if err != nil {
		return nil, err
	}

	watcher, err := watch.New(logger.With("component", "watcher"), clients.kube, clients.dynamic, watch.Config{
		Namespace:    cfg.Namespace,
		ResyncPeriod: cfg.ResyncPeriod,
	})
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	queue := controller.NewQueue()

	err = watcher.AddDummyHandler(
		controller.NewDummyEventHandler(logger.With("component", "dummy-handler"), queue),
	)
	if err != nil {
		return nil, fmt.Errorf("register dummy handler: %w", err)
	}

	err = watcher.AddDeploymentHandler(
		controller.NewDeploymentEventHandler(
			logger.With("component", "deployment-handler"),
			queue,
			cfg.KindName,
			watcher.Dummies(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("register deployment handler: %w", err)
	}

	repo := k8s.New(logger.With("component", "k8s-adapter"), clients.kube, clients.dynamic, clients.crd)

	controllerService := controller.New(
		logger.With("component", "controller"),
		repo,
		queue,
		watcher.Dummies(),
		watcher.Deployments(),
		watcher.Ready(),
		controller.Config{
			KindName:       cfg.KindName,
			OperatorLabels: cfg.OperatorLabels,
		},
	)

	metricsServer := httpserver.NewMetricsServer(
		logger.With("component", "metrics-server"),
		prometheus.DefaultGatherer,
		cfg.MetricsPort,
	)
	httpServer := httpserver.New(logger.With("component", "http-server"), appState, controllerService, cfg.HTTPPort)

	pinged := []pingedComponent{metricsServer, httpServer, watcher, controllerService}

	if cfg.SweepSchedule != "" {
		schedule, err := cronparser.Parse(cfg.SweepSchedule)
		if err != nil {
			return nil, fmt.Errorf("parse sweep schedule: %w", err)
		}

		pinged = append(pinged, sweeper.New(
			logger.With("component", "sweeper"),
			schedule,
			watcher.Dummies(),
			queue,
			watcher.Ready(),
		))
	}

	components := make([]component, 0, len(pinged)+1)

	for _, c := range pinged {
		err = appState.RegisterPinger(c)
		if err != nil {
			return nil, fmt.Errorf("register %s pinger: %w", c.Name(), err)
		}

		components = append(components, c)
	}

	// the pinger service starts after every component it checks
	components = append(components, pingers)

	return &App{
		logger:     logger,
		appState:   appState,
		signals:    shutdown.New(logger, appState),
		components: components,
	}, nil
}

type clients struct {
	kube    kubernetes.Interface
	dynamic dynamic.Interface
	crd     apiextensionsclientset.Interface
}

func newClients(kubeConfig *rest.Config) (clients, error) {
	kube, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return clients{}, fmt.Errorf("create clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(kubeConfig)
	if err != nil {
		return clients{}, fmt.Errorf("create dynamic client: %w", err)
	}

	crd, err := apiextensionsclientset.NewForConfig(kubeConfig)
	if err != nil {
		return clients{}, fmt.Errorf("create apiextensions clientset: %w", err)
	}

	return clients{
		kube:    kube,
		dynamic: dynamicClient,
		crd:     crd,
	}, nil
}

// Run starts the application and blocks until a termination signal or context end.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	err := a.appState.SetStarting(ctx)
	if err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	readyChans := make([]<-chan struct{}, 0, len(a.components))

	for _, c := range a.components {
		err = c.Start(ctx)
		if err != nil {
			cancel()

			return a.shutdown(originCtx, fmt.Errorf("start %s: %w", c.Name(), err))
		}

		err = a.appState.RegisterShutdowner(c)
		if err != nil {
			cancel()

			return a.shutdown(originCtx, fmt.Errorf("register %s shutdowner: %w", c.Name(), err))
		}

		a.logger.InfoContext(ctx, "component started", "component", c.Name())

		readyChans = append(readyChans, c.Ready())
	}

	select {
	case <-ctx.Done():
		a.logger.InfoContext(ctx, "context done before all components were ready")

		return a.shutdown(originCtx, nil)
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	}

	if ctx.Err() == nil {
		err = a.appState.SetRunning(ctx)
		if err != nil {
			cancel()

			return a.shutdown(originCtx, fmt.Errorf("set running application state: %w", err))
		}
	}

	<-ctx.Done()

	return a.shutdown(originCtx, nil)
}

func (a *App) shutdown(ctx context.Context, cause error) error {
	a.logger.InfoContext(ctx, "shutting down application")

	err := a.appState.Shutdown(ctx)
	if err != nil {
		if cause != nil {
			return fmt.Errorf("%w; shutdown: %w", cause, err)
		}

		return fmt.Errorf("shutdown: %w", err)
	}

	return cause
}

// allChannelsClose returns a channel that is closed once every given channel is
// closed, or as soon as ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	for _, ch := range chans {
		wg.Add(1)

		go func() {
			defer wg.Done()

			select {
			case <-ch:
			case <-ctx.Done():
			}
		}()
	}

	go func() {
		wg.Wait()

		if ctx.Err() != nil {
			logger.DebugContext(ctx, "stopped waiting for ready channels", "reason", ctx.Err())
		}

		close(out)
	}()

	return out
}
