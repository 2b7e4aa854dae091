package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/dynamic/dynamicinformer"
	"k8s.io/client-go/informers"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/cache"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// ErrNotSynced is returned by Ping until both caches have completed their initial list.
var ErrNotSynced = errors.New("informer caches not synced")

// Config holds the informer settings.
type Config struct {
	// Namespace limits both watches; empty watches all namespaces.
	Namespace string
	// ResyncPeriod applies to Dummies; Deployments resync at twice this period.
	ResyncPeriod time.Duration
}

// Watcher owns the Dummy and Deployment informers and their caches.
type Watcher struct {
	logger             *slog.Logger
	dynamicFactory     dynamicinformer.DynamicSharedInformerFactory
	kubeFactory        informers.SharedInformerFactory
	dummyInformer      cache.SharedIndexInformer
	deploymentInformer cache.SharedIndexInformer
	dummies            *Store[*v1beta1.Dummy]
	deployments        *Store[*appsv1.Deployment]
	ready              chan struct{}
	stopCh             chan struct{}
	inShutdown         atomic.Bool
}

// New builds both informers. Handlers must be added before Start.
func New(
	logger *slog.Logger,
	kubeClient kubernetes.Interface,
	dynamicClient dynamic.Interface,
	cfg Config,
) (*Watcher, error) {
	dynamicFactory := dynamicinformer.NewFilteredDynamicSharedInformerFactory(
		dynamicClient,
		cfg.ResyncPeriod,
		cfg.Namespace,
		nil,
	)

	dummyInformer := dynamicFactory.ForResource(v1beta1.GroupVersionResource).Informer()

	err := dummyInformer.SetTransform(toDummy)
	if err != nil {
		return nil, fmt.Errorf("set dummy transform: %w", err)
	}

	kubeFactory := informers.NewSharedInformerFactoryWithOptions(
		kubeClient,
		2*cfg.ResyncPeriod,
		informers.WithNamespace(cfg.Namespace),
	)

	deploymentInformer := kubeFactory.Apps().V1().Deployments().Informer()

	return &Watcher{
		logger:             logger,
		dynamicFactory:     dynamicFactory,
		kubeFactory:        kubeFactory,
		dummyInformer:      dummyInformer,
		deploymentInformer: deploymentInformer,
		dummies:            NewStore[*v1beta1.Dummy](dummyInformer.GetStore()),
		deployments:        NewStore[*appsv1.Deployment](deploymentInformer.GetStore()),
		ready:              make(chan struct{}),
		stopCh:             make(chan struct{}),
	}, nil
}

// Name returns the name of the watcher component
func (w *Watcher) Name() string {
	return "watcher"
}

// Dummies is the typed cache of Dummy objects.
func (w *Watcher) Dummies() *Store[*v1beta1.Dummy] {
	return w.dummies
}

// Deployments is the typed cache of Deployments.
func (w *Watcher) Deployments() *Store[*appsv1.Deployment] {
	return w.deployments
}

func (w *Watcher) AddDummyHandler(handler cache.ResourceEventHandler) error {
	_, err := w.dummyInformer.AddEventHandler(handler)
	if err != nil {
		return fmt.Errorf("add dummy handler: %w", err)
	}

	return nil
}

func (w *Watcher) AddDeploymentHandler(handler cache.ResourceEventHandler) error {
	_, err := w.deploymentInformer.AddEventHandler(handler)
	if err != nil {
		return fmt.Errorf("add deployment handler: %w", err)
	}

	return nil
}

// Start runs both informers and closes Ready once their caches are synced.
func (w *Watcher) Start(ctx context.Context) error {
	if w.inShutdown.Load() {
		w.logger.InfoContext(ctx, "watcher is shutting down, skipping start")

		return nil
	}

	w.dynamicFactory.Start(w.stopCh)
	w.kubeFactory.Start(w.stopCh)

	go func() {
		w.logger.InfoContext(ctx, "waiting for informer caches to sync")

		if !cache.WaitForCacheSync(w.stopCh, w.dummyInformer.HasSynced, w.deploymentInformer.HasSynced) {
			w.logger.WarnContext(ctx, "informer caches were not synced before stop")

			return
		}

		close(w.ready)
		w.logger.InfoContext(ctx, "informer caches synced")
	}()

	return nil
}

func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

func (w *Watcher) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.ready:
		return nil
	default:
		return ErrNotSynced
	}
}

// Shutdown stops the informers and waits for their goroutines to exit.
func (w *Watcher) Shutdown(ctx context.Context) error {
	if !w.inShutdown.CompareAndSwap(false, true) {
		w.logger.ErrorContext(ctx, "watcher is already shutting down, skipping shutdown")

		return nil
	}

	w.logger.InfoContext(ctx, "shutting down watcher")
	close(w.stopCh)

	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)

		w.dynamicFactory.Shutdown()
		w.kubeFactory.Shutdown()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before informers stopped: %w", ctx.Err())
	case <-doneCh:
	}

	w.logger.InfoContext(ctx, "watcher shut downed")

	return nil
}
