package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
	"github.com/skillcoder/dummy-controller/internal/infra/metrics"
)

const (
	resultSkipped = "skipped"
	resultCreated = "created"
	resultEdited  = "edited"
	resultNoop    = "noop"
	resultFailed  = "failed"
)

// Config holds the values the reconcile engine needs from the operator configuration.
type Config struct {
	// KindName is the primary kind display name, used as label key and owner kind.
	KindName string
	// OperatorLabels are attached to every emitted event.
	OperatorLabels map[string]string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service is the reconcile engine. A single worker drains the queue, so no two
// reconciles ever run at the same time.
type Service struct {
	logger         *slog.Logger
	repo           Repository
	queue          *Queue
	dummies        DummyLister
	deployments    DeploymentLister
	synced         <-chan struct{}
	kindName       string
	operatorLabels map[string]string
	now            func() time.Time
	ready          chan struct{}
	doneCh         chan struct{}
	inShutdown     atomic.Bool
}

// New creates a new controller service. The worker starts consuming only once
// synced is closed.
func New(
	logger *slog.Logger,
	repo Repository,
	queue *Queue,
	dummies DummyLister,
	deployments DeploymentLister,
	synced <-chan struct{},
	cfg Config,
	opts ...Option,
) *Service {
	s := &Service{
		logger:         logger,
		repo:           repo,
		queue:          queue,
		dummies:        dummies,
		deployments:    deployments,
		synced:         synced,
		kindName:       cfg.KindName,
		operatorLabels: cfg.OperatorLabels,
		now:            time.Now,
		ready:          make(chan struct{}),
		doneCh:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the name of the controller component
func (s *Service) Name() string {
	return "dummy-controller"
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "controller service is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Ping fails while the caches are not synced or the custom resource kind is not registered.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
	default:
		return fmt.Errorf("controller service is not ready: %w", ErrNotSynced)
	}

	registered, err := s.repo.IsKindRegisteredQuery(ctx, s.kindName)
	if err != nil {
		return fmt.Errorf("check kind registration: %w", err)
	}

	if !registered {
		return fmt.Errorf("%w: %s", ErrKindNotRegistered, s.kindName)
	}

	return nil
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "controller service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "controller service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down controller service")

	// RunCommand exits when its context is cancelled
	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before controller loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "controller loop exited")
	}

	return nil
}

// RunCommand waits for the caches to sync and then processes work items until ctx is done.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("controller", "RunCommand")

	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "context done before caches synced")

		return
	case <-s.synced:
	}

	close(s.ready)

	logger.InfoContext(ctx, "starting dummy controller")

	for s.ProcessNextItem(ctx) {
	}

	logger.InfoContext(ctx, "terminating main controller loop")
}

// ProcessNextItem takes one key from the queue and reconciles it.
// It returns false once the queue can no longer be read.
func (s *Service) ProcessNextItem(ctx context.Context) bool {
	key, err := s.queue.Take(ctx)
	if err != nil {
		s.logger.InfoContext(ctx, "queue take interrupted", "reason", err)

		return false
	}

	metrics.SetQueueDepth(s.queue.Len())

	start := time.Now()
	result, err := s.reconcile(ctx, key)

	metrics.RecordReconcile(result, time.Since(start))

	if err != nil {
		s.logReconcileError(ctx, key, err)
	}

	return true
}

// ReconcileCommand runs one reconcile pass for key.
func (s *Service) ReconcileCommand(ctx context.Context, key string) error {
	_, err := s.reconcile(ctx, key)

	return err
}

func (s *Service) reconcile(ctx context.Context, key string) (string, error) {
	logger := s.logger.With("controller", "ReconcileCommand", "key", key)

	dummy, ok := s.dummies.Get(key)
	if !ok {
		logger.InfoContext(ctx, "dummy resource not in cache")

		return resultSkipped, nil
	}

	deployment, found := s.findDeployment(dummy)
	if !found {
		err := s.createCommand(ctx, logger, dummy)
		if err != nil {
			return resultFailed, err
		}

		return resultCreated, nil
	}

	template := PodTemplateSpec(s.kindName, dummy)
	if IsDesiredDeployment(deployment, template, dummy.Spec.Replicas) {
		logger.DebugContext(ctx, "deployment matches desired state")

		return resultNoop, nil
	}

	err := s.editCommand(ctx, logger, dummy, template)
	if err != nil {
		return resultFailed, err
	}

	return resultEdited, nil
}

// findDeployment scans every cached Deployment; fine for the small number of
// objects this controller manages.
func (s *Service) findDeployment(dummy *v1beta1.Dummy) (*appsv1.Deployment, bool) {
	for _, deployment := range s.deployments.List() {
		if deployment.Name == dummy.Name && deployment.Namespace == dummy.Namespace {
			return deployment, true
		}
	}

	return nil, false
}

func (s *Service) createCommand(
	ctx context.Context,
	logger *slog.Logger,
	dummy *v1beta1.Dummy,
) error {
	err := s.repo.CreateDeploymentCommand(ctx, Deployment(s.kindName, dummy))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDeployment, err)
	}

	logger.InfoContext(ctx, "deployment created")

	return s.recordChange(ctx, dummy, ActionCreating)
}

func (s *Service) editCommand(
	ctx context.Context,
	logger *slog.Logger,
	dummy *v1beta1.Dummy,
	template corev1.PodTemplateSpec,
) error {
	err := s.repo.EditDeploymentCommand(ctx, dummy, template)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEditDeployment, err)
	}

	logger.InfoContext(ctx, "deployment edited")

	return s.recordChange(ctx, dummy, ActionEditing)
}

// recordChange bumps the status and emits the audit event for a create or edit.
func (s *Service) recordChange(ctx context.Context, dummy *v1beta1.Dummy, action string) error {
	err := s.repo.PatchStatusCommand(ctx, UpdateStatus(dummy))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatchStatus, err)
	}

	err = s.repo.EmitEventCommand(ctx, GenerateEvent(dummy, action, s.operatorLabels, s.now()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEmitEvent, err)
	}

	return nil
}

func (s *Service) logReconcileError(ctx context.Context, key string, err error) {
	var existsTarget alreadyExists
	if errors.As(err, &existsTarget) {
		s.logger.WarnContext(ctx, "reconcile raced with an existing object", "key", key, "reason", err)

		return
	}

	var conflictTarget conflict
	if errors.As(err, &conflictTarget) {
		s.logger.WarnContext(ctx, "reconcile hit a conflict", "key", key, "reason", err)

		return
	}

	s.logger.ErrorContext(ctx, "reconcile error", "key", key, "reason", err)
}
