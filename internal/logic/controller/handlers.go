package controller

import (
	"fmt"
	"log/slog"

	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/tools/cache"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
	"github.com/skillcoder/dummy-controller/internal/infra/metrics"
)

const (
	sourceDummy      = "dummy"
	sourceDeployment = "deployment"
)

// DummyEventHandler turns Dummy notifications into work items.
// Status-only updates are ignored so the controller's own status patches do
// not trigger another reconcile.
type DummyEventHandler struct {
	logger *slog.Logger
	queue  enqueuer
}

// NewDummyEventHandler creates the ingestion handler for the primary kind.
func NewDummyEventHandler(logger *slog.Logger, queue enqueuer) *DummyEventHandler {
	return &DummyEventHandler{
		logger: logger.With("component", "dummy-event-handler"),
		queue:  queue,
	}
}

var _ cache.ResourceEventHandler = (*DummyEventHandler)(nil)

func (h *DummyEventHandler) OnAdd(obj any, _ bool) {
	dummy, ok := obj.(*v1beta1.Dummy)
	if !ok {
		h.logger.Warn("unexpected object type on add", "type", typeName(obj))

		return
	}

	h.logger.Info("dummy added", "key", dummy.Key())
	h.enqueue(dummy.Key())
}

func (h *DummyEventHandler) OnUpdate(oldObj, newObj any) {
	oldDummy, ok := oldObj.(*v1beta1.Dummy)
	if !ok {
		h.logger.Warn("unexpected object type on update", "type", typeName(oldObj))

		return
	}

	newDummy, ok := newObj.(*v1beta1.Dummy)
	if !ok {
		h.logger.Warn("unexpected object type on update", "type", typeName(newObj))

		return
	}

	if newDummy.Spec.Equal(oldDummy.Spec) {
		return
	}

	h.logger.Info("dummy updated", "key", newDummy.Key())
	h.enqueue(newDummy.Key())
}

func (h *DummyEventHandler) OnDelete(obj any) {
	dummy, ok := unwrapTombstone(obj).(*v1beta1.Dummy)
	if !ok {
		h.logger.Warn("unexpected object type on delete", "type", typeName(obj))

		return
	}

	h.logger.Info("dummy deleted", "key", dummy.Key())
}

func (h *DummyEventHandler) enqueue(key string) {
	h.queue.Add(key)
	metrics.RecordEnqueued(sourceDummy)
}

// DeploymentEventHandler enqueues the owning Dummy when its Deployment drifts or disappears.
type DeploymentEventHandler struct {
	logger   *slog.Logger
	queue    enqueuer
	kindName string
	dummies  DummyLister
}

// NewDeploymentEventHandler creates the ingestion handler for the child kind.
func NewDeploymentEventHandler(
	logger *slog.Logger,
	queue enqueuer,
	kindName string,
	dummies DummyLister,
) *DeploymentEventHandler {
	return &DeploymentEventHandler{
		logger:   logger.With("component", "deployment-event-handler"),
		queue:    queue,
		kindName: kindName,
		dummies:  dummies,
	}
}

var _ cache.ResourceEventHandler = (*DeploymentEventHandler)(nil)

// OnAdd does nothing: creation is already driven from the Dummy side.
func (h *DeploymentEventHandler) OnAdd(_ any, _ bool) {}

// OnUpdate compares the previous Deployment state against the owner's desired
// state and enqueues the owner when they differ.
func (h *DeploymentEventHandler) OnUpdate(oldObj, newObj any) {
	oldDeployment, ok := oldObj.(*appsv1.Deployment)
	if !ok {
		h.logger.Warn("unexpected object type on update", "type", typeName(oldObj))

		return
	}

	newDeployment, ok := newObj.(*appsv1.Deployment)
	if !ok {
		h.logger.Warn("unexpected object type on update", "type", typeName(newObj))

		return
	}

	key, ok := h.ownerKey(newDeployment)
	if !ok {
		return
	}

	dummy, found := h.dummies.Get(key)
	if found {
		template := PodTemplateSpec(h.kindName, dummy)
		if IsDesiredDeployment(oldDeployment, template, dummy.Spec.Replicas) {
			return
		}
	}

	h.logger.Info("deployment from dummy resource updated", "key", key, "ownerCached", found)
	h.enqueue(key)
}

func (h *DeploymentEventHandler) OnDelete(obj any) {
	deployment, ok := unwrapTombstone(obj).(*appsv1.Deployment)
	if !ok {
		h.logger.Warn("unexpected object type on delete", "type", typeName(obj))

		return
	}

	key, ok := h.ownerKey(deployment)
	if !ok {
		return
	}

	h.logger.Info("deployment from dummy resource deleted", "key", key)
	h.enqueue(key)
}

// ownerKey matches the owner on the Dummy API kind and group, the same values
// Dummy.OwnerReference writes; the configured kind name only labels the pods.
func (h *DeploymentEventHandler) ownerKey(deployment *appsv1.Deployment) (string, bool) {
	for _, owner := range deployment.OwnerReferences {
		if owner.Kind != v1beta1.Kind {
			continue
		}

		gv, err := schema.ParseGroupVersion(owner.APIVersion)
		if err != nil || gv.Group != v1beta1.Group {
			continue
		}

		return deployment.Namespace + "/" + owner.Name, true
	}

	return "", false
}

func (h *DeploymentEventHandler) enqueue(key string) {
	h.queue.Add(key)
	metrics.RecordEnqueued(sourceDeployment)
}

func unwrapTombstone(obj any) any {
	if tombstone, ok := obj.(cache.DeletedFinalStateUnknown); ok {
		return tombstone.Obj
	}

	return obj
}

func typeName(obj any) string {
	return fmt.Sprintf("%T", obj)
}
