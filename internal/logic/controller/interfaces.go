package controller

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	eventsv1 "k8s.io/api/events/v1"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// Repository is the port interface for cluster side effects.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	CreateDeploymentCommand(
		ctx context.Context,
		deployment *appsv1.Deployment,
	) error

	EditDeploymentCommand(
		ctx context.Context,
		dummy *v1beta1.Dummy,
		template corev1.PodTemplateSpec,
	) error

	PatchStatusCommand(
		ctx context.Context,
		dummy *v1beta1.Dummy,
	) error

	EmitEventCommand(
		ctx context.Context,
		event *eventsv1.Event,
	) error

	IsKindRegisteredQuery(
		ctx context.Context,
		kindName string,
	) (bool, error)
}

// DummyLister reads Dummy objects from the informer cache.
type DummyLister interface {
	Get(key string) (*v1beta1.Dummy, bool)
	List() []*v1beta1.Dummy
}

// DeploymentLister reads Deployments from the informer cache.
type DeploymentLister interface {
	List() []*appsv1.Deployment
}

// enqueuer is the producer side of the work queue.
type enqueuer interface {
	Add(key string)
}

// alreadyExists is a private interface for checking "already exists" errors
// without importing the adapter package.
type alreadyExists interface {
	IsAlreadyExists()
}

// conflict is a private interface for checking optimistic-concurrency conflicts
// without importing the adapter package.
type conflict interface {
	IsConflict()
}
