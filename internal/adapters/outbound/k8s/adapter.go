package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	eventsv1 "k8s.io/api/events/v1"
	apiextensionsclientset "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
	"github.com/skillcoder/dummy-controller/internal/logic/controller"
)

const statusSubresource = "status"

type adapter struct {
	logger        *slog.Logger
	clientset     kubernetes.Interface
	dynamicClient dynamic.Interface
	crdClientset  apiextensionsclientset.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
	crdClientset apiextensionsclientset.Interface,
) controller.Repository {
	return &adapter{
		logger:        logger,
		clientset:     clientset,
		dynamicClient: dynamicClient,
		crdClientset:  crdClientset,
	}
}

var _ controller.Repository = (*adapter)(nil)

func (a *adapter) CreateDeploymentCommand(
	ctx context.Context,
	deployment *appsv1.Deployment,
) error {
	_, err := a.clientset.AppsV1().Deployments(deployment.Namespace).Create(
		ctx,
		deployment,
		metav1.CreateOptions{},
	)
	if err != nil {
		return fmt.Errorf("create deployment: %w", classify(err))
	}

	a.logger.DebugContext(ctx, "deployment created",
		"namespace", deployment.Namespace,
		"name", deployment.Name,
	)

	return nil
}

func (a *adapter) EditDeploymentCommand(
	ctx context.Context,
	dummy *v1beta1.Dummy,
	template corev1.PodTemplateSpec,
) error {
	patchBytes, err := json.Marshal(deploymentPatch(dummy.Spec.Replicas, template))
	if err != nil {
		return fmt.Errorf("marshal deployment patch: %w", err)
	}

	_, err = a.clientset.AppsV1().Deployments(dummy.Namespace).Patch(
		ctx,
		dummy.Name,
		types.MergePatchType,
		patchBytes,
		metav1.PatchOptions{},
	)
	if err != nil {
		return fmt.Errorf("patch deployment: %w", classify(err))
	}

	return nil
}

func (a *adapter) PatchStatusCommand(
	ctx context.Context,
	dummy *v1beta1.Dummy,
) error {
	patchBytes, err := json.Marshal(statusPatch(dummy.Status))
	if err != nil {
		return fmt.Errorf("marshal status patch: %w", err)
	}

	_, err = a.dynamicClient.Resource(v1beta1.GroupVersionResource).Namespace(dummy.Namespace).Patch(
		ctx,
		dummy.Name,
		types.MergePatchType,
		patchBytes,
		metav1.PatchOptions{},
		statusSubresource,
	)
	if err != nil {
		return fmt.Errorf("patch dummy status: %w", classify(err))
	}

	return nil
}

func (a *adapter) EmitEventCommand(
	ctx context.Context,
	event *eventsv1.Event,
) error {
	_, err := a.clientset.EventsV1().Events(event.Namespace).Create(
		ctx,
		event,
		metav1.CreateOptions{},
	)
	if err != nil {
		return fmt.Errorf("create event: %w", classify(err))
	}

	return nil
}

func (a *adapter) IsKindRegisteredQuery(
	ctx context.Context,
	kindName string,
) (bool, error) {
	crds, err := a.crdClientset.ApiextensionsV1().CustomResourceDefinitions().List(
		ctx,
		metav1.ListOptions{},
	)
	if err != nil {
		return false, fmt.Errorf("list custom resource definitions: %w", err)
	}

	for i := range crds.Items {
		if crds.Items[i].Spec.Names.Kind == kindName {
			return true, nil
		}
	}

	return false, nil
}

// classify maps API status errors the controller handles differently onto
// marker types, keeping the original error in the chain.
func classify(err error) error {
	switch {
	case apierrors.IsAlreadyExists(err):
		return &AlreadyExistsError{cause: err}
	case apierrors.IsConflict(err):
		return &ConflictError{cause: err}
	}

	return err
}
