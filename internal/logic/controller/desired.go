package controller

import (
	"fmt"
	"slices"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// ContainerArgs builds the shell arguments that echo the quote and extra args and then sleep.
func ContainerArgs(spec v1beta1.DummySpec) []string {
	script := fmt.Sprintf("/bin/echo \"%s\n%s\"; /bin/sleep %d",
		spec.Quote,
		strings.Join(spec.ExtraArgs, " "),
		spec.SleepSeconds,
	)

	return []string{containerShellCommand, script}
}

// PodTemplateSpec returns the desired pod template for dummy.
// kindName is used as the label key on the template.
func PodTemplateSpec(kindName string, dummy *v1beta1.Dummy) corev1.PodTemplateSpec {
	return corev1.PodTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{
			Labels: selectorLabels(kindName, dummy),
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{
					Name:    dummy.Name + containerNameSuffix,
					Image:   ContainerImage,
					Command: []string{containerShell},
					Args:    ContainerArgs(dummy.Spec),
				},
			},
		},
	}
}

// Deployment returns the desired child Deployment for dummy, owned by it.
func Deployment(kindName string, dummy *v1beta1.Dummy) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:            dummy.Name,
			Namespace:       dummy.Namespace,
			Labels:          selectorLabels(kindName, dummy),
			OwnerReferences: []metav1.OwnerReference{dummy.OwnerReference()},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(dummy.Spec.Replicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: selectorLabels(kindName, dummy),
			},
			Template: PodTemplateSpec(kindName, dummy),
		},
	}
}

// IsDesiredDeployment compares only the replica count and the first container's
// args against the desired values.
func IsDesiredDeployment(
	deployment *appsv1.Deployment,
	template corev1.PodTemplateSpec,
	replicas int32,
) bool {
	if ptr.Deref(deployment.Spec.Replicas, defaultReplicas) != replicas {
		return false
	}

	current := deployment.Spec.Template.Spec.Containers
	desired := template.Spec.Containers

	if len(current) == 0 || len(desired) == 0 {
		return len(current) == len(desired)
	}

	return slices.Equal(current[0].Args, desired[0].Args)
}

func selectorLabels(kindName string, dummy *v1beta1.Dummy) map[string]string {
	return map[string]string{kindName: dummy.Name}
}
