package k8s

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// deploymentPatch replaces the replica count and the pod template of the child Deployment.
func deploymentPatch(replicas int32, template corev1.PodTemplateSpec) map[string]any {
	return map[string]any{
		"spec": map[string]any{
			"replicas": replicas,
			"template": template,
		},
	}
}

func statusPatch(status *v1beta1.DummyStatus) map[string]any {
	if status == nil {
		status = &v1beta1.DummyStatus{}
	}

	return map[string]any{
		"status": status,
	}
}
