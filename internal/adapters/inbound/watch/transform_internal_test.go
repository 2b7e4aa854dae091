package watch

import (
	"testing"

	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

func TestToDummy(t *testing.T) {
	t.Parallel()

	t.Run("converts unstructured", func(t *testing.T) {
		t.Parallel()

		u := &unstructured.Unstructured{Object: map[string]any{
			"apiVersion": "xgeeks.ki.com/v1beta1",
			"kind":       "Dummy",
			"metadata":   map[string]any{"name": "n", "namespace": "ns"},
			"spec":       map[string]any{"quote": "q", "sleep": int64(3), "replicas": int64(2)},
			"status":     map[string]any{"timesChanged": int64(4)},
		}}

		out, err := toDummy(u)
		require.NoError(t, err)

		dummy, ok := out.(*v1beta1.Dummy)
		require.True(t, ok)
		require.Equal(t, "ns/n", dummy.Key())
		require.Equal(t, int32(2), dummy.Spec.Replicas)
		require.Equal(t, int32(4), dummy.Status.TimesChanged)
	})

	t.Run("rejects malformed spec", func(t *testing.T) {
		t.Parallel()

		u := &unstructured.Unstructured{Object: map[string]any{
			"metadata": map[string]any{"name": "n", "namespace": "ns"},
			"spec":     map[string]any{"sleep": "not a number"},
		}}

		_, err := toDummy(u)
		require.Error(t, err)
	})

	t.Run("passes other objects through", func(t *testing.T) {
		t.Parallel()

		deployment := &appsv1.Deployment{}

		out, err := toDummy(deployment)
		require.NoError(t, err)
		require.Same(t, deployment, out)
	})
}
