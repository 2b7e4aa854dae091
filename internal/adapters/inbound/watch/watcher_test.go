package watch_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	k8sfake "k8s.io/client-go/kubernetes/fake"
	"k8s.io/client-go/tools/cache"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
	"github.com/skillcoder/dummy-controller/internal/adapters/inbound/watch"
)

func newUnstructuredDummy(namespace, name string) *unstructured.Unstructured {
	return &unstructured.Unstructured{
		Object: map[string]any{
			"apiVersion": v1beta1.SchemeGroupVersion.String(),
			"kind":       v1beta1.Kind,
			"metadata": map[string]any{
				"name":      name,
				"namespace": namespace,
			},
			"spec": map[string]any{
				"quote":    "quote",
				"sleep":    int64(20),
				"replicas": int64(1),
				"extra":    []any{""},
			},
		},
	}
}

func newTestWatcher(t *testing.T, namespace string) *watch.Watcher {
	t.Helper()

	kubeClient := k8sfake.NewSimpleClientset(
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "testName", Namespace: "testNamespace"}},
		&appsv1.Deployment{ObjectMeta: metav1.ObjectMeta{Name: "other", Namespace: "otherNamespace"}},
	)
	dynamicClient := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		map[schema.GroupVersionResource]string{v1beta1.GroupVersionResource: "DummyList"},
		newUnstructuredDummy("testNamespace", "testName"),
	)

	watcher, err := watch.New(slog.Default(), kubeClient, dynamicClient, watch.Config{
		Namespace:    namespace,
		ResyncPeriod: time.Minute,
	})
	require.NoError(t, err)

	return watcher
}

func startAndWait(t *testing.T, watcher *watch.Watcher) {
	t.Helper()

	require.NoError(t, watcher.Start(t.Context()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		require.NoError(t, watcher.Shutdown(ctx))
	})

	select {
	case <-watcher.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("caches did not sync")
	}
}

func TestWatcher_SyncsTypedCaches(t *testing.T) {
	t.Parallel()

	watcher := newTestWatcher(t, "")
	require.ErrorIs(t, watcher.Ping(t.Context()), watch.ErrNotSynced)

	startAndWait(t, watcher)
	require.NoError(t, watcher.Ping(t.Context()))

	dummy, ok := watcher.Dummies().Get("testNamespace/testName")
	require.True(t, ok)
	require.Equal(t, v1beta1.DummySpec{
		Quote:        "quote",
		SleepSeconds: 20,
		Replicas:     1,
		ExtraArgs:    []string{""},
	}, dummy.Spec)
	require.Nil(t, dummy.Status)

	_, ok = watcher.Dummies().Get("testNamespace/missing")
	require.False(t, ok)

	require.Len(t, watcher.Deployments().List(), 2)
}

func TestWatcher_NamespaceScoped(t *testing.T) {
	t.Parallel()

	watcher := newTestWatcher(t, "testNamespace")
	startAndWait(t, watcher)

	deployments := watcher.Deployments().List()
	require.Len(t, deployments, 1)
	require.Equal(t, "testName", deployments[0].Name)
}

func TestWatcher_DeliversTypedObjectsToHandlers(t *testing.T) {
	t.Parallel()

	watcher := newTestWatcher(t, "")

	var (
		mu   sync.Mutex
		seen []*v1beta1.Dummy
	)

	require.NoError(t, watcher.AddDummyHandler(cache.ResourceEventHandlerFuncs{
		AddFunc: func(obj any) {
			dummy, ok := obj.(*v1beta1.Dummy)
			if !ok {
				return
			}

			mu.Lock()
			seen = append(seen, dummy)
			mu.Unlock()
		},
	}))
	require.NoError(t, watcher.AddDeploymentHandler(cache.ResourceEventHandlerFuncs{}))

	startAndWait(t, watcher)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(seen) == 1 && seen[0].Key() == "testNamespace/testName"
	}, 5*time.Second, 10*time.Millisecond)
}
