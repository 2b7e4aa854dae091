package watch

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// toDummy converts unstructured objects from the dynamic informer into typed
// Dummies before they reach the cache and the event handlers.
func toDummy(obj any) (any, error) {
	switch o := obj.(type) {
	case *v1beta1.Dummy:
		return o, nil
	case *unstructured.Unstructured:
		dummy := &v1beta1.Dummy{}

		err := runtime.DefaultUnstructuredConverter.FromUnstructured(o.UnstructuredContent(), dummy)
		if err != nil {
			return nil, fmt.Errorf("convert %s/%s to dummy: %w", o.GetNamespace(), o.GetName(), err)
		}

		return dummy, nil
	}

	return obj, nil
}
