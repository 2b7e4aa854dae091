package watch

import "k8s.io/client-go/tools/cache"

// Store is a typed read-only view over an informer cache.
type Store[T any] struct {
	store cache.Store
}

// NewStore wraps an informer store. Objects of any other type are skipped.
func NewStore[T any](store cache.Store) *Store[T] {
	return &Store[T]{store: store}
}

// Get returns the cached object for a "<namespace>/<name>" key.
func (s *Store[T]) Get(key string) (T, bool) {
	var zero T

	obj, exists, err := s.store.GetByKey(key)
	if err != nil || !exists {
		return zero, false
	}

	typed, ok := obj.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// List returns a snapshot of every cached object.
func (s *Store[T]) List() []T {
	objs := s.store.List()

	out := make([]T, 0, len(objs))
	for _, obj := range objs {
		if typed, ok := obj.(T); ok {
			out = append(out, typed)
		}
	}

	return out
}
