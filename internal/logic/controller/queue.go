package controller

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO of work item keys.
// Add never blocks and is safe for concurrent producers; Take is meant for a
// single consumer. Keys are not deduplicated.
type Queue struct {
	mu     sync.Mutex
	items  []string
	notify chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		notify: make(chan struct{}, 1),
	}
}

// Add appends key to the tail of the queue.
func (q *Queue) Add(key string) {
	q.mu.Lock()
	q.items = append(q.items, key)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Take removes and returns the head of the queue, blocking until an item is
// available or ctx is done.
func (q *Queue) Take(ctx context.Context) (string, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			key := q.items[0]
			q.items[0] = ""
			q.items = q.items[1:]
			q.mu.Unlock()

			return key, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-q.notify:
		}
	}
}

// Len returns the number of queued keys.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
