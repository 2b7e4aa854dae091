package sweeper

import (
	"time"

	"github.com/skillcoder/dummy-controller/api/v1beta1"
)

// Schedule yields the next sweep time.
type Schedule interface {
	Next(after time.Time) time.Time
}

// DummyLister lists the cached Dummies.
type DummyLister interface {
	List() []*v1beta1.Dummy
}

// Enqueuer is the producer side of the work queue.
type Enqueuer interface {
	Add(key string)
}
