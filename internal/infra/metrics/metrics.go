package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var enqueuedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dummy_controller_enqueued_total",
		Help: "Total number of work items added to the queue, by the source that produced them.",
	},
	[]string{"source"},
)

var reconcileTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dummy_controller_reconcile_total",
		Help: "Total number of reconcile passes by outcome (created, edited, noop, skipped, failed).",
	},
	[]string{"result"},
)

var reconcileDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogram(
	prometheus.HistogramOpts{
		Name:    "dummy_controller_reconcile_duration_seconds",
		Help:    "Duration of a single reconcile pass including its side effects.",
		Buckets: prometheus.DefBuckets,
	},
)

var queueDepth = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "dummy_controller_queue_depth",
		Help: "Number of keys waiting in the work queue after the last take.",
	},
)

// RecordEnqueued counts a key added to the work queue by source.
func RecordEnqueued(source string) {
	enqueuedTotal.WithLabelValues(source).Inc()
}

// RecordReconcile counts one reconcile pass and observes its duration.
func RecordReconcile(result string, duration time.Duration) {
	reconcileTotal.WithLabelValues(result).Inc()
	reconcileDuration.Observe(duration.Seconds())
}

// SetQueueDepth records the current work queue length.
func SetQueueDepth(depth int) {
	queueDepth.Set(float64(depth))
}
