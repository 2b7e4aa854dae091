package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordEnqueued(t *testing.T) {
	before := testutil.ToFloat64(enqueuedTotal.WithLabelValues("test-source"))

	RecordEnqueued("test-source")
	RecordEnqueued("test-source")

	require.InDelta(t, before+2, testutil.ToFloat64(enqueuedTotal.WithLabelValues("test-source")), 0.001)
}

func TestRecordReconcile(t *testing.T) {
	before := testutil.ToFloat64(reconcileTotal.WithLabelValues("test-result"))

	RecordReconcile("test-result", 10*time.Millisecond)

	require.InDelta(t, before+1, testutil.ToFloat64(reconcileTotal.WithLabelValues("test-result")), 0.001)
}

func TestSetQueueDepth(t *testing.T) {
	SetQueueDepth(3)
	require.InDelta(t, 3, testutil.ToFloat64(queueDepth), 0.001)

	SetQueueDepth(0)
	require.InDelta(t, 0, testutil.ToFloat64(queueDepth), 0.001)
}
