package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRequestMetricsCarryStatusAndMethod(t *testing.T) {
	IncRequest("SUCCESS", "GET")
	ObserveDuration("SUCCESS", "GET", 0.05)

	if got := testutil.ToFloat64(RequestsTotal.WithLabelValues("SUCCESS", "GET")); got < 1 {
		t.Fatalf("expected counter for status/method pair to be incremented, got %v", got)
	}
	if got := testutil.CollectAndCount(RequestDuration); got == 0 {
		t.Fatalf("expected histogram samples for status/method pair, got %d", got)
	}
}
