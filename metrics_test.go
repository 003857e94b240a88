package gembridge

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetrics_CountsBridgeActivity verifies request and tool-execution
// counters move with the loop.
func TestMetrics_CountsBridgeActivity(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	b := &mockBackend{responses: []backendResponse{
		callResp("get_time", nil),
		textResp("done", "STOP"),
	}}
	c := newTestClient(b, WithMetrics(m))

	if _, err := c.Complete(context.Background(), []Message{UserMessage("time?")}, []Tool{staticTool("get_time", "12:00")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := testutil.ToFloat64(m.backendRequests); got != 2 {
		t.Errorf("backend requests counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.toolExecutions.WithLabelValues("get_time")); got != 1 {
		t.Errorf("tool executions counter = %v, want 1", got)
	}
}

// TestMetrics_ErrorKinds verifies failures are labeled by kind.
func TestMetrics_ErrorKinds(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	b := &mockBackend{responses: []backendResponse{callResp("ghost", nil)}}
	c := newTestClient(b, WithMetrics(m))

	if _, err := c.Complete(context.Background(), []Message{UserMessage("go")}, nil); err == nil {
		t.Fatal("expected error")
	}

	if got := testutil.ToFloat64(m.bridgeErrors.WithLabelValues("unknown_function")); got != 1 {
		t.Errorf("unknown_function error counter = %v, want 1", got)
	}
}

// TestMetrics_NilSafe verifies an uninstrumented client works.
func TestMetrics_NilSafe(t *testing.T) {
	b := &mockBackend{responses: []backendResponse{textResp("ok", "STOP")}}
	c := newTestClient(b) // no WithMetrics

	if _, err := c.Complete(context.Background(), []Message{UserMessage("q")}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
