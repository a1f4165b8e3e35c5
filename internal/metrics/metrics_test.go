package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fystack/builder-client/pkg/builder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestBuilderClientRecords(t *testing.T) {
	m := NewBuilderClient("")
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, builderRequestsTotal.WithLabelValues(builder.OperationBid, "unknown", "success"), func() {
		m.Observe(builder.OperationBid, nil, start)
	}); inc != 1 {
		t.Fatalf("expected bid success increment, got %v", inc)
	}

	if inc := delta(t, builderRequestsTotal.WithLabelValues(builder.OperationAuction, "unknown", "unknown"), func() {
		m.Observe(builder.OperationAuction, errors.New("not a builder error"), start)
	}); inc != 1 {
		t.Fatalf("expected auction unknown-error increment, got %v", inc)
	}
}

func TestBuilderClientObservesThroughClient(t *testing.T) {
	client, err := builder.New("http://127.0.0.1:1/", builder.WithObserver(NewBuilderClient("osmosis-1")))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if inc := delta(t, builderRequestsTotal.WithLabelValues(builder.OperationAuction, "osmosis-1", "transport"), func() {
		_, _ = client.QueryAuction(t.Context(), "osmosis-1", 1)
	}); inc != 1 {
		t.Fatalf("expected auction transport-error increment, got %v", inc)
	}
}

func TestStatus(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{errors.New("plain"), "unknown"},
	} {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("Status(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestBuilderClientRecordsGone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte(`{"error":"gone","status_code":410,"status_text":"Gone"}`))
	}))
	defer server.Close()

	client, err := builder.New(server.URL, builder.WithObserver(NewBuilderClient("osmosis-1")))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if inc := delta(t, builderRequestsTotal.WithLabelValues(builder.OperationAuction, "osmosis-1", "gone"), func() {
		_, _ = client.QueryAuction(t.Context(), "osmosis-1", 5994269)
	}); inc != 1 {
		t.Fatalf("expected auction gone increment, got %v", inc)
	}
}
