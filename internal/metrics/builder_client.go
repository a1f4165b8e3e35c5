package metrics

import (
	"time"

	"github.com/fystack/builder-client/pkg/builder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	builderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "builder_client",
		Subsystem: "requests",
		Name:      "operations_total",
		Help:      "Count of builder service operations.",
	}, []string{"operation", "chain", "status"})
	builderRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "builder_client",
		Subsystem: "requests",
		Name:      "operation_duration_seconds",
		Help:      "Duration of builder service operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

var _ builder.Observer = BuilderClient{}

// BuilderClient records builder operations per chain. Status is "success" or
// the builder error kind; a 410 from the auction endpoint is "gone".
type BuilderClient struct {
	chain string
}

func NewBuilderClient(chain string) BuilderClient {
	if chain == "" {
		chain = "unknown"
	}
	return BuilderClient{chain: chain}
}

func (m BuilderClient) Observe(operation string, err error, started time.Time) {
	status := Status(err)
	builderRequestsTotal.WithLabelValues(operation, m.chain, status).Inc()
	builderRequestDuration.WithLabelValues(operation, m.chain, status).Observe(time.Since(started).Seconds())
}

func Status(err error) string {
	switch {
	case err == nil:
		return "success"
	case builder.IsGone(err):
		return "gone"
	default:
		return builder.KindOf(err).String()
	}
}
