package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shapectl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shapectl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	pipelineDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shapectl",
			Subsystem: "pipeline",
			Name:      "decodes_total",
			Help:      "Record decode attempts by kind and outcome.",
		},
		[]string{"kind", "status"},
	)
	decodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shapectl",
			Subsystem: "pipeline",
			Name:      "decode_errors_total",
			Help:      "Record decode failures by reason.",
		},
		[]string{"reason"},
	)
	renderDraws = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shapectl",
			Subsystem: "render",
			Name:      "draws_total",
			Help:      "Draw dispatches by shape.",
		},
		[]string{"shape"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration, pipelineDecodes, decodeErrors, renderDraws,
		)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDecode counts one decode attempt. kind may be empty when the tag
// never resolved.
func RecordDecode(kind, status string) {
	RegisterMetrics()
	if kind == "" {
		kind = "unknown"
	}
	pipelineDecodes.WithLabelValues(kind, status).Inc()
}

func RecordDecodeError(reason string) {
	RegisterMetrics()
	decodeErrors.WithLabelValues(reason).Inc()
}

func RecordDraw(shape string) {
	RegisterMetrics()
	renderDraws.WithLabelValues(shape).Inc()
}
