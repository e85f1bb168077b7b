package server

import (
	"time"

	"github.com/katalvlaran/seqalign/align"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for alignRequests.
const (
	outcomeOK          = "ok"
	outcomeNoAlignment = "no_alignment"
	outcomeRejected    = "rejected"
)

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	// alignRequests counts alignments. Labels: mode, outcome.
	alignRequests *prometheus.CounterVec

	// alignDuration measures engine time. Labels: mode.
	alignDuration *prometheus.HistogramVec

	// alignCells tracks table cells computed per alignment. Labels: mode.
	alignCells *prometheus.HistogramVec

	// throttled counts requests refused by the rate limiter.
	throttled prometheus.Counter
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		alignRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seqalign",
			Name:      "align_requests_total",
			Help:      "Total alignment requests by mode and outcome",
		}, []string{"mode", "outcome"}),
		alignDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "seqalign",
			Name:      "align_duration_seconds",
			Help:      "Time spent in the alignment engine",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"mode"}),
		alignCells: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "seqalign",
			Name:      "align_cells",
			Help:      "Dynamic-programming cells computed per alignment",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 10),
		}, []string{"mode"}),
		throttled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "seqalign",
			Name:      "throttled_requests_total",
			Help:      "Alignment requests refused by the rate limiter",
		}),
	}
}

// observe records one finished alignment.
func (m *Metrics) observe(res align.Result, elapsed time.Duration) {
	mode := res.Mode.String()
	outcome := outcomeOK
	if !res.Possible() {
		outcome = outcomeNoAlignment
	}
	m.alignRequests.WithLabelValues(mode, outcome).Inc()
	m.alignDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	m.alignCells.WithLabelValues(mode).Observe(float64(res.Cells))
}

// reject records a request refused before reaching the engine.
func (m *Metrics) reject(mode align.Mode) {
	m.alignRequests.WithLabelValues(mode.String(), outcomeRejected).Inc()
}

// throttle records a request refused by the rate limiter.
func (m *Metrics) throttle() {
	m.throttled.Inc()
}
