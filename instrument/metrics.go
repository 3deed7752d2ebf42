// SPDX-License-Identifier: MIT

package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathkit/search"
)

// Search outcomes used as the "outcome" label and span attribute.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics holds the Prometheus collectors shared by every wrapped Finder.
//
// Metrics exposed (all namespaced with "pathkit_"):
//
//  1. searches_total (counter): completed FindPath calls.
//     Labels: algorithm, outcome (found/unreachable/error).
//  2. nodes_expanded (histogram): len(Result.VisitedOrder) per search.
//     Labels: algorithm.
//  3. search_duration_seconds (histogram): wall time per search.
//     Labels: algorithm, outcome.
//  4. path_hops (histogram): edges along Result.Path for found paths.
//     Labels: algorithm.
//
// Safe for concurrent use.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	latency  *prometheus.HistogramVec
	hops     *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors with reg.
// A nil reg means prometheus.DefaultRegisterer. Registering twice on the same
// registry panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pathkit",
			Name:      "searches_total",
			Help:      "Completed path searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathkit",
			Name:      "nodes_expanded",
			Help:      "Nodes visited per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 … 262144
		}, []string{"algorithm"}),

		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathkit",
			Name:      "search_duration_seconds",
			Help:      "Wall time of a path search",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8), // 1µs … 10s
		}, []string{"algorithm", "outcome"}),

		hops: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pathkit",
			Name:      "path_hops",
			Help:      "Edges along found paths",
			Buckets:   prometheus.LinearBuckets(0, 5, 12),
		}, []string{"algorithm"}),
	}
}

// Observe records one finished search.
func (m *Metrics) Observe(algorithm string, res *search.Result, err error, elapsed time.Duration) {
	outcome := Outcome(res, err)
	m.searches.WithLabelValues(algorithm, outcome).Inc()
	m.latency.WithLabelValues(algorithm, outcome).Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	m.expanded.WithLabelValues(algorithm).Observe(float64(res.Expanded()))
	if res.Found() {
		m.hops.WithLabelValues(algorithm).Observe(float64(res.Hops()))
	}
}

// Outcome classifies a FindPath return pair.
func Outcome(res *search.Result, err error) string {
	switch {
	case err != nil || res == nil:
		return OutcomeError
	case res.Found():
		return OutcomeFound
	default:
		return OutcomeUnreachable
	}
}
