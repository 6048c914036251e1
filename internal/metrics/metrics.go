// Package metrics provides Prometheus metrics for the news service.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the counters below.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeDisabled = "disabled"
)

var (
	// FeedFetchTotal counts feed source fetches.
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news",
			Name:      "feed_fetch_total",
			Help:      "Total number of feed source fetches",
		},
		[]string{"source", "outcome"},
	)

	// FeedSourceUp reports whether the last probe of a source succeeded.
	FeedSourceUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "news",
			Name:      "feed_source_up",
			Help:      "Feed source reachability from the last probe (1 = up, 0 = down)",
		},
		[]string{"source"},
	)

	// CompletionRequestsTotal counts completion API calls.
	CompletionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news",
			Name:      "completion_requests_total",
			Help:      "Total number of completion API calls",
		},
		[]string{"purpose", "outcome"},
	)

	// CompletionDuration measures completion API latency.
	CompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "news",
			Name:      "completion_duration_seconds",
			Help:      "Duration of completion API calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"purpose"},
	)

	// ReadingListSize tracks the number of saved articles.
	ReadingListSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "news",
			Name:      "reading_list_size",
			Help:      "Number of articles in the reading list",
		},
	)

	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)

// RecordFeedFetch records one feed source fetch.
func RecordFeedFetch(source, outcome string) {
	FeedFetchTotal.WithLabelValues(source, outcome).Inc()
}

// SetFeedSourceUp records a probe result for a source.
func SetFeedSourceUp(source string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	FeedSourceUp.WithLabelValues(source).Set(v)
}

// RecordCompletion records a completion API call.
func RecordCompletion(purpose, outcome string, seconds float64) {
	CompletionRequestsTotal.WithLabelValues(purpose, outcome).Inc()
	if outcome != OutcomeDisabled {
		CompletionDuration.WithLabelValues(purpose).Observe(seconds)
	}
}

// SetReadingListSize records the current reading list length.
func SetReadingListSize(n int) {
	ReadingListSize.Set(float64(n))
}

// RecordHTTPRequest records a served HTTP request.
func RecordHTTPRequest(method, route string, status int) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
