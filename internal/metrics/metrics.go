// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records application metrics against a Prometheus registry.
type Collector struct {
	guessesSubmitted  *prometheus.CounterVec
	gamesCompleted    *prometheus.CounterVec
	conflictsDetected prometheus.Counter
	httpStatus        *prometheus.CounterVec
	requestDuration   prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		guessesSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordletracker_guesses_submitted_total",
			Help: "Guesses accepted, by outcome (accepted or rejected).",
		}, []string{"outcome"}),
		gamesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordletracker_games_completed_total",
			Help: "Games reaching a terminal state, by result (won or lost).",
		}, []string{"result"}),
		conflictsDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wordletracker_submission_conflicts_total",
			Help: "Concurrent guess submissions rejected by the unique constraint.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordletracker_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordletracker_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.guessesSubmitted,
		c.gamesCompleted,
		c.conflictsDetected,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

// RecordGuess records a guess submission.
func (c *Collector) RecordGuess(accepted bool) {
	outcome := "accepted"
	if !accepted {
		outcome = "rejected"
	}
	c.guessesSubmitted.WithLabelValues(outcome).Inc()
}

// RecordGameCompleted records a game reaching a terminal state.
func (c *Collector) RecordGameCompleted(won bool) {
	result := "lost"
	if won {
		result = "won"
	}
	c.gamesCompleted.WithLabelValues(result).Inc()
}

// RecordConflict records a submission lost to a concurrent writer.
func (c *Collector) RecordConflict() {
	c.conflictsDetected.Inc()
}

// RecordHTTPStatus records a response status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration records how long a request took to serve.
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
