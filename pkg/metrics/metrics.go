// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Stream event outcomes.
const (
	OutcomeReceived  = "received"
	OutcomeAdmitted  = "admitted"
	OutcomeMalformed = "malformed"
	OutcomeDropped   = "dropped"
)

// Metrics contains the collectors shared by the pipeline and jobs.
type Metrics struct {
	StreamEvents     *prometheus.CounterVec
	StreamReconnects prometheus.Counter
	WatchdogRestarts prometheus.Counter
	EventDuration    prometheus.Histogram
	Detections       *prometheus.CounterVec
	JobRuns          *prometheus.CounterVec
	PageRankFailures prometheus.Counter
}

var (
	sharedOnce    sync.Once
	sharedMetrics *Metrics
)

// Default returns the collectors registered on the default registry.
func Default() *Metrics {
	sharedOnce.Do(func() {
		sharedMetrics = New(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// New creates the collectors and registers them on reg when it is not nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StreamEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citron_stream_events_total",
				Help: "Recent-change stream events by outcome",
			},
			[]string{"outcome"},
		),
		StreamReconnects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "citron_stream_reconnects_total",
				Help: "Stream subscription attempts after a failure",
			},
		),
		WatchdogRestarts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "citron_stream_watchdog_restarts_total",
				Help: "Subscriptions torn down by the liveness watchdog",
			},
		),
		EventDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "citron_event_processing_seconds",
				Help:    "Time spent processing one admitted change",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
		),
		Detections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citron_detections_total",
				Help: "Persisted hostname detections by wiki",
			},
			[]string{"wiki"},
		),
		JobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "citron_job_runs_total",
				Help: "Scheduled job runs per wiki by outcome",
			},
			[]string{"job", "wiki", "outcome"},
		),
		PageRankFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "citron_page_rank_failures_total",
				Help: "Page rank lookups that fell back to -1",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(
			m.StreamEvents,
			m.StreamReconnects,
			m.WatchdogRestarts,
			m.EventDuration,
			m.Detections,
			m.JobRuns,
			m.PageRankFailures,
		)
	}
	return m
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
