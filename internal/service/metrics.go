package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - метрики конвейера предсказаний и dispatch
type Metrics struct {
	PredictionsTotal  *prometheus.CounterVec
	ScorerDuration    prometheus.Histogram
	AlertsTotal       *prometheus.CounterVec
	FeedCallsTotal    *prometheus.CounterVec
	FeedDuration      *prometheus.HistogramVec
	DispatchTotal     *prometheus.CounterVec
	OverrideChanges   *prometheus.CounterVec
	EscalationsTotal  *prometheus.CounterVec
	SnapshotsDegraded prometheus.Counter
}

// NewMetrics регистрирует метрики на переданном registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alertcare_predictions_total",
			Help: "Submitted readings by prediction outcome.",
		}, []string{"outcome"}),
		ScorerDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "alertcare_scorer_duration_seconds",
			Help:    "Latency of external scorer calls.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10), // 0.25s .. ~128s
		}),
		AlertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alertcare_alerts_total",
			Help: "Alerts by priority and result (created, suppressed).",
		}, []string{"priority", "result"}),
		FeedCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alertcare_feed_calls_total",
			Help: "Resource feed calls by feed and outcome.",
		}, []string{"feed", "outcome"}),
		FeedDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alertcare_feed_duration_seconds",
			Help:    "Latency of resource feed calls.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms .. ~5s
		}, []string{"feed"}),
		DispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alertcare_dispatch_total",
			Help: "Dispatch attempts by outcome.",
		}, []string{"outcome"}),
		OverrideChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alertcare_override_changes_total",
			Help: "Manual override changes by action.",
		}, []string{"action"}),
		EscalationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alertcare_escalations_total",
			Help: "Doctor escalations by outcome.",
		}, []string{"outcome"}),
		SnapshotsDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "alertcare_snapshots_degraded_total",
			Help: "Facility snapshots returned with at least one failed feed.",
		}),
	}

	reg.MustRegister(
		m.PredictionsTotal,
		m.ScorerDuration,
		m.AlertsTotal,
		m.FeedCallsTotal,
		m.FeedDuration,
		m.DispatchTotal,
		m.OverrideChanges,
		m.EscalationsTotal,
		m.SnapshotsDegraded,
	)
	return m
}

func (m *Metrics) observeFeed(feed string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.FeedCallsTotal.WithLabelValues(feed, outcome).Inc()
	m.FeedDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}
