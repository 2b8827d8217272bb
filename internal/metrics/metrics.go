// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the node's Prometheus instruments.
//
// Metrics never carry voter identities or per-rumor labels; rumor ids would
// make the series unbounded and could leak LOCKED tallies through timing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vera"

// Lock triggers.
const (
	LockDeadline = "deadline"
	LockEarly    = "early"
)

type Metrics struct {
	registry *prometheus.Registry

	votesCast       *prometheus.CounterVec
	voteRejections  *prometheus.CounterVec
	rumorsPosted    prometheus.Counter
	rumorsRejected  prometheus.Counter
	rumorsLocked    *prometheus.CounterVec
	rumorsFinalized *prometheus.CounterVec
	finalizeSeconds prometheus.Histogram
	finalizeErrors  *prometheus.CounterVec
	ledgerHeight    prometheus.Gauge
	integrityFails  prometheus.Counter
	profilesUnblocked prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpSeconds     *prometheus.HistogramVec
	wsClients       prometheus.Gauge
}

// New registers every instrument on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		votesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Accepted votes by vote type.",
		}, []string{"vote_type"}),

		voteRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vote_rejections_total",
			Help:      "Rejected vote attempts by reason.",
		}, []string{"reason"}),

		rumorsPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rumors_posted_total",
			Help:      "Rumors accepted for voting.",
		}),

		rumorsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rumors_rejected_total",
			Help:      "Submissions rejected by content validation.",
		}),

		rumorsLocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rumors_locked_total",
			Help:      "Rumors moved from ACTIVE to LOCKED by trigger.",
		}, []string{"trigger"}),

		rumorsFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rumors_finalized_total",
			Help:      "Finalized rumors by decision.",
		}, []string{"decision"}),

		finalizeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "finalize_duration_seconds",
			Help:      "Duration of the finalization transaction.",
			Buckets:   prometheus.DefBuckets,
		}),

		finalizeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "finalize_errors_total",
			Help:      "Failed finalizations by retryability.",
		}, []string{"retryable"}),

		ledgerHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_height",
			Help:      "Height of the last appended ledger block.",
		}),

		integrityFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_integrity_failures_total",
			Help:      "Chain verifications that found a broken block.",
		}),

		profilesUnblocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_unblocked_total",
			Help:      "Profiles unblocked by an administrator.",
		}),

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),

		httpSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "clients",
			Help:      "Connected event feed clients.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.votesCast,
		m.voteRejections,
		m.rumorsPosted,
		m.rumorsRejected,
		m.rumorsLocked,
		m.rumorsFinalized,
		m.finalizeSeconds,
		m.finalizeErrors,
		m.ledgerHeight,
		m.integrityFails,
		m.profilesUnblocked,
		m.httpRequests,
		m.httpSeconds,
		m.wsClients,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) VoteCast(voteType string) {
	m.votesCast.WithLabelValues(voteType).Inc()
}

func (m *Metrics) VoteRejected(reason string) {
	m.voteRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) RumorPosted() {
	m.rumorsPosted.Inc()
}

func (m *Metrics) RumorRejected() {
	m.rumorsRejected.Inc()
}

// RumorsLocked counts n transitions caused by trigger.
func (m *Metrics) RumorsLocked(trigger string, n int) {
	m.rumorsLocked.WithLabelValues(trigger).Add(float64(n))
}

func (m *Metrics) RumorFinalized(decision string, height int64, took time.Duration) {
	m.rumorsFinalized.WithLabelValues(decision).Inc()
	m.finalizeSeconds.Observe(took.Seconds())
	m.ledgerHeight.Set(float64(height))
}

func (m *Metrics) FinalizeFailed(retryable bool) {
	m.finalizeErrors.WithLabelValues(strconv.FormatBool(retryable)).Inc()
}

func (m *Metrics) SetLedgerHeight(height int64) {
	m.ledgerHeight.Set(float64(height))
}

func (m *Metrics) IntegrityFailure() {
	m.integrityFails.Inc()
}

func (m *Metrics) ProfileUnblocked() {
	m.profilesUnblocked.Inc()
}

// ObserveHTTP records one finished request. route is the router pattern,
// not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpSeconds.WithLabelValues(method, route).Observe(took.Seconds())
}

func (m *Metrics) EventClientConnected() {
	m.wsClients.Inc()
}

func (m *Metrics) EventClientDisconnected() {
	m.wsClients.Dec()
}
