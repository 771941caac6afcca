// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commons",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "commons",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// EventsDropped counts event rows rejected at the fetch boundary.
	EventsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commons",
		Name:      "events_dropped_total",
		Help:      "Event records excluded before grouping or filtering, by reason.",
	}, []string{"reason"})

	DigestEmails = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commons",
		Name:      "digest_emails_total",
		Help:      "Weekly digest emails by outcome.",
	}, []string{"outcome"})

	// DigestRuns counts scheduled digest passes; "failed" means at least one
	// town or recipient errored.
	DigestRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "commons",
		Name:      "digest_runs_total",
		Help:      "Scheduled weekly digest runs by outcome.",
	}, []string{"outcome"})
)

// Register adds all collectors to reg.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, HTTPDuration, EventsDropped, DigestEmails, DigestRuns)
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
