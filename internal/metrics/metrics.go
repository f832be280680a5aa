// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Canopy Client Metrics
	CanopyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canopy_requests_total",
			Help: "Total number of requests sent to the Canopy API",
		},
		[]string{"endpoint", "status_code"},
	)

	CanopyRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "canopy_request_duration_seconds",
			Help:    "Canopy API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	CanopyRateLimitWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "canopy_rate_limit_wait_seconds",
			Help:    "Time spent waiting for the outbound Canopy rate limiter",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	CanopyArchiveCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canopy_archive_cache_total",
			Help: "Archive search cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss"
	)

	CanopyTokenExpiry = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "canopy_token_expiry_timestamp_seconds",
			Help: "Unix time at which the configured Canopy token expires (0 when unknown)",
		},
	)

	// Feasibility Polling Metrics
	FeasibilityPollsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feasibility_polls_total",
			Help: "Total number of feasibility status polls",
		},
	)

	FeasibilityOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feasibility_outcomes_total",
			Help: "Feasibility analyses by outcome",
		},
		[]string{"outcome"}, // "completed", "failed", "timeout", "error"
	)

	FeasibilityDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feasibility_duration_seconds",
			Help:    "Wall-clock time from feasibility creation to a terminal state",
			Buckets: []float64{0.5, 1, 2, 3, 5, 7.5, 10, 15, 30},
		},
	)

	// Opportunity Search Metrics
	OpportunitiesReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opportunities_returned_total",
			Help: "Total number of opportunities returned by source",
		},
		[]string{"source"}, // "archive", "feasibility"
	)

	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders submitted to Canopy",
		},
		[]string{"product_id"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Build info
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stapi_canopy_build_info",
			Help: "Build information; the value is always 1",
		},
		[]string{"version", "commit"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCanopyRequest records one Canopy API round trip. statusCode is 0
// when no response was received.
func RecordCanopyRequest(endpoint string, statusCode int, duration time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	CanopyRequestsTotal.WithLabelValues(endpoint, status).Inc()
	CanopyRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordFeasibilityOutcome records how a feasibility analysis ended.
func RecordFeasibilityOutcome(outcome string, duration time.Duration) {
	FeasibilityOutcomes.WithLabelValues(outcome).Inc()
	FeasibilityDuration.Observe(duration.Seconds())
}

// RecordOpportunities adds n opportunities returned from source.
func RecordOpportunities(source string, n int) {
	OpportunitiesReturned.WithLabelValues(source).Add(float64(n))
}

// SetBuildInfo publishes the running version.
func SetBuildInfo(version, commit string) {
	BuildInfo.WithLabelValues(version, commit).Set(1)
}
