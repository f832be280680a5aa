// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
Package metrics provides Prometheus metrics for the STAPI service.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8001/metrics

# Available Metrics

API Metrics:
  - api_requests_total: requests by method, route pattern and status (counter)
  - api_request_duration_seconds: request latency by method and route (histogram)
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: inbound rate limit rejections (counter)

Canopy Metrics:
  - canopy_requests_total: vendor round trips by endpoint and status (counter)
  - canopy_request_duration_seconds: vendor latency by endpoint (histogram)
  - canopy_rate_limit_wait_seconds: time queued on the outbound limiter (histogram)
  - feasibility_polls_total: feasibility status polls (counter)
  - feasibility_outcomes_total: analyses by outcome (counter)
  - feasibility_duration_seconds: time to a terminal feasibility state (histogram)
  - opportunities_returned_total: opportunities by source (counter)
  - orders_created_total: submitted tasks by product (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: success, failure or rejected (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_transitions_total: by from and to state (counter)

Endpoint labels use chi route patterns, never raw paths, to keep
cardinality bounded.
*/
package metrics
