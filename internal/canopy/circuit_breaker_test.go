// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package canopy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func archiveCall(client *Client) error {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.GetOpportunitiesFromArchive(context.Background(), testRequest(start, start.Add(time.Hour)))
	return err
}

func TestCircuitBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	for i := 0; i < 10; i++ {
		var httpErr *HTTPError
		if err := archiveCall(client); !errors.As(err, &httpErr) {
			t.Fatalf("call %d error = %v, want *HTTPError", i, err)
		}
	}

	if client.Available() {
		t.Fatalf("breaker state = %s, want open", client.BreakerState())
	}

	before := hits.Load()
	if err := archiveCall(client); !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
	if hits.Load() != before {
		t.Error("open breaker should not reach the server")
	}
}

func TestCircuitBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	for i := 0; i < 15; i++ {
		_ = archiveCall(client)
	}

	if !client.Available() {
		t.Errorf("breaker state = %s, want closed", client.BreakerState())
	}
}

func TestCircuitBreakerIgnoresPollDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.FeasibilityTimeout = 40 * time.Millisecond
	cfg.PollInterval = 5 * time.Millisecond
	client := NewClient(cfg)

	for i := 0; i < 12; i++ {
		if _, err := client.GetOpportunitiesFromFeasibility(context.Background(), futureRequest(), ""); !errors.Is(err, ErrFeasibilityTimeout) {
			t.Fatalf("call %d error = %v, want ErrFeasibilityTimeout", i, err)
		}
	}

	if !client.Available() {
		t.Errorf("breaker state = %s, want closed", client.BreakerState())
	}
}

func TestIsSuccessful(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: true},
		{name: "canceled", err: context.Canceled, want: true},
		{name: "deadline", err: fmt.Errorf("canopy feasibility_get request failed: %w", context.DeadlineExceeded), want: true},
		{name: "404", err: &HTTPError{StatusCode: 404}, want: true},
		{name: "401", err: &HTTPError{StatusCode: 401}, want: true},
		{name: "500", err: &HTTPError{StatusCode: 500}, want: false},
		{name: "transport", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		if got := isSuccessful(tt.err); got != tt.want {
			t.Errorf("isSuccessful(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStateToString(t *testing.T) {
	t.Parallel()

	if stateToString(gobreaker.StateOpen) != "open" || stateToFloat(gobreaker.StateOpen) != 2 {
		t.Error("open state mapping")
	}
	if stateToString(gobreaker.StateHalfOpen) != "half-open" || stateToFloat(gobreaker.StateHalfOpen) != 1 {
		t.Error("half-open state mapping")
	}
}
