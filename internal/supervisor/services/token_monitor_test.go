// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/stapi-canopy/internal/metrics"
)

type staticExpiry struct {
	exp time.Time
	ok  bool
}

func (s staticExpiry) ConfiguredTokenExpiry() (time.Time, bool) { return s.exp, s.ok }

// The expiry gauge is process-global, so these tests run sequentially.
func TestTokenMonitorCheck(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		source    staticExpiry
		want      tokenState
		wantGauge float64
	}{
		{"opaque token", staticExpiry{}, tokenUnknown, 0},
		{"valid", staticExpiry{exp: now.Add(72 * time.Hour), ok: true}, tokenValid, float64(now.Add(72 * time.Hour).Unix())},
		{"expiring", staticExpiry{exp: now.Add(time.Hour), ok: true}, tokenExpiring, float64(now.Add(time.Hour).Unix())},
		{"expired", staticExpiry{exp: now.Add(-time.Second), ok: true}, tokenExpired, float64(now.Add(-time.Second).Unix())},
		{"expires exactly now", staticExpiry{exp: now, ok: true}, tokenExpired, float64(now.Unix())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTokenMonitorService(tt.source, time.Minute, 24*time.Hour)
			m.now = func() time.Time { return now }

			if got := m.check(); got != tt.want {
				t.Errorf("check() = %v, want %v", got, tt.want)
			}
			if got := testutil.ToFloat64(metrics.CanopyTokenExpiry); got != tt.wantGauge {
				t.Errorf("gauge = %v, want %v", got, tt.wantGauge)
			}
		})
	}
}

func TestTokenMonitorDefaults(t *testing.T) {
	t.Parallel()

	m := NewTokenMonitorService(staticExpiry{}, 0, -1)
	if m.interval != DefaultTokenCheckInterval || m.warnBefore != DefaultTokenWarnBefore {
		t.Errorf("interval = %v, warnBefore = %v", m.interval, m.warnBefore)
	}
	if m.String() != "canopy-token-monitor" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestTokenMonitorServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	m := NewTokenMonitorService(staticExpiry{}, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := m.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
}
