// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package canopy

import (
	"errors"
	"strings"
	"testing"
)

func TestHTTPErrorMessage(t *testing.T) {
	t.Parallel()

	short := &HTTPError{Method: "POST", Path: "/tasking/tasks", StatusCode: 502, Body: "bad gateway"}
	if got, want := short.Error(), "canopy POST /tasking/tasks returned status 502: bad gateway"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	long := &HTTPError{Method: "GET", Path: "/tasking/tasks/x", StatusCode: 500, Body: strings.Repeat("x", 4*errorMessageBodyLimit)}
	msg := long.Error()
	if !strings.HasSuffix(msg, "...") {
		t.Errorf("long body should be cut, got suffix %q", msg[len(msg)-10:])
	}
	if len(msg) > errorMessageBodyLimit+100 {
		t.Errorf("len(Error()) = %d, want at most about %d", len(msg), errorMessageBodyLimit)
	}
	if len(long.Body) != 4*errorMessageBodyLimit {
		t.Error("Body itself must stay intact")
	}
}

func TestHTTPErrorIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		target error
		want   bool
	}{
		{status: 401, target: ErrUnauthorized, want: true},
		{status: 403, target: ErrUnauthorized, want: true},
		{status: 404, target: ErrNotFound, want: true},
		{status: 404, target: ErrUnauthorized, want: false},
		{status: 500, target: ErrNotFound, want: false},
	}

	for _, tt := range tests {
		err := error(&HTTPError{StatusCode: tt.status})
		if got := errors.Is(err, tt.target); got != tt.want {
			t.Errorf("errors.Is(%d, %v) = %v, want %v", tt.status, tt.target, got, tt.want)
		}
	}
}
