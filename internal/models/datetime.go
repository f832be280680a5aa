// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ErrInvalidInterval is returned when a datetime interval cannot be parsed
// or does not satisfy start < end.
var ErrInvalidInterval = errors.New("invalid datetime interval")

// DatetimeInterval is a closed time window encoded on the wire as an
// ISO-8601 interval string "start/end".
type DatetimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewDatetimeInterval builds an interval and checks start < end.
func NewDatetimeInterval(start, end time.Time) (DatetimeInterval, error) {
	if !end.After(start) {
		return DatetimeInterval{}, fmt.Errorf("%w: end %s is not after start %s",
			ErrInvalidInterval, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return DatetimeInterval{Start: start, End: end}, nil
}

// ParseDatetimeInterval parses "start/end" where both sides are RFC 3339
// timestamps with an explicit offset.
func ParseDatetimeInterval(s string) (DatetimeInterval, error) {
	startRaw, endRaw, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return DatetimeInterval{}, fmt.Errorf("%w: %q is not of the form start/end", ErrInvalidInterval, s)
	}

	start, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(startRaw))
	if err != nil {
		return DatetimeInterval{}, fmt.Errorf("%w: start: %w", ErrInvalidInterval, err)
	}
	end, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(endRaw))
	if err != nil {
		return DatetimeInterval{}, fmt.Errorf("%w: end: %w", ErrInvalidInterval, err)
	}

	return NewDatetimeInterval(start, end)
}

// FormatInterval renders start and end as "start/end".
func FormatInterval(start, end time.Time) string {
	return start.Format(time.RFC3339Nano) + "/" + end.Format(time.RFC3339Nano)
}

// String returns the "start/end" form.
func (d DatetimeInterval) String() string {
	return FormatInterval(d.Start, d.End)
}

// IsZero reports whether the interval was never set.
func (d DatetimeInterval) IsZero() bool {
	return d.Start.IsZero() && d.End.IsZero()
}

// Duration returns End - Start.
func (d DatetimeInterval) Duration() time.Duration {
	return d.End.Sub(d.Start)
}

// SplitAt divides the interval at now. past covers the part at or before
// now and future the part at or after now; either is nil when that part is
// empty. A window ending exactly at now has no future part, and one starting
// exactly at now has no past part.
func (d DatetimeInterval) SplitAt(now time.Time) (past, future *DatetimeInterval) {
	switch {
	case !d.End.After(now):
		whole := d
		return &whole, nil
	case !d.Start.Before(now):
		whole := d
		return nil, &whole
	default:
		return &DatetimeInterval{Start: d.Start, End: now},
			&DatetimeInterval{Start: now, End: d.End}
	}
}

// MarshalJSON encodes the interval as a "start/end" string.
func (d DatetimeInterval) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a "start/end" string or a two-element array
// of timestamps.
func (d *DatetimeInterval) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseDatetimeInterval(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var pair []time.Time
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: expected \"start/end\" string or [start, end] array", ErrInvalidInterval)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: expected 2 timestamps, got %d", ErrInvalidInterval, len(pair))
	}
	parsed, err := NewDatetimeInterval(pair[0], pair[1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
