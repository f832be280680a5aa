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
	"net/url"
	"time"

	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/metrics"
	canopymodels "github.com/tomtom215/stapi-canopy/internal/models/canopy"
)

// runFeasibility submits a feasibility request and polls it until it
// reaches a terminal status.
//
// The whole exchange, submission included, runs under a wall-clock
// deadline of FeasibilityTimeout. Between polls the loop waits
// PollInterval on a timer that is abandoned as soon as the deadline passes
// or the caller cancels. Any HTTP error ends the loop at once.
func (c *Client) runFeasibility(ctx context.Context, token string, req *canopymodels.FeasibilityRequest) (*canopymodels.FeasibilityResponse, error) {
	started := time.Now()
	pollCtx, cancel := context.WithTimeout(ctx, c.cfg.FeasibilityTimeout)
	defer cancel()

	var resp canopymodels.FeasibilityResponse
	if err := c.do(pollCtx, endpointFeasibilityCreate, http.MethodPost, "/tasking/feasibilities", token, req, &resp); err != nil {
		return nil, c.feasibilityError(ctx, pollCtx, err, started)
	}

	id := resp.ID
	log := logging.Ctx(ctx)
	log.Debug().Str("feasibility_id", id).Str("status", string(resp.Status)).Msg("Feasibility request submitted")

	timer := time.NewTimer(c.cfg.PollInterval)
	defer timer.Stop()

	polls := 0
	for {
		if resp.Status.Terminal() {
			elapsed := time.Since(started)
			if resp.Status != canopymodels.FeasibilityStatusCompleted {
				metrics.RecordFeasibilityOutcome("failed", elapsed)
				return nil, &FeasibilityFailedError{ID: id, Status: resp.Status}
			}
			metrics.RecordFeasibilityOutcome("completed", elapsed)
			log.Debug().
				Str("feasibility_id", id).
				Int("polls", polls).
				Int("opportunities", len(resp.Opportunities)).
				Dur("elapsed", elapsed).
				Msg("Feasibility request completed")
			return &resp, nil
		}

		select {
		case <-pollCtx.Done():
			return nil, c.feasibilityError(ctx, pollCtx, pollCtx.Err(), started)
		case <-timer.C:
		}
		timer.Reset(c.cfg.PollInterval)

		polls++
		metrics.FeasibilityPollsTotal.Inc()

		var next canopymodels.FeasibilityResponse
		path := "/tasking/feasibilities/" + url.PathEscape(id)
		if err := c.do(pollCtx, endpointFeasibilityGet, http.MethodGet, path, token, nil, &next); err != nil {
			return nil, c.feasibilityError(ctx, pollCtx, err, started)
		}
		resp = next
	}
}

// feasibilityError classifies an error raised while running a feasibility
// request. Caller cancellation wins over the poll deadline.
func (c *Client) feasibilityError(parent, pollCtx context.Context, err error, started time.Time) error {
	elapsed := time.Since(started)

	switch {
	case parent.Err() != nil:
		metrics.RecordFeasibilityOutcome("canceled", elapsed)
		return parent.Err()
	case pollCtx.Err() != nil || errors.Is(err, context.DeadlineExceeded):
		metrics.RecordFeasibilityOutcome("timeout", elapsed)
		return fmt.Errorf("%w after %s", ErrFeasibilityTimeout, c.cfg.FeasibilityTimeout)
	default:
		metrics.RecordFeasibilityOutcome("error", elapsed)
		return err
	}
}
