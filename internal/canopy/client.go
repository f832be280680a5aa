// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

/*
client.go - Umbra Canopy REST API Client

This file implements the outbound client for the Canopy archive and tasking
APIs. Every request passes the outbound rate limiter and the circuit breaker.

Endpoints:
  - POST /archive/search: STAC search of captured imagery
  - POST /tasking/feasibilities, GET /tasking/feasibilities/{id}
  - POST /tasking/tasks, GET /tasking/tasks/{id}

API Reference: https://docs.canopy.umbra.space
*/

package canopy

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/stapi-canopy/internal/cache"
	"github.com/tomtom215/stapi-canopy/internal/config"
	"github.com/tomtom215/stapi-canopy/internal/logging"
	"github.com/tomtom215/stapi-canopy/internal/metrics"
	"github.com/tomtom215/stapi-canopy/internal/models"
	canopymodels "github.com/tomtom215/stapi-canopy/internal/models/canopy"
	"github.com/tomtom215/stapi-canopy/internal/translator"
)

// maxErrorBodySize limits how much of an error response is kept.
const maxErrorBodySize = 64 * 1024

// errorMessageBodyLimit limits the body excerpt in HTTPError messages,
// which end up in logs.
const errorMessageBodyLimit = 512

// maxResponseBodySize limits successful response bodies.
const maxResponseBodySize = 32 << 20

// Endpoint labels used in logs and metrics.
const (
	endpointArchiveSearch     = "archive_search"
	endpointFeasibilityCreate = "feasibility_create"
	endpointFeasibilityGet    = "feasibility_get"
	endpointTaskCreate        = "task_create"
	endpointTaskGet           = "task_get"
)

const orderTokenMessage = "canopy_token is required to create or retrieve orders"

// readBodyForError reads at most maxErrorBodySize bytes for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client talks to the Umbra Canopy API.
//
// Thread Safety: Safe for concurrent use. The rate limiter and circuit
// breaker are shared by all requests made through one Client.
type Client struct {
	cfg        config.CanopyConfig
	apiURL     string
	taskURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *breaker
	archive    *cache.LRU[[]models.Opportunity]
	now        func() time.Time
	logger     zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock sets the clock used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a Canopy client from configuration.
func NewClient(cfg config.CanopyConfig, opts ...Option) *Client {
	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}
	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		cfg:        cfg,
		apiURL:     strings.TrimSuffix(cfg.APIURL, "/"),
		taskURL:    strings.TrimSuffix(cfg.TaskURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(limit, burst),
		breaker:    newBreaker(),
		now:        time.Now,
		logger:     logging.WithComponent("canopy"),
	}
	if cfg.ArchiveCacheTTL > 0 {
		c.archive = cache.New[[]models.Opportunity](cfg.ArchiveCacheSize, cfg.ArchiveCacheTTL)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOpportunitiesFromArchive searches the archive for imagery captured
// inside the request window. The bearer token is sent when available but
// not required.
func (c *Client) GetOpportunitiesFromArchive(ctx context.Context, req *models.OpportunityRequest) ([]models.Opportunity, error) {
	payload := canopymodels.ArchiveSearchRequest{
		FilterLang: canopymodels.FilterLangCQL2JSON,
		Intersects: req.Geometry,
		Datetime:   req.Datetime.String(),
		ProductID:  req.ProductID,
		Filter:     req.Filter,
		Limit:      c.cfg.ArchiveLimit,
	}

	token := c.token(ctx)

	key, cacheable := c.archiveCacheKey(token, &payload)
	if cacheable {
		if hit, ok := c.archive.Get(key); ok {
			metrics.CanopyArchiveCache.WithLabelValues("hit").Inc()
			metrics.RecordOpportunities("archive", len(hit))
			return append([]models.Opportunity(nil), hit...), nil
		}
		metrics.CanopyArchiveCache.WithLabelValues("miss").Inc()
	}

	var result canopymodels.ArchiveItemCollection
	if err := c.do(ctx, endpointArchiveSearch, http.MethodPost, "/archive/search", token, payload, &result); err != nil {
		return nil, err
	}

	opportunities := make([]models.Opportunity, 0, len(result.Features))
	for i := range result.Features {
		opportunities = append(opportunities, translator.ArchiveItemToOpportunity(&result.Features[i], req.ProductID))
	}

	if cacheable {
		c.archive.Add(key, append([]models.Opportunity(nil), opportunities...))
	}
	metrics.RecordOpportunities("archive", len(opportunities))
	return opportunities, nil
}

// archiveCacheKey hashes the token and search body. Results are only shared
// between callers presenting the same token.
func (c *Client) archiveCacheKey(token string, payload *canopymodels.ArchiveSearchRequest) (string, bool) {
	if c.archive == nil {
		return "", false
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", false
	}
	h := sha256.New()
	h.Write([]byte(token))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), true
}

// GetOpportunitiesFromFeasibility submits a feasibility analysis for the
// request window and waits for it to complete. orderHref is the
// create-order endpoint linked from each opportunity.
func (c *Client) GetOpportunitiesFromFeasibility(ctx context.Context, req *models.OpportunityRequest, orderHref string) ([]models.Opportunity, error) {
	token, err := c.requireToken(ctx, MissingTokenMessage)
	if err != nil {
		return nil, err
	}

	feasibilityReq, err := translator.OpportunityRequestToFeasibilityRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.runFeasibility(ctx, token, &feasibilityReq)
	if err != nil {
		return nil, err
	}

	opportunities := translator.FeasibilityResponseToOpportunities(resp, req.Geometry, req.ProductID, orderHref)
	metrics.RecordOpportunities("feasibility", len(opportunities))
	return opportunities, nil
}

// CreateOrderFromOpportunityRequest submits a Canopy task for the order.
func (c *Client) CreateOrderFromOpportunityRequest(ctx context.Context, req *models.OrderRequest) (models.Order, error) {
	token, err := c.requireToken(ctx, orderTokenMessage)
	if err != nil {
		return models.Order{}, err
	}

	taskReq, err := translator.OpportunityRequestToTaskRequest(req, translator.TaskDefaults{
		DeliveryConfigID: c.cfg.DeliveryConfigID,
		UserOrderID:      c.cfg.UserOrderID,
	})
	if err != nil {
		return models.Order{}, err
	}

	var task canopymodels.TaskResponse
	if err := c.do(ctx, endpointTaskCreate, http.MethodPost, "/tasking/tasks", token, taskReq, &task); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCreated.WithLabelValues(req.ProductID).Inc()
	logging.Ctx(ctx).Info().
		Str("task_id", task.ID.String()).
		Str("task_name", taskReq.TaskName).
		Msg("Canopy task created")

	return translator.TaskResponseToOrder(&task, req.ProductID, c.taskLink(task.ID)), nil
}

// GetOrderByID fetches the Canopy task with the given ID. The ID must be a
// UUID in canonical 8-4-4-4-12 form; anything else fails with
// ErrInvalidOrderID before any request.
func (c *Client) GetOrderByID(ctx context.Context, orderID string) (models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil || len(orderID) != 36 {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidOrderID, orderID)
	}

	token, err := c.requireToken(ctx, orderTokenMessage)
	if err != nil {
		return models.Order{}, err
	}

	var task canopymodels.TaskResponse
	if err := c.do(ctx, endpointTaskGet, http.MethodGet, "/tasking/tasks/"+id.String(), token, nil, &task); err != nil {
		return models.Order{}, err
	}

	return translator.TaskResponseToOrder(&task, translator.UnknownProductID, c.taskLink(task.ID)), nil
}

// Available reports whether the circuit breaker currently lets requests
// through.
func (c *Client) Available() bool {
	return c.breaker.state() != "open"
}

// BreakerState returns the circuit breaker state name.
func (c *Client) BreakerState() string {
	return c.breaker.state()
}

// ConfiguredTokenExpiry returns the expiry of the configured token, when
// it is a JWT carrying one.
func (c *Client) ConfiguredTokenExpiry() (time.Time, bool) {
	if c.cfg.Token == "" {
		return time.Time{}, false
	}
	return TokenExpiry(c.cfg.Token)
}

func (c *Client) taskLink(id uuid.UUID) string {
	return c.taskURL + "/tasks/" + id.String()
}

// token returns the bearer token for a request: the caller's token when
// forwarding is enabled and one was supplied, else the configured one.
func (c *Client) token(ctx context.Context) string {
	if c.cfg.ForwardAuthorization {
		if t := TokenFromContext(ctx); t != "" {
			return t
		}
	}
	return c.cfg.Token
}

func (c *Client) requireToken(ctx context.Context, missingMessage string) (string, error) {
	token := c.token(ctx)
	if token == "" {
		return "", &AuthorizationError{Message: missingMessage}
	}
	if err := checkTokenExpiry(token, c.now()); err != nil {
		return "", err
	}
	return token, nil
}

// do sends one JSON request and decodes a 2xx response into out.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode canopy %s request: %w", endpoint, err)
		}
	}

	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			if _, ok := ctx.Deadline(); ok {
				return fmt.Errorf("canopy rate limiter: %w", context.DeadlineExceeded)
			}
		}
		return fmt.Errorf("canopy rate limiter: %w", err)
	}
	metrics.CanopyRateLimitWait.Observe(time.Since(waitStart).Seconds())

	data, err := c.breaker.execute(func() ([]byte, error) {
		return c.roundTrip(ctx, endpoint, method, path, token, body)
	})
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode canopy %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, endpoint, method, path, token string, body []byte) ([]byte, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordCanopyRequest(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("canopy %s request failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	elapsed := time.Since(start)
	metrics.RecordCanopyRequest(endpoint, resp.StatusCode, elapsed)
	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Str("token", logging.RedactToken(token)).
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Msg("Canopy request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read canopy %s response: %w", endpoint, err)
	}
	return data, nil
}
