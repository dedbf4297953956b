// Package client is a small HTTP client for the order API. Terminals use it
// through the checkout coordinator; it turns API error envelopes back into
// typed application errors so callers can branch on the error kind.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/quickserve/pos-api/internal/domain/entity"
	"github.com/quickserve/pos-api/internal/presentation/http/dto/request"
	"github.com/quickserve/pos-api/pkg/apperror"
)

// Client talks to the order API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client against the given base URL, e.g. "http://localhost:8080"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope mirrors the API response shape
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Kind    string          `json:"kind,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Commit submits an order. Each call carries a fresh idempotency key, so a
// transport-level retry by the caller must reuse the same request object only
// through a new Commit call; duplicate suppression is the server's job.
func (c *Client) Commit(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error) {
	var order entity.Order
	err := c.post(ctx, "/api/v1/orders", uuid.New().String(), req, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) post(ctx context.Context, path, idempotencyKey string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success {
		kind := apperror.Kind(env.Kind)
		if kind == "" {
			kind = apperror.KindInternal
		}
		return apperror.NewAppError(resp.StatusCode, kind, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
