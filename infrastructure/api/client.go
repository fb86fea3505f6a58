// Package api is the typed client for the platform gateway. One Client
// carries the transport concerns every call shares: bearer credential
// injection, the global 401 interceptor, error mapping, circuit breaking
// and observability. The per-resource sub-clients build on it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "startuphub/pkg/errors"
	"startuphub/pkg/observability"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// TokenSource supplies the current bearer token, if any.
type TokenSource interface {
	Token() (string, bool)
}

// SessionClearer removes the locally stored session. Implemented by the
// auth store; invoked by the 401 interceptor.
type SessionClearer interface {
	Clear()
}

// Config configures the gateway client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Metrics *observability.APIMetrics
	Logger  *zap.Logger
}

// Client is the authenticated JSON client for the gateway.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	session        SessionClearer
	onUnauthorized func()
	breaker        *gobreaker.CircuitBreaker
	metrics        *observability.APIMetrics
	tracer         *observability.Tracer
	logger         *zap.Logger
}

// NewClient creates a gateway client. The token source may be nil for the
// unauthenticated flows.
func NewClient(cfg Config, tokens TokenSource, session SessionClearer) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "gateway",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tokens:     tokens,
		session:    session,
		breaker:    breaker,
		metrics:    cfg.Metrics,
		tracer:     observability.NewTracer("startuphub/api"),
		logger:     logger,
	}
}

// OnUnauthorized registers the navigation hook fired after a 401 has
// cleared the session. The route table uses it to fall back to the login
// view; it runs once per rejected response, for any call site.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// errorBody is the shape backend error payloads come in. The gateway is
// not consistent about the field name, so both are read.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do executes one JSON round trip. out may be nil for calls whose response
// body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternal("failed to encode request body", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return apperrors.NewInternal("failed to create request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Attach the credential when present; otherwise the request still goes
	// out and the server decides.
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	spanCtx, span := c.tracer.StartRequest(ctx, method, path)
	req = req.WithContext(spanCtx)
	start := time.Now()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		c.metrics.ObserveRequest(method, path, 0, time.Since(start))
		c.tracer.EndRequest(span, 0, err)
		c.logger.Debug("Request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return apperrors.NewNetwork("Could not reach the server", err)
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	c.metrics.ObserveRequest(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		c.tracer.EndRequest(span, resp.StatusCode, nil)
		c.handleUnauthorized(method, path)
		return apperrors.FromStatus(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if resp.StatusCode >= 400 {
		c.tracer.EndRequest(span, resp.StatusCode, nil)
		return apperrors.FromStatus(resp.StatusCode, readErrorMessage(resp.Body))
	}

	c.tracer.EndRequest(span, resp.StatusCode, nil)

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewInternal("failed to decode response", err)
	}
	return nil
}

// handleUnauthorized implements the global interceptor: clear stored
// session, then hand control to the navigation hook.
func (c *Client) handleUnauthorized(method, path string) {
	c.logger.Info("Session rejected by backend",
		zap.String("method", method),
		zap.String("path", path),
	)
	if c.session != nil {
		c.session.Clear()
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// readErrorMessage extracts a human-readable message from an error body.
// JSON bodies may carry "message" or "error"; plain-text bodies are used
// as-is; anything else yields an empty string so the status fallback
// applies.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
		return ""
	}
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "<") {
		// HTML error pages are useless to users.
		return ""
	}
	return text
}

// get issues a GET request.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues a POST request with an optional JSON body.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// put issues a PUT request with an optional JSON body.
func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// patch issues a PATCH request.
func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// delete issues a DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// pathEscapeID guards against IDs that would break the path.
func pathEscapeID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "/", "")
}
