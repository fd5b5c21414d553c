package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-candidateform/pkg/model"
)

var (
	// ErrStatus is matched by errors returned for non-2xx responses.
	ErrStatus = errors.New("submit: unexpected status")
	// ErrEndpointRequired is returned when no endpoint is configured.
	ErrEndpointRequired = errors.New("submit: endpoint is required")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("submit: unexpected status %s", e.Status)
}

// Is reports ErrStatus equivalence.
func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Client posts payloads to a fixed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *metrics
}

// Option configures the Client.
type Option func(*Client)

// WithEndpoint overrides the destination URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			c.endpoint = trimmed
		}
	}
}

// WithHTTPClient injects a custom HTTP client (timeouts, proxies, tests).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout caps the duration of each request. Zero disables the cap.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger routes request logging through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a Client posting to model.DefaultEndpoint unless overridden.
func New(options ...Option) *Client {
	c := &Client{
		endpoint:   model.DefaultEndpoint,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Endpoint reports the destination URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts payload as JSON. It returns nil only for 2xx responses.
func (c *Client) Submit(ctx context.Context, payload model.Payload) (err error) {
	if c.endpoint == "" {
		return ErrEndpointRequired
	}

	start := time.Now()
	defer func() {
		c.metrics.observe(err, time.Since(start))
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("submit: encode payload: %w", err)
	}

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("submit: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("submitting application",
		slog.String("endpoint", c.endpoint),
		slog.Any("payload", payload.Redacted()),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("submission transport failure", slog.String("endpoint", c.endpoint), slog.Any("error", err))
		return fmt.Errorf("submit: post %s: %w", c.endpoint, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("submission rejected", slog.String("endpoint", c.endpoint), slog.Int("status", resp.StatusCode))
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	c.logger.Info("submission accepted", slog.String("endpoint", c.endpoint), slog.Int("status", resp.StatusCode))
	return nil
}
