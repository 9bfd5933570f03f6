// internal/client/client.go
//
// HTTP client for the generation service. Every call carries a bounded
// timeout; failures are split into the taxonomy the session controller
// surfaces: the service answered with an error (ServiceError, message shown
// verbatim), the service was unreachable (ConnectivityError), or the
// service answered success with a payload that violates the model contract
// (spec.ErrMalformedResponse, surfaced loudly instead of rendering broken
// data).

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// DefaultTimeout bounds service calls when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// ServiceError reports a reachable service that returned a failure. Message
// is the server-provided text, shown to the user unchanged.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("client: service error (%d): %s", e.StatusCode, e.Message)
}

// ConnectivityError reports an unreachable service.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("client: cannot reach generation service: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// Health is the liveness snapshot reported by the service.
type Health struct {
	Status    string    `json:"status"`
	Backend   string    `json:"backend"`
	Database  string    `json:"database"`
	Generator string    `json:"generator"`
	Timestamp time.Time `json:"timestamp"`
}

// Healthy reports whether a dependency marker counts as healthy for
// display. Values outside the known marker are treated as errors.
func Healthy(marker string) bool {
	return strings.HasPrefix(strings.TrimSpace(marker), "healthy")
}

// Client talks to the generation service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given base URL. A non-positive timeout
// falls back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Generate submits a brief and returns the resulting specification. The
// brief must already be validated locally; validation failures must never
// produce a network call.
func (c *Client) Generate(ctx context.Context, brief spec.Brief) (*spec.Specification, error) {
	body, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("client: marshal brief: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp)
	}
	var payload struct {
		UserStories []string    `json:"userStories"`
		Tasks       []spec.Task `json:"tasks"`
		Risks       string      `json:"risks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: undecodable body: %v", spec.ErrMalformedResponse, err)
	}
	return spec.New(payload.UserStories, payload.Tasks, payload.Risks)
}

// History fetches the most recent generation entries, newest first.
func (c *Client) History(ctx context.Context) ([]spec.HistoryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/history", nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp)
	}
	var entries []spec.HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("client: decode history: %w", err)
	}
	return entries, nil
}

// Health probes the service's liveness endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp)
	}
	var payload Health
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("client: decode health: %w", err)
	}
	return &payload, nil
}

// serviceError extracts the server's message from a non-success response.
// Bodies that do not carry the error contract fall back to the HTTP status.
func serviceError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		return &ServiceError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &ServiceError{StatusCode: resp.StatusCode, Message: resp.Status}
}
