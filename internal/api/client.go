// Package api implements the client for the remote storefront backend. All
// business logic (pricing, inventory, persistence, authorization) lives
// behind these endpoints; this package only shapes requests and responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"online-store-frontend/internal/events"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/storage"
)

// Client executes authenticated HTTP calls against the remote API. It
// attaches the stored bearer token to every request and centrally reacts to
// authentication failures: a single 401 clears the local credentials and
// broadcasts the auth-changed signal, exactly once per transition.
//
// A Client is request-scoped: it borrows the browser profile's storage and
// the process-wide bus and http.Client, so constructing one is cheap.
type Client struct {
	baseURL string
	http    *http.Client
	storage storage.Storage
	bus     *events.Bus
}

// NewHTTPClient builds the shared transport with the fixed client-wide
// request timeout. No retries, no per-call cancellation beyond this.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// NewClient creates a client bound to one browser profile's storage.
func NewClient(baseURL string, httpClient *http.Client, st storage.Storage, bus *events.Bus) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		storage: st,
		bus:     bus,
	}
}

// Error is a non-2xx response from the remote API, carrying the backend's
// human-readable message when one was provided.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote API error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote API error (%d)", e.StatusCode)
}

// errorBody matches the backend's error envelope; the message key casing
// varies between endpoints.
type errorBody struct {
	Message      string `json:"Message"`
	MessageLower string `json:"message"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.MessageLower
}

// do executes one JSON request. body and out may be nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send applies the shared headers, executes the request and decodes the
// response. Every call funnels through here so the 401 hook is owned by
// exactly one place.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if token, ok := storage.Token(c.storage); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return models.ErrAuthExpired
	}
	if resp.StatusCode == http.StatusForbidden {
		return models.ErrForbidden
	}
	if resp.StatusCode == http.StatusNotFound {
		return models.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return &Error{StatusCode: resp.StatusCode, Message: eb.text()}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// handleUnauthorized clears the stored credentials and signals the session
// side. ClearAuth reports whether a token was present, which keeps the
// signal to one publish even when several in-flight calls all see a 401.
func (c *Client) handleUnauthorized() {
	if storage.ClearAuth(c.storage) {
		c.bus.Publish(events.AuthChanged{LoggedIn: false})
	}
}
