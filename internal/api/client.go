// Package api implements the REST client for the household-ledger backend.
//
// Every response carries a status field ("success" or "error") plus either
// the resource payload or a human-readable message. Transport failures and
// unparsable bodies are normalized into a generic user-facing error; a 401
// anywhere is surfaced as common.ErrUnauthorized so the session layer can
// force a re-login.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/LEEJEHEON/moneycheck/internal/common"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Client talks to the ledger backend. The session credential is conveyed
// as a cookie on every request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cookie     string
}

// New creates a Client for the given base URL, e.g. "http://localhost:8000".
func New(baseURL string) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// SetSessionCookie attaches the persisted session cookie to subsequent
// requests. An empty value clears it.
func (c *Client) SetSessionCookie(cookie string) {
	c.cookie = cookie
}

// envelope is the part of every response body common to all endpoints.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// do issues a JSON request and decodes the response into out, which must
// embed the status/message envelope. It returns an error for transport
// failures, 401s, and server-reported error statuses.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	slog.Debug("API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrServerUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: status %d", common.ErrMalformedResponse, resp.StatusCode)
	}

	if env.Status != statusSuccess {
		msg := env.Message
		if msg == "" {
			msg = common.GenericTransportMessage
		}
		return common.NewUserError(msg, fmt.Errorf("server error: status %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
		}
	}

	return nil
}
