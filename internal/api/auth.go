package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/LEEJEHEON/moneycheck/internal/common"
)

// LoginResult carries the identity issued by the server on login. IsAdmin
// is the single source of role truth; the client never infers role from
// the username.
type LoginResult struct {
	Username      string
	SessionCookie string
	UserID        int
	IsAdmin       bool
}

type loginResponse struct {
	envelope
	Username string `json:"username"`
	UserID   int    `json:"user_id"`
	IsAdmin  bool   `json:"is_admin"`
}

// Login authenticates with username and password and captures the session
// cookie the server sets.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login/", bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrServerUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
	}

	var decoded loginResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: status %d", common.ErrMalformedResponse, resp.StatusCode)
	}

	if decoded.Status != statusSuccess {
		msg := decoded.Message
		if msg == "" {
			msg = "Login failed. Check your username and password."
		}
		return nil, common.NewUserError(msg, fmt.Errorf("login rejected: status %d", resp.StatusCode))
	}

	result := &LoginResult{
		UserID:   decoded.UserID,
		Username: decoded.Username,
		IsAdmin:  decoded.IsAdmin,
	}

	// Django issues the session as a Set-Cookie; keep the raw pair so it
	// can be replayed on later requests.
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "sessionid" {
			result.SessionCookie = cookie.Name + "=" + cookie.Value
		}
	}

	c.cookie = result.SessionCookie

	return result, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	return c.do(ctx, http.MethodPost, "/api/auth/register/", payload, nil)
}
