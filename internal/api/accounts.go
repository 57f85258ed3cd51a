package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

type accountListResponse struct {
	envelope
	Users []model.Account `json:"users"`
}

// ListAccounts fetches all user accounts. Admin only.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var resp accountListResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/users/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateAccount applies the draft to the account with the given id. The
// password field is submitted only when the draft carries one.
func (c *Client) UpdateAccount(ctx context.Context, id int, draft *model.AccountDraft) error {
	path := fmt.Sprintf("/api/auth/users/%d/", id)
	return c.do(ctx, http.MethodPut, path, draft, nil)
}

// DeleteAccount removes the account with the given id.
func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/auth/users/%d/delete/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
