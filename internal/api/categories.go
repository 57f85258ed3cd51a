package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

type categoryListResponse struct {
	envelope
	Categories []model.Category `json:"categories"`
}

// ListCategories fetches all ledger categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var resp categoryListResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/categories/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// CreateCategory creates a new category from the draft.
func (c *Client) CreateCategory(ctx context.Context, draft *model.CategoryDraft) error {
	return c.do(ctx, http.MethodPost, "/api/auth/categories/create/", draft, nil)
}

// UpdateCategory applies the draft to the category with the given id.
func (c *Client) UpdateCategory(ctx context.Context, id int, draft *model.CategoryDraft) error {
	path := fmt.Sprintf("/api/auth/categories/%d/", id)
	return c.do(ctx, http.MethodPut, path, draft, nil)
}

// DeleteCategory removes the category with the given id.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/auth/categories/%d/delete/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
