package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

type transactionListResponse struct {
	envelope
	Transactions []model.Transaction `json:"transactions"`
}

type bulkDeleteResponse struct {
	envelope
	DeletedCount int `json:"deleted_count"`
}

// ListTransactions fetches the caller's transactions.
func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var resp transactionListResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/api/transactions/", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// CreateTransaction creates a new transaction from the draft.
func (c *Client) CreateTransaction(ctx context.Context, draft *model.TransactionDraft) error {
	return c.do(ctx, http.MethodPost, "/api/auth/api/transactions/create/", draft, nil)
}

// UpdateTransaction applies the draft to the transaction with the given id.
func (c *Client) UpdateTransaction(ctx context.Context, id int, draft *model.TransactionDraft) error {
	path := fmt.Sprintf("/api/auth/api/transactions/%d/", id)
	return c.do(ctx, http.MethodPut, path, draft, nil)
}

// DeleteTransaction removes the transaction with the given id.
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/auth/api/transactions/%d/delete/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// BulkDeleteTransactions removes the given transactions in one call and
// returns how many the server actually deleted. The server may delete
// fewer than requested; callers get only the count, not per-id results.
func (c *Client) BulkDeleteTransactions(ctx context.Context, ids []int) (int, error) {
	payload := map[string][]int{
		"transaction_ids": ids,
	}

	var resp bulkDeleteResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/api/transactions/bulk-delete/", payload, &resp); err != nil {
		return 0, err
	}
	return resp.DeletedCount, nil
}
