package tui

import (
	"context"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

// clientAPI is the slice of the REST client the TUI depends on. Tests
// substitute an in-memory fake.
type clientAPI interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, draft *model.TransactionDraft) error
	UpdateTransaction(ctx context.Context, id int, draft *model.TransactionDraft) error
	DeleteTransaction(ctx context.Context, id int) error
	BulkDeleteTransactions(ctx context.Context, ids []int) (int, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, draft *model.CategoryDraft) error
	UpdateCategory(ctx context.Context, id int, draft *model.CategoryDraft) error
	DeleteCategory(ctx context.Context, id int) error

	ListAccounts(ctx context.Context) ([]model.Account, error)
	UpdateAccount(ctx context.Context, id int, draft *model.AccountDraft) error
	DeleteAccount(ctx context.Context, id int) error
}
