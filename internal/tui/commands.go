package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEEJEHEON/moneycheck/internal/controller"
	"github.com/LEEJEHEON/moneycheck/internal/model"
)

const requestTimeout = 30 * time.Second

// loadTransactions fetches the transaction list. The token identifies the
// request to the list controller; the epoch binds it to the session active
// at issue time.
func (m Model) loadTransactions(token controller.RequestToken) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		transactions, err := m.client.ListTransactions(ctx)
		return transactionsLoadedMsg{
			transactions: transactions,
			err:          err,
			token:        token,
			epoch:        epoch,
		}
	}
}

// loadCategories fetches the category list.
func (m Model) loadCategories(token controller.RequestToken) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		categories, err := m.client.ListCategories(ctx)
		return categoriesLoadedMsg{
			categories: categories,
			err:        err,
			token:      token,
			epoch:      epoch,
		}
	}
}

// loadAccounts fetches the user account list.
func (m Model) loadAccounts(token controller.RequestToken) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		accounts, err := m.client.ListAccounts(ctx)
		return accountsLoadedMsg{
			accounts: accounts,
			err:      err,
			token:    token,
			epoch:    epoch,
		}
	}
}

// saveTransaction creates or updates depending on whether the session is
// editing an existing entity.
func (m Model) saveTransaction(editID int, draft *model.TransactionDraft) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if editID != 0 {
			err = m.client.UpdateTransaction(ctx, editID, draft)
		} else {
			err = m.client.CreateTransaction(ctx, draft)
		}
		return saveDoneMsg{err: err, view: controller.ViewTransactions, epoch: epoch}
	}
}

func (m Model) saveCategory(editID int, draft *model.CategoryDraft) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if editID != 0 {
			err = m.client.UpdateCategory(ctx, editID, draft)
		} else {
			err = m.client.CreateCategory(ctx, draft)
		}
		return saveDoneMsg{err: err, view: controller.ViewCategories, epoch: epoch}
	}
}

func (m Model) saveAccount(editID int, draft *model.AccountDraft) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.client.UpdateAccount(ctx, editID, draft)
		return saveDoneMsg{err: err, view: controller.ViewUsers, epoch: epoch}
	}
}

func (m Model) deleteTransaction(id int) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.client.DeleteTransaction(ctx, id)
		return deleteDoneMsg{err: err, view: controller.ViewTransactions, epoch: epoch}
	}
}

func (m Model) deleteCategory(id int) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.client.DeleteCategory(ctx, id)
		return deleteDoneMsg{err: err, view: controller.ViewCategories, epoch: epoch}
	}
}

func (m Model) deleteAccount(id int) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := m.client.DeleteAccount(ctx, id)
		return deleteDoneMsg{err: err, view: controller.ViewUsers, epoch: epoch}
	}
}

func (m Model) bulkDeleteTransactions(ids []int) tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		deleted, err := m.client.BulkDeleteTransactions(ctx, ids)
		return bulkDeleteDoneMsg{deleted: deleted, err: err, epoch: epoch}
	}
}

// probeServer checks connectivity for the server-management view.
func (m Model) probeServer() tea.Cmd {
	epoch := m.guard.Epoch()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err := m.client.ListCategories(ctx)
		return probeDoneMsg{err: err, epoch: epoch}
	}
}
