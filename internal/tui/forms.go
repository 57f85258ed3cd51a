package tui

import (
	"strconv"

	"github.com/LEEJEHEON/moneycheck/internal/controller"
	"github.com/LEEJEHEON/moneycheck/internal/model"
	"github.com/LEEJEHEON/moneycheck/internal/tui/components"
)

// transactionForm builds the create/edit modal for a transaction, seeded
// from the open session's draft. Category choices come from the fetched
// category list; the server remains the authority on category/type
// coherence.
func (m Model) transactionForm() components.FormModel {
	draft := m.txSession.Draft()

	title := "New Transaction"
	if m.txSession.Mode() == controller.ModeEditing {
		title = "Edit Transaction"
	}

	fields := []components.Field{
		components.NewSelectField("category_id", "Category", m.categoryOptions(), draft.CategoryID),
		components.NewSelectField("transaction_type", "Type", []components.Option{
			{Label: "Income", Value: string(model.TransactionTypeIncome)},
			{Label: "Expense", Value: string(model.TransactionTypeExpense)},
		}, draft.Type),
		components.NewTextField("amount", "Amount", draft.Amount),
		components.NewTextField("description", "Description", draft.Description),
		components.NewTextField("transaction_date", "Date (YYYY-MM-DD)", draft.TransactionDate),
		components.NewTextField("memo", "Memo", draft.Memo),
	}

	return components.NewForm(title, fields, m.theme)
}

func (m Model) categoryOptions() []components.Option {
	categories := m.categories.Items()
	options := make([]components.Option, 0, len(categories))
	for _, cat := range categories {
		label := cat.Name
		if cat.TypeDisplay != "" {
			label = cat.TypeDisplay + " - " + cat.Name
		}
		options = append(options, components.Option{
			Label: label,
			Value: strconv.Itoa(cat.ID),
		})
	}
	return options
}

// categoryForm builds the create/edit modal for a ledger category.
func (m Model) categoryForm() components.FormModel {
	draft := m.catSession.Draft()

	title := "New Category"
	if m.catSession.Mode() == controller.ModeEditing {
		title = "Edit Category"
	}

	typeOptions := make([]components.Option, 0, len(model.CategoryTypes))
	for _, ct := range model.CategoryTypes {
		typeOptions = append(typeOptions, components.Option{Label: string(ct), Value: string(ct)})
	}

	fields := []components.Field{
		components.NewSelectField("type", "Type", typeOptions, draft.Type),
		components.NewTextField("name", "Name", draft.Name),
		components.NewTextField("remark", "Remark", draft.Remark),
	}

	return components.NewForm(title, fields, m.theme)
}

// accountForm builds the edit modal for a user account. The password is
// write-only: the field starts empty and the value is submitted only when
// the admin typed a replacement.
func (m Model) accountForm() components.FormModel {
	draft := m.acctSession.Draft()

	fields := []components.Field{
		components.NewTextField("username", "Username", draft.Username),
		components.NewTextField("email", "Email", draft.Email),
		components.NewPasswordField("password", "Password (leave blank to keep)"),
		components.NewSelectField("is_active", "Active", []components.Option{
			{Label: "Active", Value: "true"},
			{Label: "Inactive", Value: "false"},
		}, strconv.FormatBool(draft.IsActive)),
	}

	return components.NewForm("Edit User", fields, m.theme)
}
