package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is income or expense.
type TransactionType string

const (
	// TransactionTypeIncome represents money coming in.
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense represents money going out.
	TransactionTypeExpense TransactionType = "expense"
)

// CategoryRef is the denormalized category snapshot embedded in a
// transaction as returned by the server. It is a point-in-time copy, not a
// live join, and is never re-validated client-side.
type CategoryRef struct {
	Name        string `json:"name"`
	TypeDisplay string `json:"type_display"`
	ID          int    `json:"id"`
}

// Transaction represents a single income or expense entry.
type Transaction struct {
	CreatedAt       time.Time       `json:"created_at"`
	TransactionDate Date            `json:"transaction_date"`
	Type            TransactionType `json:"transaction_type"`
	TypeDisplay     string          `json:"transaction_type_display"`
	Description     string          `json:"description"`
	Memo            string          `json:"memo"`
	Amount          decimal.Decimal `json:"amount"`
	Category        CategoryRef     `json:"category"`
	ID              int             `json:"id"`
}

// Signed returns the amount negated for expenses, so sums of Signed values
// yield a net balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionDraft is the in-progress form state for a transaction. All
// fields are strings because they mirror the form controls; the server
// performs the authoritative parsing and validation.
type TransactionDraft struct {
	CategoryID      string `json:"category_id"`
	Type            string `json:"transaction_type"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	TransactionDate string `json:"transaction_date"`
	Memo            string `json:"memo"`
}

// NewTransactionDraft returns an empty draft with the transaction date
// defaulted to today.
func NewTransactionDraft() *TransactionDraft {
	return &TransactionDraft{
		TransactionDate: Today().String(),
	}
}

// DraftFromTransaction seeds an edit draft from the transaction's current
// values.
func DraftFromTransaction(t Transaction) *TransactionDraft {
	return &TransactionDraft{
		CategoryID:      strconv.Itoa(t.Category.ID),
		Type:            string(t.Type),
		Amount:          t.Amount.String(),
		Description:     t.Description,
		TransactionDate: t.TransactionDate.String(),
		Memo:            t.Memo,
	}
}

// SetField updates a single draft field by its wire name.
func (d *TransactionDraft) SetField(name, value string) {
	switch name {
	case "category_id":
		d.CategoryID = value
	case "transaction_type":
		d.Type = value
	case "amount":
		d.Amount = value
	case "description":
		d.Description = value
	case "transaction_date":
		d.TransactionDate = value
	case "memo":
		d.Memo = value
	}
}
