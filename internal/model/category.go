package model

import "time"

// CategoryType classifies a ledger category.
type CategoryType string

const (
	// CategoryTypeAsset represents asset categories.
	CategoryTypeAsset CategoryType = "asset"
	// CategoryTypeLiability represents liability categories.
	CategoryTypeLiability CategoryType = "liability"
	// CategoryTypeEquity represents equity categories.
	CategoryTypeEquity CategoryType = "equity"
	// CategoryTypeRevenue represents revenue categories.
	CategoryTypeRevenue CategoryType = "revenue"
	// CategoryTypeExpense represents expense categories.
	CategoryTypeExpense CategoryType = "expense"
)

// CategoryTypes lists the valid category types in display order.
var CategoryTypes = []CategoryType{
	CategoryTypeAsset,
	CategoryTypeLiability,
	CategoryTypeEquity,
	CategoryTypeRevenue,
	CategoryTypeExpense,
}

// Category represents a ledger category. CreatedBy and CreatedAt are
// immutable once set by the server.
type Category struct {
	CreatedAt   time.Time    `json:"created_at"`
	Type        CategoryType `json:"type"`
	TypeDisplay string       `json:"type_display"`
	Name        string       `json:"name"`
	Remark      string       `json:"remark"`
	CreatedBy   string       `json:"created_by"`
	ID          int          `json:"id"`
}

// CategoryDraft is the in-progress form state for a category.
type CategoryDraft struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Remark string `json:"remark"`
}

// DraftFromCategory seeds an edit draft from the category's current values.
func DraftFromCategory(c Category) *CategoryDraft {
	return &CategoryDraft{
		Type:   string(c.Type),
		Name:   c.Name,
		Remark: c.Remark,
	}
}

// SetField updates a single draft field by its wire name.
func (d *CategoryDraft) SetField(name, value string) {
	switch name {
	case "type":
		d.Type = value
	case "name":
		d.Name = value
	case "remark":
		d.Remark = value
	}
}
