// Package model defines the server-owned record types managed by the client.
// The client holds read-through copies only; every mutation round-trips to
// the server followed by a full list refetch.
package model

import "time"

// Account represents a user account. ID and DateJoined are immutable;
// IsAdmin is server-assigned and never editable through the client.
type Account struct {
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	ID         int        `json:"id"`
	IsAdmin    bool       `json:"is_admin"`
	IsActive   bool       `json:"is_active"`
}

// AccountDraft is the in-progress form state for editing an account.
// Password is write-only: it is seeded empty and submitted only when the
// user typed a replacement.
type AccountDraft struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	IsActive bool   `json:"is_active"`
}

// DraftFromAccount seeds an edit draft from the account's current values.
func DraftFromAccount(a Account) *AccountDraft {
	return &AccountDraft{
		Username: a.Username,
		Email:    a.Email,
		IsActive: a.IsActive,
	}
}

// SetField updates a single draft field by its wire name.
func (d *AccountDraft) SetField(name, value string) {
	switch name {
	case "username":
		d.Username = value
	case "email":
		d.Email = value
	case "password":
		d.Password = value
	case "is_active":
		d.IsActive = value == "true"
	}
}
