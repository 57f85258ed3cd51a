package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_InitialView(t *testing.T) {
	r := NewRouter(RoleUser)
	assert.Equal(t, ViewDashboard, r.Active())

	r = NewRouter(RoleAdmin)
	assert.Equal(t, ViewDashboard, r.Active())
}

func TestRouter_RoleGating(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		view    View
		allowed bool
	}{
		{name: "user reaches transactions", role: RoleUser, view: ViewTransactions, allowed: true},
		{name: "user reaches budget", role: RoleUser, view: ViewBudget, allowed: true},
		{name: "user reaches reports", role: RoleUser, view: ViewReports, allowed: true},
		{name: "user blocked from user management", role: RoleUser, view: ViewUsers, allowed: false},
		{name: "user blocked from categories", role: RoleUser, view: ViewCategories, allowed: false},
		{name: "user blocked from server management", role: RoleUser, view: ViewServer, allowed: false},
		{name: "admin reaches categories", role: RoleAdmin, view: ViewCategories, allowed: true},
		{name: "admin reaches users", role: RoleAdmin, view: ViewUsers, allowed: true},
		{name: "admin reaches server management", role: RoleAdmin, view: ViewServer, allowed: true},
		{name: "admin blocked from transactions", role: RoleAdmin, view: ViewTransactions, allowed: false},
		{name: "admin blocked from budget", role: RoleAdmin, view: ViewBudget, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(tt.role)
			assert.Equal(t, tt.allowed, r.Allowed(tt.view))
			assert.Equal(t, tt.allowed, r.Goto(tt.view))
			if tt.allowed {
				assert.Equal(t, tt.view, r.Active())
			} else {
				assert.Equal(t, ViewDashboard, r.Active())
			}
		})
	}
}

// Re-entering the active view must not report a change, so callers never
// issue a redundant refetch.
func TestRouter_ReenterSameView(t *testing.T) {
	r := NewRouter(RoleUser)

	assert.True(t, r.Goto(ViewTransactions))
	assert.False(t, r.Goto(ViewTransactions))
	assert.Equal(t, ViewTransactions, r.Active())
}

func TestRoleFromAdminFlag(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromAdminFlag(true))
	assert.Equal(t, RoleUser, RoleFromAdminFlag(false))
}

func TestViewsFor(t *testing.T) {
	assert.Equal(t, []View{ViewDashboard, ViewTransactions, ViewBudget, ViewReports}, ViewsFor(RoleUser))
	assert.Equal(t, []View{ViewDashboard, ViewCategories, ViewUsers, ViewServer}, ViewsFor(RoleAdmin))
}
