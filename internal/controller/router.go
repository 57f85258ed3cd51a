package controller

// Role partitions the menu between regular users and administrators.
type Role int

const (
	// RoleUser is a regular user.
	RoleUser Role = iota
	// RoleAdmin is an administrator.
	RoleAdmin
)

// RoleFromAdminFlag maps the server-issued is_admin flag to a Role. The
// flag is the only source of role truth; the username is never consulted.
func RoleFromAdminFlag(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// View names one screen of the dashboard.
type View int

const (
	// ViewDashboard is the summary landing screen.
	ViewDashboard View = iota
	// ViewTransactions is the transaction list. User role.
	ViewTransactions
	// ViewBudget is the budget overview. User role.
	ViewBudget
	// ViewReports is the monthly report. User role.
	ViewReports
	// ViewCategories is category management. Admin role.
	ViewCategories
	// ViewUsers is user management. Admin role.
	ViewUsers
	// ViewServer is server management. Admin role.
	ViewServer
)

// String implements fmt.Stringer.
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewTransactions:
		return "Transactions"
	case ViewBudget:
		return "Budget"
	case ViewReports:
		return "Reports"
	case ViewCategories:
		return "Category Management"
	case ViewUsers:
		return "User Management"
	case ViewServer:
		return "Server Management"
	default:
		return "Unknown"
	}
}

// userViews and adminViews are the menu entries per role, in display order.
var (
	userViews  = []View{ViewDashboard, ViewTransactions, ViewBudget, ViewReports}
	adminViews = []View{ViewDashboard, ViewCategories, ViewUsers, ViewServer}
)

// ViewsFor returns the views reachable by the given role.
func ViewsFor(role Role) []View {
	if role == RoleAdmin {
		return adminViews
	}
	return userViews
}

// Router is the state machine over named views, gated by role. Logout is
// not a router transition; the session guard handles it as a side exit.
type Router struct {
	role   Role
	active View
}

// NewRouter creates a router for the role. The initial view on an
// authenticated mount is the dashboard.
func NewRouter(role Role) *Router {
	return &Router{role: role, active: ViewDashboard}
}

// Active returns the current view.
func (r *Router) Active() View {
	return r.active
}

// Role returns the session role.
func (r *Router) Role() Role {
	return r.role
}

// Allowed reports whether the role may reach the view.
func (r *Router) Allowed(v View) bool {
	for _, allowed := range ViewsFor(r.role) {
		if allowed == v {
			return true
		}
	}
	return false
}

// Goto switches to the view. It reports true only when the view actually
// changed: re-entering the active view must not trigger a redundant
// refetch, and views outside the role's menu are unreachable.
func (r *Router) Goto(v View) bool {
	if !r.Allowed(v) || v == r.active {
		return false
	}
	r.active = v
	return true
}
