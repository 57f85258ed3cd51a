package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/LEEJEHEON/moneycheck/internal/common"
	"github.com/LEEJEHEON/moneycheck/internal/controller"
	"github.com/LEEJEHEON/moneycheck/internal/model"
	"github.com/LEEJEHEON/moneycheck/internal/report"
	"github.com/LEEJEHEON/moneycheck/internal/tui/components"
)

// budgetWarnPct is the budget usage at which the dashboard turns red.
var budgetWarnPct = decimal.NewFromInt(100)

// View renders the full screen: menu on the left, the active view's
// content on the right, and any modal centered on top of everything.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.modalOpen() {
		return components.Overlay(m.width, m.height, m.renderModal())
	}
	if m.confirmingBulk {
		return components.Overlay(m.width, m.height, m.renderBulkConfirm())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderMenu(), m.renderContent())

	sections := []string{m.renderHeader(), body}
	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	role := "user"
	if m.router.Role() == controller.RoleAdmin {
		role = "admin"
	}
	title := m.theme.Title.Render("moneycheck")
	who := m.theme.Hint.Render(fmt.Sprintf("  %s (%s)", m.identity.Username, role))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, who)
}

func (m Model) renderMenu() string {
	var b strings.Builder
	for i, v := range controller.ViewsFor(m.router.Role()) {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.router.Active() {
			b.WriteString(m.theme.MenuActive.Render(label))
		} else {
			b.WriteString(m.theme.MenuItem.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderContent() string {
	var content string
	switch m.router.Active() {
	case controller.ViewDashboard:
		content = m.renderDashboard()
	case controller.ViewTransactions:
		content = m.renderTransactions()
	case controller.ViewBudget:
		content = m.renderBudget()
	case controller.ViewReports:
		content = m.renderReports()
	case controller.ViewCategories, controller.ViewUsers:
		content = m.renderTable()
	case controller.ViewServer:
		content = m.renderServer()
	}

	if banner := m.bannerMessage(); banner != "" {
		content = m.theme.StatusError.Render(banner) + "\n\n" + content
	}

	return lipgloss.NewStyle().MarginLeft(2).Render(content)
}

// bannerMessage surfaces the active view's fetch error, translated to its
// user-facing form.
func (m Model) bannerMessage() string {
	if m.banner != "" {
		return m.banner
	}

	var err error
	switch m.router.Active() {
	case controller.ViewCategories:
		err = m.categories.Err()
	case controller.ViewUsers:
		err = m.accounts.Err()
	default:
		err = m.transactions.Err()
	}
	if err == nil {
		return ""
	}
	return common.UserMessage(err)
}

func (m Model) renderDashboard() string {
	if m.router.Role() == controller.RoleAdmin {
		return m.renderAdminDashboard()
	}

	if !m.transactions.Loaded() && m.transactions.Loading() {
		return m.theme.Hint.Render("Loading...")
	}

	now := time.Now()
	summary := report.MonthToDate(m.transactions.Items(), now)

	cards := []string{
		m.theme.Card.Render(m.theme.Subtitle.Render("Income") + "\n" +
			m.theme.Income.Render("+"+summary.Income.StringFixed(2))),
		m.theme.Card.Render(m.theme.Subtitle.Render("Expense") + "\n" +
			m.theme.Expense.Render("-"+summary.Expense.StringFixed(2))),
		m.theme.Card.Render(m.theme.Subtitle.Render("Balance") + "\n" +
			m.theme.Bold.Render(summary.Balance.StringFixed(2))),
	}

	out := m.theme.Subtitle.Render(now.Format("January 2006")) + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if !m.config.MonthlyBudget.IsZero() {
		usage := summary.BudgetUsage(m.config.MonthlyBudget)
		line := fmt.Sprintf("Budget: %s of %s used (%s%%)",
			summary.Expense.StringFixed(2), m.config.MonthlyBudget.StringFixed(2), usage)
		style := m.theme.StatusSuccess
		if usage.GreaterThanOrEqual(budgetWarnPct) {
			style = m.theme.StatusError
		}
		out += "\n\n" + style.Render(line)
	}

	return out
}

func (m Model) renderAdminDashboard() string {
	if !m.categories.Loaded() && m.categories.Loading() {
		return m.theme.Hint.Render("Loading...")
	}

	cards := []string{
		m.theme.Card.Render(m.theme.Subtitle.Render("Categories") + "\n" +
			m.theme.Bold.Render(fmt.Sprintf("%d", len(m.categories.Items())))),
	}
	if m.accounts.Loaded() {
		cards = append(cards, m.theme.Card.Render(m.theme.Subtitle.Render("Users")+"\n"+
			m.theme.Bold.Render(fmt.Sprintf("%d", len(m.accounts.Items())))))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n" +
		m.theme.Hint.Render("Use the menu to manage categories, users, and the server.")
}

func (m Model) renderTransactions() string {
	out := m.renderTable()
	if n := m.selection.Count(); n > 0 {
		out += "\n" + m.theme.StatusInfo.Render(fmt.Sprintf("%d selected", n))
	}
	return out
}

func (m Model) renderTable() string {
	if m.activeLoading() {
		return m.theme.Hint.Render("Loading...")
	}
	if len(m.rowIDs) == 0 {
		return m.theme.Hint.Render("Nothing here yet.")
	}
	return m.table.View()
}

func (m Model) renderBudget() string {
	if m.transactions.Loading() && !m.transactions.Loaded() {
		return m.theme.Hint.Render("Loading...")
	}

	now := time.Now()
	summary := report.MonthToDate(m.transactions.Items(), now)

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render(now.Format("January 2006")) + "\n")

	if m.config.MonthlyBudget.IsZero() {
		b.WriteString(m.theme.Hint.Render("No monthly budget configured. Set budget.monthly in the config file.") + "\n\n")
	} else {
		usage := summary.BudgetUsage(m.config.MonthlyBudget)
		b.WriteString(fmt.Sprintf("Spent %s of %s (%s%%)\n\n",
			summary.Expense.StringFixed(2), m.config.MonthlyBudget.StringFixed(2), usage))
	}

	totals := report.ExpenseByCategory(m.transactions.Items(), now)
	if len(totals) == 0 {
		b.WriteString(m.theme.Hint.Render("No expenses this month."))
		return b.String()
	}
	for _, ct := range totals {
		b.WriteString(fmt.Sprintf("%-20s %s\n", ct.Name, m.theme.Expense.Render(ct.Total.StringFixed(2))))
	}
	return b.String()
}

func (m Model) renderReports() string {
	if m.transactions.Loading() && !m.transactions.Loaded() {
		return m.theme.Hint.Render("Loading...")
	}

	months := report.Monthly(m.transactions.Items())
	if len(months) == 0 {
		return m.theme.Hint.Render("No transactions yet.")
	}

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("Monthly totals") + "\n")
	b.WriteString(fmt.Sprintf("%-10s %12s %12s %12s\n", "Month", "Income", "Expense", "Net"))
	for _, mt := range months {
		net := mt.Income.Sub(mt.Expense)
		b.WriteString(fmt.Sprintf("%-10s %12s %12s %12s\n",
			mt.Month, mt.Income.StringFixed(2), mt.Expense.StringFixed(2), net.StringFixed(2)))
	}
	return b.String()
}

func (m Model) renderServer() string {
	if !m.probed {
		return m.theme.Hint.Render("Checking server...")
	}
	if m.probeErr != nil {
		return m.theme.StatusError.Render("Server unreachable") + "\n" +
			m.theme.Hint.Render(common.UserMessage(m.probeErr))
	}
	return m.theme.StatusSuccess.Render("Server is up") + "\n" +
		m.theme.Hint.Render(fmt.Sprintf("%d categories on record", len(m.categories.Items())))
}

func (m Model) renderModal() string {
	if m.sessionConfirming() {
		return m.renderDeleteConfirm()
	}

	var errMsg string
	if err := m.sessionErr(); err != nil {
		errMsg = common.UserMessage(err)
	}
	return m.form.View(m.sessionBusy(), errMsg)
}

func (m Model) renderDeleteConfirm() string {
	noun := "record"
	switch m.router.Active() {
	case controller.ViewTransactions:
		noun = "transaction"
	case controller.ViewCategories:
		noun = "category"
	case controller.ViewUsers:
		noun = "user"
	}
	body := m.theme.Title.Render("Confirm delete") + "\n" +
		fmt.Sprintf("Delete this %s?\n\n", noun) +
		m.theme.Hint.Render("[y] delete  [n] keep")
	return m.theme.BorderedBox.Render(body)
}

func (m Model) renderBulkConfirm() string {
	body := m.theme.Title.Render("Confirm delete") + "\n" +
		fmt.Sprintf("Delete %d selected transactions?\n\n", m.selection.Count()) +
		m.theme.Hint.Render("[y] delete  [n] keep")
	return m.theme.BorderedBox.Render(body)
}

func (m Model) renderFooter() string {
	var parts []string
	if m.status != "" {
		parts = append(parts, m.theme.StatusSuccess.Render(m.status))
	}
	parts = append(parts, m.theme.Hint.Render(m.keyHints()))
	return strings.Join(parts, "\n")
}

func (m Model) keyHints() string {
	switch m.router.Active() {
	case controller.ViewTransactions:
		return "[n] new  [enter] edit  [x] select  [a] all  [d] delete selected  [tab] next  [ctrl+r] refresh  [q] quit"
	case controller.ViewCategories:
		return "[n] new  [enter] edit  [tab] next  [ctrl+r] refresh  [q] quit"
	case controller.ViewUsers:
		return "[enter] edit  [tab] next  [ctrl+r] refresh  [q] quit"
	default:
		return "[tab] next view  [ctrl+r] refresh  [q] quit"
	}
}

func (m Model) sessionErr() error {
	switch m.router.Active() {
	case controller.ViewTransactions:
		return m.txSession.Err()
	case controller.ViewCategories:
		return m.catSession.Err()
	case controller.ViewUsers:
		return m.acctSession.Err()
	}
	return nil
}

func (m Model) activeLoading() bool {
	switch m.router.Active() {
	case controller.ViewCategories:
		return m.categories.Loading() && !m.categories.Loaded()
	case controller.ViewUsers:
		return m.accounts.Loading() && !m.accounts.Loaded()
	default:
		return m.transactions.Loading() && !m.transactions.Loaded()
	}
}

// columnsForView returns the table layout for the views that list rows.
// Views rendered without a table get a placeholder column so the shared
// table widget is always valid.
func (m Model) columnsForView(v controller.View) []table.Column {
	switch v {
	case controller.ViewTransactions:
		return []table.Column{
			{Title: " ", Width: 3},
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 9},
			{Title: "Category", Width: 16},
			{Title: "Amount", Width: 12},
			{Title: "Description", Width: 28},
		}
	case controller.ViewCategories:
		return []table.Column{
			{Title: "Type", Width: 12},
			{Title: "Name", Width: 20},
			{Title: "Remark", Width: 28},
			{Title: "Created by", Width: 14},
		}
	case controller.ViewUsers:
		return []table.Column{
			{Title: "Username", Width: 16},
			{Title: "Email", Width: 26},
			{Title: "Active", Width: 8},
			{Title: "Admin", Width: 7},
			{Title: "Joined", Width: 12},
		}
	default:
		return []table.Column{{Title: "", Width: 1}}
	}
}

// syncTable rebuilds the table rows from the active view's list and keeps
// rowIDs aligned with them so the cursor can be mapped back to an entity.
func (m *Model) syncTable() {
	var rows []table.Row
	var ids []int

	switch m.router.Active() {
	case controller.ViewTransactions:
		for _, tx := range m.transactions.Items() {
			marker := "[ ]"
			if m.selection.Has(tx.ID) {
				marker = "[x]"
			}
			amount := tx.Amount.StringFixed(2)
			if tx.Type == model.TransactionTypeExpense {
				amount = "-" + amount
			} else {
				amount = "+" + amount
			}
			rows = append(rows, table.Row{
				marker,
				tx.TransactionDate.String(),
				tx.TypeDisplay,
				tx.Category.Name,
				amount,
				tx.Description,
			})
			ids = append(ids, tx.ID)
		}

	case controller.ViewCategories:
		for _, cat := range m.categories.Items() {
			rows = append(rows, table.Row{cat.TypeDisplay, cat.Name, cat.Remark, cat.CreatedBy})
			ids = append(ids, cat.ID)
		}

	case controller.ViewUsers:
		for _, acct := range m.accounts.Items() {
			rows = append(rows, table.Row{
				acct.Username,
				acct.Email,
				yesNo(acct.IsActive),
				yesNo(acct.IsAdmin),
				acct.DateJoined.Format("2006-01-02"),
			})
			ids = append(ids, acct.ID)
		}
	}

	m.table.SetRows(rows)
	m.rowIDs = ids
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
