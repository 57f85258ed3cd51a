package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LEEJEHEON/moneycheck/internal/common"
	"github.com/LEEJEHEON/moneycheck/internal/controller"
	"github.com/LEEJEHEON/moneycheck/internal/model"
	"github.com/LEEJEHEON/moneycheck/internal/session"
	"github.com/LEEJEHEON/moneycheck/internal/tui/components"
	"github.com/LEEJEHEON/moneycheck/internal/tui/themes"
)

// Model holds the main TUI state: the role-gated router, one list
// controller per entity kind, the bulk selection over transactions, and
// one edit session per entity kind (at most one open at a time).
type Model struct {
	guard    *session.Guard
	client   clientAPI
	identity session.Identity
	theme    themes.Theme
	keymap   KeyMap
	config   Config

	router       *controller.Router
	transactions controller.List[model.Transaction]
	categories   controller.List[model.Category]
	accounts     controller.List[model.Account]
	selection    *controller.Selection

	txSession   *controller.Session[*model.TransactionDraft]
	catSession  *controller.Session[*model.CategoryDraft]
	acctSession *controller.Session[*model.AccountDraft]

	form   components.FormModel
	table  table.Model
	rowIDs []int

	banner         string
	status         string
	probeErr       error
	width          int
	height         int
	probed         bool
	confirmingBulk bool
	quitting       bool
	sessionExpired bool
}

// newModel creates a model for the mounted identity.
func newModel(cfg Config, identity session.Identity) Model {
	role := controller.RoleFromAdminFlag(identity.IsAdmin)

	m := Model{
		config:      cfg,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		client:      cfg.Client,
		guard:       cfg.Guard,
		identity:    identity,
		router:      controller.NewRouter(role),
		selection:   controller.NewSelection(),
		txSession:   controller.NewSession(model.NewTransactionDraft),
		catSession:  controller.NewSession(func() *model.CategoryDraft { return &model.CategoryDraft{} }),
		acctSession: controller.NewSession(func() *model.AccountDraft { return &model.AccountDraft{} }),
		width:       cfg.Width,
		height:      cfg.Height,
	}
	m.table = components.NewEntityTable(m.columnsForView(m.router.Active()), m.tableHeight(), m.theme)

	return m
}

// Init schedules the initial data load. The runtime discards the model
// copy Init runs on, so the actual Begin calls happen in Update when
// initMsg arrives.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, func() tea.Msg { return initMsg{} })
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		// Administrators pre-warm the category list; regular users fetch
		// their transactions (which also back the dashboard cards) plus
		// the categories needed by the transaction form.
		cmds := []tea.Cmd{m.loadCategories(m.categories.Begin())}
		if m.router.Role() == controller.RoleUser {
			cmds = append(cmds, m.loadTransactions(m.transactions.Begin()))
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case transactionsLoadedMsg:
		if m.guard.Stale(msg.epoch) {
			return m, nil
		}
		if errors.Is(msg.err, common.ErrUnauthorized) {
			return m.expireSession()
		}
		if m.transactions.Commit(msg.token, msg.transactions, msg.err) {
			// Ids gone from the refreshed list must leave the selection.
			m.selection.Prune(transactionIDs(m.transactions.Items()))
			m.syncTable()
		}
		return m, nil

	case categoriesLoadedMsg:
		if m.guard.Stale(msg.epoch) {
			return m, nil
		}
		if errors.Is(msg.err, common.ErrUnauthorized) {
			return m.expireSession()
		}
		if m.categories.Commit(msg.token, msg.categories, msg.err) {
			m.syncTable()
		}
		return m, nil

	case accountsLoadedMsg:
		if m.guard.Stale(msg.epoch) {
			return m, nil
		}
		if errors.Is(msg.err, common.ErrUnauthorized) {
			return m.expireSession()
		}
		if m.accounts.Commit(msg.token, msg.accounts, msg.err) {
			m.syncTable()
		}
		return m, nil

	case saveDoneMsg:
		return m.handleSaveDone(msg)

	case deleteDoneMsg:
		return m.handleDeleteDone(msg)

	case bulkDeleteDoneMsg:
		if m.guard.Stale(msg.epoch) {
			return m, nil
		}
		if errors.Is(msg.err, common.ErrUnauthorized) {
			return m.expireSession()
		}
		if msg.err != nil {
			m.banner = common.UserMessage(msg.err)
			return m, nil
		}
		// The server reports only a count; clear the whole selection and
		// let the refetch establish what actually survived.
		m.selection.Clear()
		m.syncTable()
		m.status = fmt.Sprintf("%d transactions deleted.", msg.deleted)
		return m, m.loadTransactions(m.transactions.Begin())

	case probeDoneMsg:
		if m.guard.Stale(msg.epoch) {
			return m, nil
		}
		m.probed = true
		m.probeErr = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

func (m Model) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	if m.guard.Stale(msg.epoch) {
		return m, nil
	}
	if errors.Is(msg.err, common.ErrUnauthorized) {
		return m.expireSession()
	}

	switch msg.view {
	case controller.ViewTransactions:
		m.txSession.FinishSave(msg.err)
	case controller.ViewCategories:
		m.catSession.FinishSave(msg.err)
	case controller.ViewUsers:
		m.acctSession.FinishSave(msg.err)
	}

	if msg.err != nil {
		return m, nil
	}

	m.status = "Saved."
	return m, m.refreshView(msg.view)
}

func (m Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	if m.guard.Stale(msg.epoch) {
		return m, nil
	}
	if errors.Is(msg.err, common.ErrUnauthorized) {
		return m.expireSession()
	}

	switch msg.view {
	case controller.ViewTransactions:
		m.txSession.FinishDelete(msg.err)
	case controller.ViewCategories:
		m.catSession.FinishDelete(msg.err)
	case controller.ViewUsers:
		m.acctSession.FinishDelete(msg.err)
	}

	if msg.err != nil {
		return m, nil
	}

	m.status = "Deleted."
	return m, m.refreshView(msg.view)
}

// refreshView refetches the list backing the given view after a mutation.
func (m *Model) refreshView(view controller.View) tea.Cmd {
	switch view {
	case controller.ViewTransactions:
		return m.loadTransactions(m.transactions.Begin())
	case controller.ViewCategories:
		return m.loadCategories(m.categories.Begin())
	case controller.ViewUsers:
		return m.loadAccounts(m.accounts.Begin())
	default:
		return nil
	}
}

// expireSession handles a 401 from anywhere: identity is cleared and the
// program exits to the login flow.
func (m Model) expireSession() (tea.Model, tea.Cmd) {
	_ = m.guard.Logout()
	m.sessionExpired = true
	m.quitting = true
	return m, tea.Quit
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalOpen() {
		return m.handleModalKeys(msg)
	}
	if m.confirmingBulk {
		return m.handleBulkConfirmKeys(msg)
	}
	return m.handleListKeys(msg)
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextView):
		return m.gotoView(m.nextView())

	case key.Matches(msg, m.keymap.Refresh):
		m.banner = ""
		return m, m.refreshView(m.router.Active())
	}

	// Number keys jump straight to a menu entry.
	views := controller.ViewsFor(m.router.Role())
	if len(msg.String()) == 1 {
		if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(views) {
			return m.gotoView(views[idx])
		}
	}

	switch m.router.Active() {
	case controller.ViewTransactions:
		return m.handleTransactionKeys(msg)
	case controller.ViewCategories:
		return m.handleCategoryKeys(msg)
	case controller.ViewUsers:
		return m.handleAccountKeys(msg)
	}

	return m, nil
}

func (m Model) handleTransactionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ToggleSelect):
		if id, ok := m.cursorID(); ok {
			m.selection.Toggle(id)
			m.syncTable()
		}
		return m, nil

	case key.Matches(msg, m.keymap.ToggleAll):
		m.selection.ToggleAll(transactionIDs(m.transactions.Items()))
		m.syncTable()
		return m, nil

	case key.Matches(msg, m.keymap.BulkDelete):
		// The affordance exists only while something is selected.
		if m.selection.Count() > 0 {
			m.confirmingBulk = true
		}
		return m, nil

	case key.Matches(msg, m.keymap.New):
		m.txSession.OpenForCreate()
		m.form = m.transactionForm()
		return m, nil

	case key.Matches(msg, m.keymap.Edit):
		if tx, ok := m.cursorTransaction(); ok {
			m.txSession.OpenForEdit(tx.ID, model.DraftFromTransaction(tx))
			m.form = m.transactionForm()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleCategoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.New):
		m.catSession.OpenForCreate()
		m.form = m.categoryForm()
		return m, nil

	case key.Matches(msg, m.keymap.Edit):
		if cat, ok := m.cursorCategory(); ok {
			m.catSession.OpenForEdit(cat.ID, model.DraftFromCategory(cat))
			m.form = m.categoryForm()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleAccountKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Edit) {
		if acct, ok := m.cursorAccount(); ok {
			m.acctSession.OpenForEdit(acct.ID, model.DraftFromAccount(acct))
			m.form = m.accountForm()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleBulkConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		m.confirmingBulk = false
		return m, m.bulkDeleteTransactions(m.selection.IDs())

	case key.Matches(msg, m.keymap.Deny):
		m.confirmingBulk = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete confirmation swallows everything but yes/no.
	if m.sessionConfirming() {
		switch {
		case key.Matches(msg, m.keymap.Confirm):
			return m.confirmSessionDelete()
		case key.Matches(msg, m.keymap.Deny):
			m.cancelSessionDelete()
		}
		return m, nil
	}

	if m.sessionBusy() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Close):
		m.closeSession()
		return m, nil

	case key.Matches(msg, m.keymap.Delete):
		m.requestSessionDelete()
		return m, nil

	case key.Matches(msg, m.keymap.Save):
		return m.submitSession()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.syncDraft()
	return m, cmd
}

// syncDraft copies the form's field values into the open session's draft.
func (m *Model) syncDraft() {
	for _, f := range m.form.Fields() {
		switch m.router.Active() {
		case controller.ViewTransactions:
			m.txSession.UpdateField(f.Name, f.Value())
		case controller.ViewCategories:
			m.catSession.UpdateField(f.Name, f.Value())
		case controller.ViewUsers:
			m.acctSession.UpdateField(f.Name, f.Value())
		}
	}
}

// submitSession issues the save for whichever session is open. BeginSave
// refuses while a mutation is already in flight, so a double press cannot
// cause a second network call.
func (m Model) submitSession() (tea.Model, tea.Cmd) {
	m.syncDraft()

	switch m.router.Active() {
	case controller.ViewTransactions:
		if m.txSession.BeginSave() {
			return m, m.saveTransaction(m.txSession.EditID(), m.txSession.Draft())
		}
	case controller.ViewCategories:
		if m.catSession.BeginSave() {
			return m, m.saveCategory(m.catSession.EditID(), m.catSession.Draft())
		}
	case controller.ViewUsers:
		if m.acctSession.BeginSave() {
			return m, m.saveAccount(m.acctSession.EditID(), m.acctSession.Draft())
		}
	}
	return m, nil
}

func (m Model) confirmSessionDelete() (tea.Model, tea.Cmd) {
	switch m.router.Active() {
	case controller.ViewTransactions:
		if m.txSession.ConfirmDelete() {
			return m, m.deleteTransaction(m.txSession.EditID())
		}
	case controller.ViewCategories:
		if m.catSession.ConfirmDelete() {
			return m, m.deleteCategory(m.catSession.EditID())
		}
	case controller.ViewUsers:
		if m.acctSession.ConfirmDelete() {
			return m, m.deleteAccount(m.acctSession.EditID())
		}
	}
	return m, nil
}

// gotoView transitions the router and, when the view actually changed,
// clears the error banner and fetches the list behind the new view.
func (m Model) gotoView(v controller.View) (tea.Model, tea.Cmd) {
	if !m.router.Goto(v) {
		return m, nil
	}

	m.banner = ""
	m.status = ""
	m.table = components.NewEntityTable(m.columnsForView(v), m.tableHeight(), m.theme)

	var cmd tea.Cmd
	switch v {
	case controller.ViewDashboard, controller.ViewTransactions, controller.ViewBudget, controller.ViewReports:
		if m.router.Role() == controller.RoleUser {
			cmd = m.loadTransactions(m.transactions.Begin())
		}
	case controller.ViewCategories:
		cmd = m.loadCategories(m.categories.Begin())
	case controller.ViewUsers:
		cmd = m.loadAccounts(m.accounts.Begin())
	case controller.ViewServer:
		m.probed = false
		cmd = m.probeServer()
	}

	m.syncTable()
	return m, cmd
}

func (m Model) nextView() controller.View {
	views := controller.ViewsFor(m.router.Role())
	for i, v := range views {
		if v == m.router.Active() {
			return views[(i+1)%len(views)]
		}
	}
	return views[0]
}

// Session helpers over whichever modal belongs to the active view.

func (m Model) modalOpen() bool {
	return m.txSession.Open() || m.catSession.Open() || m.acctSession.Open()
}

func (m Model) sessionBusy() bool {
	return m.txSession.Busy() || m.catSession.Busy() || m.acctSession.Busy()
}

func (m Model) sessionConfirming() bool {
	return m.txSession.Confirming() || m.catSession.Confirming() || m.acctSession.Confirming()
}

func (m *Model) closeSession() {
	m.txSession.Close()
	m.catSession.Close()
	m.acctSession.Close()
}

func (m *Model) requestSessionDelete() {
	switch m.router.Active() {
	case controller.ViewTransactions:
		m.txSession.RequestDelete()
	case controller.ViewCategories:
		m.catSession.RequestDelete()
	case controller.ViewUsers:
		m.acctSession.RequestDelete()
	}
}

func (m *Model) cancelSessionDelete() {
	m.txSession.CancelDelete()
	m.catSession.CancelDelete()
	m.acctSession.CancelDelete()
}

// Cursor lookups map the table cursor back to the entity under it.

func (m Model) cursorID() (int, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rowIDs) {
		return 0, false
	}
	return m.rowIDs[idx], true
}

func (m Model) cursorTransaction() (model.Transaction, bool) {
	id, ok := m.cursorID()
	if !ok {
		return model.Transaction{}, false
	}
	for _, tx := range m.transactions.Items() {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

func (m Model) cursorCategory() (model.Category, bool) {
	id, ok := m.cursorID()
	if !ok {
		return model.Category{}, false
	}
	for _, cat := range m.categories.Items() {
		if cat.ID == id {
			return cat, true
		}
	}
	return model.Category{}, false
}

func (m Model) cursorAccount() (model.Account, bool) {
	id, ok := m.cursorID()
	if !ok {
		return model.Account{}, false
	}
	for _, acct := range m.accounts.Items() {
		if acct.ID == id {
			return acct, true
		}
	}
	return model.Account{}, false
}

func (m Model) tableHeight() int {
	h := m.height - 8
	if h < 4 {
		h = 4
	}
	return h
}

func transactionIDs(txs []model.Transaction) []int {
	ids := make([]int, 0, len(txs))
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	return ids
}
