package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LEEJEHEON/moneycheck/internal/common"
	"github.com/LEEJEHEON/moneycheck/internal/controller"
	"github.com/LEEJEHEON/moneycheck/internal/model"
	"github.com/LEEJEHEON/moneycheck/internal/session"
)

// fakeClient is an in-memory clientAPI that records calls.
type fakeClient struct {
	transactions []model.Transaction
	categories   []model.Category
	accounts     []model.Account

	listTransactionCalls int
	createCalls          int
	updateCalls          int
	deleteCalls          int
	bulkDeleted          int
	bulkCalls            int
}

func (f *fakeClient) ListTransactions(_ context.Context) ([]model.Transaction, error) {
	f.listTransactionCalls++
	return f.transactions, nil
}

func (f *fakeClient) CreateTransaction(_ context.Context, _ *model.TransactionDraft) error {
	f.createCalls++
	return nil
}

func (f *fakeClient) UpdateTransaction(_ context.Context, _ int, _ *model.TransactionDraft) error {
	f.updateCalls++
	return nil
}

func (f *fakeClient) DeleteTransaction(_ context.Context, _ int) error {
	f.deleteCalls++
	return nil
}

func (f *fakeClient) BulkDeleteTransactions(_ context.Context, ids []int) (int, error) {
	f.bulkCalls++
	return f.bulkDeleted, nil
}

func (f *fakeClient) ListCategories(_ context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeClient) CreateCategory(_ context.Context, _ *model.CategoryDraft) error {
	f.createCalls++
	return nil
}

func (f *fakeClient) UpdateCategory(_ context.Context, _ int, _ *model.CategoryDraft) error {
	f.updateCalls++
	return nil
}

func (f *fakeClient) DeleteCategory(_ context.Context, _ int) error {
	f.deleteCalls++
	return nil
}

func (f *fakeClient) ListAccounts(_ context.Context) ([]model.Account, error) {
	return f.accounts, nil
}

func (f *fakeClient) UpdateAccount(_ context.Context, _ int, _ *model.AccountDraft) error {
	f.updateCalls++
	return nil
}

func (f *fakeClient) DeleteAccount(_ context.Context, _ int) error {
	f.deleteCalls++
	return nil
}

func newTestModel(t *testing.T, isAdmin bool) (Model, *fakeClient, *session.Guard) {
	t.Helper()

	store := session.NewStore(t.TempDir())
	require.NoError(t, store.Save(session.Identity{
		Username:      "tester",
		SessionCookie: "sessionid=abc",
		UserID:        1,
		IsAdmin:       isAdmin,
	}))

	guard := session.NewGuard(store)
	identity, err := guard.Mount()
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.Guard = guard

	m := newModel(cfg, *identity)
	fake := &fakeClient{}
	m.client = fake
	return m, fake, guard
}

func testTx(id int, amount string) model.Transaction {
	return model.Transaction{
		ID:              id,
		Type:            model.TransactionTypeExpense,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: model.Today(),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// runCmd executes a command and dispatches every message it produces back
// through Update, the way the runtime does, until the chain settles.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = runCmd(t, m, c)
		}
	default:
		var next tea.Cmd
		m, next = update(t, m, msg)
		m = runCmd(t, m, next)
	}
	return m
}

func loadTransactionList(t *testing.T, m Model, txs ...model.Transaction) Model {
	t.Helper()
	token := m.transactions.Begin()
	m, _ = update(t, m, transactionsLoadedMsg{
		transactions: txs,
		token:        token,
		epoch:        m.guard.Epoch(),
	})
	return m
}

func TestModel_InitLoadsInitialData(t *testing.T) {
	m, fake, _ := newTestModel(t, false)
	fake.transactions = []model.Transaction{testTx(1, "10")}
	fake.categories = []model.Category{{ID: 5, Name: "Food"}}

	m = runCmd(t, m, m.Init())

	require.Len(t, m.transactions.Items(), 1, "initial transaction load must commit")
	require.Len(t, m.categories.Items(), 1, "category pre-warm must commit")
	assert.Equal(t, 1, fake.listTransactionCalls)
}

func TestModel_InitLoadsCategoriesForAdmin(t *testing.T) {
	m, fake, _ := newTestModel(t, true)
	fake.categories = []model.Category{{ID: 5, Name: "Food"}}

	m = runCmd(t, m, m.Init())

	require.Len(t, m.categories.Items(), 1)
	assert.Equal(t, 0, fake.listTransactionCalls, "admins have no transaction list to fetch")
}

// A fetch issued after startup must supersede the startup fetch, never
// the other way around.
func TestModel_RefreshAfterInitWins(t *testing.T) {
	m, fake, _ := newTestModel(t, false)
	fake.transactions = []model.Transaction{testTx(1, "10")}
	m = runCmd(t, m, m.Init())

	refreshToken := m.transactions.Begin()
	m, _ = update(t, m, transactionsLoadedMsg{
		transactions: []model.Transaction{testTx(2, "20")},
		token:        refreshToken,
		epoch:        m.guard.Epoch(),
	})

	require.Len(t, m.transactions.Items(), 1)
	assert.Equal(t, 2, m.transactions.Items()[0].ID)
}

func TestModel_BulkDeleteClearsSelectionAndRefetches(t *testing.T) {
	m, fake, guard := newTestModel(t, false)
	updated, _ := m.gotoView(controller.ViewTransactions)
	m = updated.(Model)
	m = loadTransactionList(t, m, testTx(3, "10"), testTx(7, "20"), testTx(9, "30"))

	m.selection.Toggle(3)
	m.selection.Toggle(7)
	m.selection.Toggle(9)
	m.syncTable()
	require.Equal(t, "[x]", m.table.Rows()[0][0])

	// The server deleted only two of the three; the selection is still
	// cleared entirely and the list refetched.
	m, cmd := update(t, m, bulkDeleteDoneMsg{deleted: 2, epoch: guard.Epoch()})

	assert.Equal(t, 0, m.selection.Count())
	assert.Equal(t, "2 transactions deleted.", m.status)
	assert.Equal(t, "[ ]", m.table.Rows()[0][0], "row markers clear with the selection")
	require.NotNil(t, cmd)

	cmd()
	assert.Equal(t, 1, fake.listTransactionCalls)
}

func TestModel_RefreshPrunesSelection(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	m = loadTransactionList(t, m, testTx(1, "10"), testTx(2, "20"))

	m.selection.Toggle(1)
	m.selection.Toggle(2)

	// Id 2 disappeared server-side; the refetch drops it from the selection.
	m = loadTransactionList(t, m, testTx(1, "10"))

	assert.Equal(t, []int{1}, m.selection.IDs())
}

func TestModel_ResponseAfterLogoutDiscarded(t *testing.T) {
	m, _, guard := newTestModel(t, false)
	m = loadTransactionList(t, m, testTx(1, "10"))

	token := m.transactions.Begin()
	staleEpoch := guard.Epoch()
	require.NoError(t, guard.Logout())

	m, _ = update(t, m, transactionsLoadedMsg{
		transactions: []model.Transaction{testTx(2, "20"), testTx(3, "30")},
		token:        token,
		epoch:        staleEpoch,
	})

	// The late response never lands.
	require.Len(t, m.transactions.Items(), 1)
	assert.Equal(t, 1, m.transactions.Items()[0].ID)
}

func TestModel_UnauthorizedResponseEndsSession(t *testing.T) {
	m, _, guard := newTestModel(t, false)

	token := m.transactions.Begin()
	m, cmd := update(t, m, transactionsLoadedMsg{
		err:   common.ErrUnauthorized,
		token: token,
		epoch: guard.Epoch(),
	})

	assert.True(t, m.sessionExpired)
	assert.False(t, guard.Authenticated())
	require.NotNil(t, cmd)
}

func TestModel_GotoViewFetchesOnce(t *testing.T) {
	m, _, _ := newTestModel(t, false)

	updated, cmd := m.gotoView(controller.ViewTransactions)
	m = updated.(Model)
	assert.NotNil(t, cmd, "entering a view fetches its list")

	_, cmd = m.gotoView(controller.ViewTransactions)
	assert.Nil(t, cmd, "re-entering the active view must not refetch")
}

func TestModel_AdminCannotReachUserViews(t *testing.T) {
	m, _, _ := newTestModel(t, true)

	updated, cmd := m.gotoView(controller.ViewBudget)
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, controller.ViewDashboard, m.router.Active())
}

func TestModel_DoubleSubmitIssuesOneSave(t *testing.T) {
	m, fake, _ := newTestModel(t, false)
	updated, _ := m.gotoView(controller.ViewTransactions)
	m = updated.(Model)

	m.txSession.OpenForCreate()
	m.form = m.transactionForm()

	updated, cmd := m.submitSession()
	m = updated.(Model)
	require.NotNil(t, cmd)
	cmd()

	// The session is busy until the save lands; a second submit is ignored.
	_, cmd = m.submitSession()
	assert.Nil(t, cmd)
	assert.Equal(t, 1, fake.createCalls)
}

func TestModel_BulkDeleteRequiresSelection(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	updated, _ := m.gotoView(controller.ViewTransactions)
	m = updated.(Model)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.False(t, m.confirmingBulk)
}
