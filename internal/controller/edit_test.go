package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

func newTransactionSession() *Session[*model.TransactionDraft] {
	return NewSession(model.NewTransactionDraft)
}

func TestSession_OpenForCreate(t *testing.T) {
	s := newTransactionSession()

	s.OpenForCreate()

	assert.Equal(t, ModeCreating, s.Mode())
	assert.Equal(t, 0, s.EditID())
	assert.NotEmpty(t, s.Draft().TransactionDate, "transaction date defaults to today")
	assert.Empty(t, s.Draft().Amount)
}

func TestSession_OpenForEditSeedsDraft(t *testing.T) {
	s := NewSession(func() *model.CategoryDraft { return &model.CategoryDraft{} })

	cat := model.Category{ID: 5, Type: model.CategoryTypeExpense, Name: "Rent"}
	s.OpenForEdit(cat.ID, model.DraftFromCategory(cat))

	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, 5, s.EditID())
	assert.Equal(t, "Rent", s.Draft().Name)
	assert.Equal(t, "expense", s.Draft().Type)
}

// Create, fill in fields, save successfully: the session closes and the
// draft resets to empty defaults.
func TestSession_CreateSaveClosesAndResets(t *testing.T) {
	s := newTransactionSession()

	s.OpenForCreate()
	s.UpdateField("amount", "1000")
	s.UpdateField("description", "lunch")

	require.True(t, s.BeginSave())
	assert.True(t, s.Busy())
	assert.Equal(t, "1000", s.Draft().Amount)

	s.FinishSave(nil)

	assert.Equal(t, ModeClosed, s.Mode())
	assert.False(t, s.Busy())
	assert.Empty(t, s.Draft().Amount)
	assert.Empty(t, s.Draft().Description)
}

func TestSession_SaveFailureKeepsDraft(t *testing.T) {
	s := newTransactionSession()

	s.OpenForCreate()
	s.UpdateField("description", "lunch")

	require.True(t, s.BeginSave())
	s.FinishSave(errors.New("duplicate"))

	assert.Equal(t, ModeCreating, s.Mode(), "session stays open on failure")
	assert.Equal(t, "lunch", s.Draft().Description, "draft preserved for retry")
	assert.Error(t, s.Err())
	assert.False(t, s.Busy())
}

// Two saves in rapid succession while the first is still in flight must
// result in exactly one network mutation.
func TestSession_DoubleSaveIgnoredWhileBusy(t *testing.T) {
	s := newTransactionSession()
	s.OpenForCreate()

	mutations := 0
	if s.BeginSave() {
		mutations++
	}
	if s.BeginSave() {
		mutations++
	}

	assert.Equal(t, 1, mutations)
}

func TestSession_SaveWhileClosedIgnored(t *testing.T) {
	s := newTransactionSession()
	assert.False(t, s.BeginSave())
}

// Delete without the confirmation step makes no network call and leaves
// the session editing.
func TestSession_DeleteRequiresConfirmation(t *testing.T) {
	s := NewSession(func() *model.CategoryDraft { return &model.CategoryDraft{} })

	cat := model.Category{ID: 5, Name: "Rent"}
	s.OpenForEdit(cat.ID, model.DraftFromCategory(cat))

	// ConfirmDelete without RequestDelete: the precondition fails.
	assert.False(t, s.ConfirmDelete())
	assert.Equal(t, ModeEditing, s.Mode())
	assert.Equal(t, 5, s.EditID())
	assert.False(t, s.Busy())
}

func TestSession_ConfirmedDeleteFlow(t *testing.T) {
	s := NewSession(func() *model.CategoryDraft { return &model.CategoryDraft{} })
	s.OpenForEdit(5, &model.CategoryDraft{Name: "Rent"})

	require.True(t, s.RequestDelete())
	assert.True(t, s.Confirming())

	require.True(t, s.ConfirmDelete())
	assert.True(t, s.Busy())
	assert.False(t, s.Confirming())

	s.FinishDelete(nil)
	assert.Equal(t, ModeClosed, s.Mode())
}

func TestSession_CancelDelete(t *testing.T) {
	s := NewSession(func() *model.CategoryDraft { return &model.CategoryDraft{} })
	s.OpenForEdit(5, &model.CategoryDraft{Name: "Rent"})

	require.True(t, s.RequestDelete())
	s.CancelDelete()

	assert.False(t, s.Confirming())
	assert.False(t, s.ConfirmDelete(), "confirmation was disarmed")
	assert.Equal(t, ModeEditing, s.Mode())
}

func TestSession_DeleteOnlyValidWhileEditing(t *testing.T) {
	s := newTransactionSession()

	s.OpenForCreate()
	assert.False(t, s.RequestDelete())

	s.Close()
	assert.False(t, s.RequestDelete())
}

func TestSession_CloseDiscardsDraft(t *testing.T) {
	s := newTransactionSession()

	s.OpenForCreate()
	s.UpdateField("memo", "scratch")
	s.Close()

	assert.Equal(t, ModeClosed, s.Mode())
	assert.Empty(t, s.Draft().Memo)
}

func TestSession_UpdateFieldIgnoredWhileBusy(t *testing.T) {
	s := newTransactionSession()
	s.OpenForCreate()
	s.UpdateField("memo", "before")

	require.True(t, s.BeginSave())
	s.UpdateField("memo", "after")

	assert.Equal(t, "before", s.Draft().Memo)
}

func TestSession_AccountPasswordWriteOnly(t *testing.T) {
	s := NewSession(func() *model.AccountDraft { return &model.AccountDraft{} })

	acct := model.Account{ID: 2, Username: "alice", Email: "alice@example.com", IsActive: true}
	s.OpenForEdit(acct.ID, model.DraftFromAccount(acct))

	assert.Empty(t, s.Draft().Password, "password seeds empty")
	assert.Equal(t, "alice", s.Draft().Username)
}
