package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LEEJEHEON/moneycheck/internal/model"
)

func TestList_BeginSetsLoading(t *testing.T) {
	var l List[model.Transaction]

	token := l.Begin()
	assert.True(t, l.Loading())
	assert.NoError(t, l.Err())
	assert.NotZero(t, token)
}

func TestList_CommitSuccess(t *testing.T) {
	var l List[model.Transaction]

	token := l.Begin()
	committed := l.Commit(token, []model.Transaction{{ID: 1}}, nil)

	require.True(t, committed)
	assert.False(t, l.Loading())
	require.Len(t, l.Items(), 1)
	assert.Equal(t, 1, l.Items()[0].ID)
}

func TestList_CommitErrorKeepsPriorItems(t *testing.T) {
	var l List[model.Transaction]

	token := l.Begin()
	require.True(t, l.Commit(token, []model.Transaction{{ID: 1}}, nil))

	// A later refresh fails; the stale list stays visible.
	token = l.Begin()
	require.True(t, l.Commit(token, nil, errors.New("boom")))

	assert.False(t, l.Loading())
	assert.Error(t, l.Err())
	require.Len(t, l.Items(), 1)
	assert.Equal(t, 1, l.Items()[0].ID)
}

// A late-arriving response for a superseded request must not overwrite
// state committed by a newer request.
func TestList_StaleResponseIgnored(t *testing.T) {
	var l List[model.Transaction]

	first := l.Begin()
	second := l.Begin()

	// The second request resolves first with the fresh data.
	require.True(t, l.Commit(second, []model.Transaction{{ID: 1}}, nil))

	// The first, stale response arrives afterwards carrying extra rows
	// that no longer reflect server state.
	committed := l.Commit(first, []model.Transaction{{ID: 1}, {ID: 2}}, nil)

	assert.False(t, committed)
	require.Len(t, l.Items(), 1)
	assert.Equal(t, 1, l.Items()[0].ID)
	assert.False(t, l.Loading())
}

func TestList_StaleErrorIgnored(t *testing.T) {
	var l List[model.Category]

	first := l.Begin()
	second := l.Begin()

	require.True(t, l.Commit(second, []model.Category{{ID: 5}}, nil))
	assert.False(t, l.Commit(first, nil, errors.New("timeout")))

	assert.NoError(t, l.Err())
	assert.Len(t, l.Items(), 1)
}
