package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LEEJEHEON/moneycheck/internal/tui/themes"
)

func testForm() FormModel {
	fields := []Field{
		NewTextField("name", "Name", ""),
		NewSelectField("type", "Type", []Option{
			{Label: "Income", Value: "income"},
			{Label: "Expense", Value: "expense"},
		}, "income"),
	}
	return NewForm("Test", fields, themes.Default)
}

func TestForm_TabCyclesFocus(t *testing.T) {
	m := testForm()
	assert.Equal(t, 0, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)

	// Wraps back to the first field.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

func TestForm_ArrowsCycleSelect(t *testing.T) {
	m := testForm()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "expense", m.Fields()[1].Value())

	// Wraps around in both directions.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "income", m.Fields()[1].Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "expense", m.Fields()[1].Value())
}

func TestForm_TypingReachesFocusedTextField(t *testing.T) {
	m := testForm()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	assert.Equal(t, "hi", m.Fields()[0].Value())
}

func TestForm_SelectField_StartsOnCurrentValue(t *testing.T) {
	f := NewSelectField("type", "Type", []Option{
		{Label: "Income", Value: "income"},
		{Label: "Expense", Value: "expense"},
	}, "expense")

	require.Equal(t, "expense", f.Value())
}
