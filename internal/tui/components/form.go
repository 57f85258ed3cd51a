// Package components holds the reusable TUI widgets: the edit-form modal
// and the entity tables.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LEEJEHEON/moneycheck/internal/tui/themes"
)

// formKeyMap holds the field-navigation bindings. Enter, Esc, and Ctrl+D
// remain the parent's to handle.
type formKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Left  key.Binding
	Right key.Binding
}

var formKeys = formKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("Shift+Tab", "previous field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous option"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next option"),
	),
}

// Option is one choice of a select field.
type Option struct {
	Label string
	Value string
}

// Field is a single form control: a text input, or a select cycled with
// left/right when Options is non-empty.
type Field struct {
	Name     string
	Label    string
	Options  []Option
	Input    textinput.Model
	optIdx   int
	isSelect bool
}

// NewTextField creates a text input field. Name is the wire field name.
func NewTextField(name, label, value string) Field {
	input := textinput.New()
	input.SetValue(value)
	input.CharLimit = 200
	return Field{Name: name, Label: label, Input: input}
}

// NewPasswordField creates a masked text input field.
func NewPasswordField(name, label string) Field {
	f := NewTextField(name, label, "")
	f.Input.EchoMode = textinput.EchoPassword
	return f
}

// NewSelectField creates a select field, positioned on the option whose
// value matches current (or the first option).
func NewSelectField(name, label string, options []Option, current string) Field {
	f := Field{Name: name, Label: label, Options: options, isSelect: true}
	for i, opt := range options {
		if opt.Value == current {
			f.optIdx = i
			break
		}
	}
	return f
}

// Value returns the field's current wire value.
func (f Field) Value() string {
	if f.isSelect {
		if len(f.Options) == 0 {
			return ""
		}
		return f.Options[f.optIdx].Value
	}
	return f.Input.Value()
}

// FormModel is the create/edit modal's form: an ordered set of fields with
// one focused at a time.
type FormModel struct {
	theme  themes.Theme
	title  string
	fields []Field
	focus  int
	width  int
}

// NewForm creates a form with the given title and fields, focusing the
// first one.
func NewForm(title string, fields []Field, theme themes.Theme) FormModel {
	m := FormModel{
		title:  title,
		fields: fields,
		theme:  theme,
		width:  56,
	}
	if len(m.fields) > 0 && !m.fields[0].isSelect {
		m.fields[0].Input.Focus()
	}
	return m
}

// Update handles key messages for field navigation and editing. Enter,
// Esc, and Ctrl+D are left to the parent.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, formKeys.Next):
		m.setFocus((m.focus + 1) % len(m.fields))
		return m, nil

	case key.Matches(keyMsg, formKeys.Prev):
		m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
		return m, nil

	case key.Matches(keyMsg, formKeys.Left):
		if f := &m.fields[m.focus]; f.isSelect && len(f.Options) > 0 {
			f.optIdx = (f.optIdx - 1 + len(f.Options)) % len(f.Options)
			return m, nil
		}

	case key.Matches(keyMsg, formKeys.Right):
		if f := &m.fields[m.focus]; f.isSelect && len(f.Options) > 0 {
			f.optIdx = (f.optIdx + 1) % len(f.Options)
			return m, nil
		}
	}

	if f := &m.fields[m.focus]; !f.isSelect {
		var cmd tea.Cmd
		f.Input, cmd = f.Input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *FormModel) setFocus(idx int) {
	if cur := &m.fields[m.focus]; !cur.isSelect {
		cur.Input.Blur()
	}
	m.focus = idx
	if next := &m.fields[m.focus]; !next.isSelect {
		next.Input.Focus()
	}
}

// Fields returns the current fields for draft synchronization.
func (m FormModel) Fields() []Field {
	return m.fields
}

// View renders the form inside a bordered box.
func (m FormModel) View(busy bool, errMsg string) string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n")

	for i, f := range m.fields {
		label := f.Label
		if i == m.focus {
			label = m.theme.Bold.Render("> " + label)
		} else {
			label = m.theme.Hint.Render("  " + label)
		}

		var value string
		if f.isSelect {
			value = m.renderSelect(f, i == m.focus)
		} else {
			value = f.Input.View()
		}

		b.WriteString(label + "\n  " + value + "\n")
	}

	if errMsg != "" {
		b.WriteString("\n" + m.theme.StatusError.Render(errMsg) + "\n")
	}

	hint := "[Tab] fields  [Enter] save  [Esc] cancel  [Ctrl+D] delete"
	if busy {
		hint = "saving..."
	}
	b.WriteString("\n" + m.theme.Hint.Render(hint))

	return m.theme.BorderedBox.Width(m.width).Render(b.String())
}

func (m FormModel) renderSelect(f Field, focused bool) string {
	if len(f.Options) == 0 {
		return m.theme.Hint.Render("(none available)")
	}

	label := f.Options[f.optIdx].Label
	if focused {
		return m.theme.Selected.Render("◀ " + label + " ▶")
	}
	return m.theme.Normal.Render(label)
}

// Overlay centers content within the given bounds.
func Overlay(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
