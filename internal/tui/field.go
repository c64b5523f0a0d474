package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field is a labelled form input with an inline error slot.
type field interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(string)
	Error() string
	SetError(string)
	Multiline() bool
	Update(tea.Msg) tea.Cmd
	View() string
}

type fieldChrome struct {
	label    string
	required bool
	err      string
}

func (c fieldChrome) render(focused bool, input string) string {
	labelStyle := FieldLabelStyle
	if focused {
		labelStyle = FocusedLabelStyle
	}

	label := labelStyle.Render(c.label)
	if c.required {
		label += RequiredMarkStyle.Render(" *")
	}

	lines := []string{label, input}
	if c.err != "" {
		lines = append(lines, FieldErrorStyle.Render("✗ "+c.err))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// TextField is a single-line input.
type TextField struct {
	fieldChrome
	input textinput.Model
}

// NewTextField creates a single-line field.
func NewTextField(label, placeholder string, required bool, width int) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 0
	ti.Width = max(width-4, 10)

	return &TextField{
		fieldChrome: fieldChrome{label: label, required: required},
		input:       ti,
	}
}

func (f *TextField) Focus() tea.Cmd      { return f.input.Focus() }
func (f *TextField) Blur()               { f.input.Blur() }
func (f *TextField) Focused() bool       { return f.input.Focused() }
func (f *TextField) Value() string       { return f.input.Value() }
func (f *TextField) SetValue(v string)   { f.input.SetValue(v) }
func (f *TextField) Error() string       { return f.err }
func (f *TextField) SetError(msg string) { f.err = msg }
func (f *TextField) Multiline() bool     { return false }

func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextField) View() string {
	return f.render(f.input.Focused(), f.input.View())
}

// TextAreaField is a multi-line input. Enter inserts a newline.
type TextAreaField struct {
	fieldChrome
	area textarea.Model
}

// NewTextAreaField creates a multi-line field showing height rows.
func NewTextAreaField(label, placeholder string, width, height int) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(max(width-2, 10))
	ta.SetHeight(height)

	return &TextAreaField{
		fieldChrome: fieldChrome{label: label},
		area:        ta,
	}
}

func (f *TextAreaField) Focus() tea.Cmd      { return f.area.Focus() }
func (f *TextAreaField) Blur()               { f.area.Blur() }
func (f *TextAreaField) Focused() bool       { return f.area.Focused() }
func (f *TextAreaField) Value() string       { return f.area.Value() }
func (f *TextAreaField) SetValue(v string)   { f.area.SetValue(v) }
func (f *TextAreaField) Error() string       { return f.err }
func (f *TextAreaField) SetError(msg string) { f.err = msg }
func (f *TextAreaField) Multiline() bool     { return true }

func (f *TextAreaField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

func (f *TextAreaField) View() string {
	return f.render(f.area.Focused(), strings.TrimRight(f.area.View(), "\n"))
}
