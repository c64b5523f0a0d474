package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/catalog/internal/product"
)

// SubmitMsg carries a validated payload out of the form.
type SubmitMsg struct {
	Payload product.Payload
}

// CancelMsg reports that the form was dismissed without saving.
type CancelMsg struct{}

// FormMode tells whether the form creates a product or edits one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// Title is the heading shown on the modal for this mode.
func (m FormMode) Title() string {
	if m == FormEdit {
		return "Edit Product"
	}
	return "Add Product"
}

// Order of fields on screen; indexes into Form.fields.
var formFields = []product.Field{
	product.FieldName,
	product.FieldPrice,
	product.FieldCategory,
	product.FieldStock,
	product.FieldDescription,
}

// Form edits a product draft. It emits SubmitMsg when the draft validates
// and CancelMsg on esc; on validation failure it stays open and shows the
// messages beside each field.
type Form struct {
	Mode   FormMode
	fields []field
	focus  int
	errs   product.FieldErrors
	keys   formKeyMap
}

// NewCreateForm returns an empty form.
func NewCreateForm(width int) Form {
	return newForm(FormCreate, product.Draft{}, width)
}

// NewEditForm returns a form pre-filled from p.
func NewEditForm(p product.Product, width int) Form {
	return newForm(FormEdit, product.DraftFrom(p), width)
}

func newForm(mode FormMode, draft product.Draft, width int) Form {
	fields := []field{
		NewTextField("Name", "Wireless Mouse", true, width),
		NewTextField("Price", "29.99", true, width),
		NewTextField("Category", "Electronics", true, width),
		NewTextField("Stock", "0", false, width),
		NewTextAreaField("Description", "Optional details", width, 3),
	}

	fields[0].SetValue(draft.Name)
	fields[1].SetValue(draft.Price)
	fields[2].SetValue(draft.Category)
	fields[3].SetValue(draft.Stock)
	fields[4].SetValue(draft.Description)

	f := Form{
		Mode:   mode,
		fields: fields,
		keys:   newFormKeyMap(),
	}
	f.fields[0].Focus()
	return f
}

// Init starts the cursor blinking in the first field.
func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns the current text of every field.
func (f Form) Draft() product.Draft {
	return product.Draft{
		Name:        f.fields[0].Value(),
		Price:       f.fields[1].Value(),
		Category:    f.fields[2].Value(),
		Stock:       f.fields[3].Value(),
		Description: f.fields[4].Value(),
	}
}

// Errors returns the messages from the last failed submit.
func (f Form) Errors() product.FieldErrors {
	return f.errs
}

// Focused returns the field that has the cursor.
func (f Form) Focused() product.Field {
	return formFields[f.focus]
}

// KeyMap exposes the form bindings for the help footer.
func (f Form) KeyMap() help.KeyMap {
	return f.keys
}

// Update handles input for the focused field and the form-level keys.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.fields[f.focus].Update(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Cancel):
		return f, emit(CancelMsg{})

	case key.Matches(keyMsg, f.keys.Submit):
		return f.submit()

	case key.Matches(keyMsg, f.keys.Next):
		return f, f.focusField(f.focus + 1)

	case key.Matches(keyMsg, f.keys.Prev):
		return f, f.focusField(f.focus - 1)

	case keyMsg.Type == tea.KeyEnter && !f.fields[f.focus].Multiline():
		return f, f.focusField(f.focus + 1)
	}

	return f, f.fields[f.focus].Update(msg)
}

func (f Form) submit() (Form, tea.Cmd) {
	payload, err := product.Submit(f.Draft())
	if err != nil {
		var fieldErrs product.FieldErrors
		errors.As(err, &fieldErrs)
		f.setErrors(fieldErrs)
		// Jump to the first invalid field; nothing is emitted.
		for i, name := range formFields {
			if fieldErrs.Get(name) != "" {
				f.focusField(i)
				break
			}
		}
		return f, nil
	}

	f.setErrors(nil)
	return f, emit(SubmitMsg{Payload: payload})
}

func (f *Form) setErrors(errs product.FieldErrors) {
	f.errs = errs
	for i, name := range formFields {
		f.fields[i].SetError(errs.Get(name))
	}
}

// focusField moves the cursor to field i, wrapping at both ends.
func (f *Form) focusField(i int) tea.Cmd {
	n := len(f.fields)
	i = ((i % n) + n) % n

	f.fields[f.focus].Blur()
	f.focus = i
	return f.fields[i].Focus()
}

// View renders the fields stacked vertically.
func (f Form) View() string {
	views := make([]string, 0, len(f.fields)+1)
	for _, fl := range f.fields {
		views = append(views, fl.View(), "")
	}
	views = append(views, SubtitleStyle.Render("* required   ctrl+s save   esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
