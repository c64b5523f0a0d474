package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/catalog/internal/catalog"
	"github.com/muurk/catalog/internal/debounce"
	"github.com/muurk/catalog/internal/logging"
	"github.com/muurk/catalog/internal/product"
)

// Options configures a new AppModel.
type Options struct {
	PageSize int
	Debounce time.Duration
	View     catalog.ViewMode
	Prices   product.PriceFormatter
}

// AppModel is the top-level model. It owns the catalog state and wires the
// search box, views, pager, and form modal together.
type AppModel struct {
	State catalog.State

	Search textinput.Model
	Query  debounce.Value[string]

	Form  Form
	Modal Modal
	Pager Pager

	// Index of the highlighted product within the visible page
	Selected int
	Status   string

	Width  int
	Height int

	Help       help.Model
	keys       browseKeyMap
	searchKeys searchKeyMap
	prices     product.PriceFormatter
}

// NewAppModel creates the application model over c.
func NewAppModel(c *catalog.Catalog, opts Options) AppModel {
	search := textinput.New()
	search.Placeholder = "Search products by name"
	search.Prompt = "/ "
	search.CharLimit = 80
	search.Width = 32

	return AppModel{
		State:      catalog.NewState(c, opts.PageSize, opts.View),
		Search:     search,
		Query:      debounce.New("", opts.Debounce),
		Modal:      NewModal(FormCreate.Title()),
		Pager:      NewPager(),
		Width:      100,
		Height:     32,
		Help:       help.New(),
		keys:       newBrowseKeyMap(),
		searchKeys: newSearchKeyMap(),
		prices:     opts.Prices,
	}
}

// Init sets the terminal title.
func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle("Product Catalog")
}

// Update routes messages to the form, the search box, or the browse keys.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case debounce.FireMsg:
		var changed bool
		m.Query, changed = m.Query.Update(msg)
		if changed {
			m.applyQuery()
		}
		return m, nil

	case SubmitMsg:
		return m.save(msg.Payload)

	case CancelMsg:
		m.State.CloseModal()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch {
		case m.State.ModalOpen:
			var cmd tea.Cmd
			m.Form, cmd = m.Form.Update(msg)
			return m, cmd
		case m.Search.Focused():
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	switch {
	case m.State.ModalOpen:
		m.Form, cmd = m.Form.Update(msg)
	case m.Search.Focused():
		m.Search, cmd = m.Search.Update(msg)
	}
	return m, cmd
}

func (m AppModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.searchKeys.Done) {
		m.Search.Blur()
		if msg.Type == tea.KeyEnter {
			var changed bool
			m.Query, changed = m.Query.Flush()
			if changed {
				m.applyQuery()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if value := m.Search.Value(); value != m.State.Query {
		m.State.Query = value
		var wait tea.Cmd
		m.Query, wait = m.Query.Set(value)
		return m, tea.Batch(cmd, wait)
	}
	return m, cmd
}

func (m AppModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	from := m.State.Page

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Search):
		m.Status = ""
		return m, m.Search.Focus()

	case key.Matches(msg, m.keys.Up):
		m.Selected = max(m.Selected-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.Selected = min(m.Selected+1, max(len(m.State.Visible())-1, 0))

	case key.Matches(msg, m.keys.PrevPage):
		m.State.PrevPage()
	case key.Matches(msg, m.keys.NextPage):
		m.State.NextPage()
	case key.Matches(msg, m.keys.FirstPage):
		m.State.FirstPage()
	case key.Matches(msg, m.keys.LastPage):
		m.State.LastPage()

	case key.Matches(msg, m.keys.ToggleView):
		m.State.ToggleView()

	case key.Matches(msg, m.keys.New):
		return m.openForm(nil)

	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.SelectedProduct(); ok {
			return m.openForm(&p)
		}

	case key.Matches(msg, m.keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}

	if m.State.Page != from {
		m.Selected = 0
		logging.LogPageChange(from, m.State.Page, m.State.Controls().TotalPages)
	}
	return m, nil
}

// openForm opens the modal in create mode (p == nil) or edit mode.
func (m AppModel) openForm(p *product.Product) (tea.Model, tea.Cmd) {
	width := m.Modal.InnerWidth(m.Width)
	if p == nil {
		m.State.OpenCreate()
		m.Form = NewCreateForm(width)
	} else {
		m.State.OpenEdit(*p)
		m.Form = NewEditForm(*p, width)
	}
	m.Modal.Title = m.Form.Mode.Title()
	m.Status = ""
	return m, m.Form.Init()
}

func (m AppModel) save(payload product.Payload) (tea.Model, tea.Cmd) {
	created := m.State.Editing == nil

	saved, err := m.State.Save(payload)
	if err != nil {
		logging.Error("Save failed", zap.Error(err))
		m.Status = err.Error()
		return m, nil
	}

	logging.LogProductSaved(saved.ID, saved.Name, created)
	if created {
		m.Status = fmt.Sprintf("Added %q", saved.Name)
		m.State.FirstPage()
		m.Selected = 0
	} else {
		m.Status = fmt.Sprintf("Updated %q", saved.Name)
	}
	return m, nil
}

// applyQuery pushes the debounced value into the state.
func (m *AppModel) applyQuery() {
	m.State.SetDebouncedQuery(m.Query.Value())
	m.Selected = 0
	logging.LogSearch(m.Query.Value(), len(m.State.Filtered()))
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.Query = m.Query.Stop()
	return m, tea.Quit
}

// SelectedProduct returns the highlighted product on the visible page.
func (m AppModel) SelectedProduct() (product.Product, bool) {
	visible := m.State.Visible()
	if len(visible) == 0 {
		return product.Product{}, false
	}
	return visible[min(max(m.Selected, 0), len(visible)-1)], true
}

// View renders the browse screen, or the form modal over a backdrop.
func (m AppModel) View() string {
	if m.State.ModalOpen {
		return m.Modal.Render(true, m.Form.View(), m.Width, m.Height)
	}
	return RenderApplicationContainer(m.buildContent(), m.helpView(), m.Width, m.Height)
}

func (m AppModel) buildContent() string {
	width := ContentWidth(m.Width)

	searchStyle := SearchStyle
	if m.Search.Focused() {
		searchStyle = FocusedSearchStyle
	}

	filtered := len(m.State.Filtered())
	count := HelpStyle.Render(fmt.Sprintf("%d of %d products", filtered, m.State.Catalog.Len()))
	if m.Query.Scheduled() {
		count = HelpStyle.Render("searching…")
	}

	toolbar := lipgloss.JoinHorizontal(lipgloss.Center,
		searchStyle.Render(m.Search.View()),
		"  ",
		RenderViewToggle(m.State.View),
		"  ",
		count,
	)

	selected := min(m.Selected, max(len(m.State.Visible())-1, 0))
	var body string
	if m.State.View == catalog.ViewCard {
		body = RenderCards(m.State.Visible(), selected, m.prices, width)
	} else {
		body = RenderList(m.State.Visible(), selected, m.prices, width)
	}

	sections := []string{toolbar}
	if m.Status != "" {
		sections = append(sections, StatusStyle.Render("✓ "+m.Status))
	}
	sections = append(sections, body, m.Pager.View(m.State.Controls()))

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(sections, "\n"))
}

func (m AppModel) helpView() string {
	switch {
	case m.State.ModalOpen:
		return m.Help.View(m.Form.KeyMap())
	case m.Search.Focused():
		return m.Help.View(m.searchKeys)
	default:
		return m.Help.View(m.keys)
	}
}
