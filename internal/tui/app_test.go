package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/muurk/catalog/internal/catalog"
)

func TestAppCreateProduct(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("n"))
	if !m.State.ModalOpen || m.State.Editing != nil {
		t.Fatalf("n should open the create form, state = %+v", m.State)
	}
	if m.Modal.Title != "Add Product" {
		t.Errorf("modal title = %q", m.Modal.Title)
	}

	m, _ = typeIntoApp(t, m, "Widget")
	m, _ = send(t, m, keyOf(tea.KeyTab))
	m, _ = typeIntoApp(t, m, "9.99")
	m, _ = send(t, m, keyOf(tea.KeyTab))
	m, _ = typeIntoApp(t, m, "Tools")

	m, cmd := send(t, m, keyOf(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("ctrl+s on a valid form should emit SubmitMsg")
	}
	m, _ = send(t, m, cmd())

	if m.State.ModalOpen {
		t.Error("modal still open after save")
	}
	if m.State.Catalog.Len() != 15 {
		t.Fatalf("Len = %d, want 15", m.State.Catalog.Len())
	}

	first := m.State.Catalog.All()[0]
	if first.Name != "Widget" || !first.Price.Equal(decimal.RequireFromString("9.99")) || first.Stock != 0 {
		t.Errorf("first product = %+v", first)
	}
	for _, p := range m.State.Catalog.All()[1:] {
		if p.ID == first.ID {
			t.Errorf("id %d reused by %q", p.ID, p.Name)
		}
	}
	if sel, _ := m.SelectedProduct(); sel.ID != first.ID {
		t.Errorf("new product should be selected, got %q", sel.Name)
	}
}

func TestAppEditProductInPlace(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, keyOf(tea.KeyDown), runes("e"))
	if m.State.Editing == nil || m.State.Editing.ID != 2 {
		t.Fatalf("editing = %+v, want product 2", m.State.Editing)
	}
	if m.Form.Draft().Name != "Mechanical Keyboard" {
		t.Fatalf("form not pre-filled: %+v", m.Form.Draft())
	}

	m, _ = typeIntoApp(t, m, " Pro")
	m, cmd := send(t, m, keyOf(tea.KeyCtrlS))
	if cmd == nil {
		t.Fatal("expected SubmitMsg")
	}
	m, _ = send(t, m, cmd())

	all := m.State.Catalog.All()
	if len(all) != 14 {
		t.Errorf("Len = %d, edit must not insert", len(all))
	}
	if all[1].ID != 2 || all[1].Name != "Mechanical Keyboard Pro" {
		t.Errorf("product 2 = %+v, want renamed in place", all[1])
	}
	if m.State.ModalOpen || m.State.Editing != nil {
		t.Error("modal state not cleared")
	}
}

func TestAppInvalidSubmitKeepsModalOpen(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("n"))
	m, cmd := send(t, m, keyOf(tea.KeyCtrlS))
	if cmd != nil {
		t.Errorf("invalid submit emitted %T", cmd())
	}
	if !m.State.ModalOpen {
		t.Error("modal closed on invalid submit")
	}
	if m.State.Catalog.Len() != 14 {
		t.Errorf("Len = %d, collection must be unchanged", m.State.Catalog.Len())
	}

	view := m.View()
	for _, want := range []string{"Add Product", "Name is required", "Category is required"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppCancelDiscardsDraft(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("n"))
	m, _ = typeIntoApp(t, m, "Junk")
	m, cmd := send(t, m, keyOf(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("esc should emit CancelMsg")
	}
	m, _ = send(t, m, cmd())

	if m.State.ModalOpen {
		t.Error("modal still open after cancel")
	}
	if m.State.Catalog.Len() != 14 {
		t.Errorf("Len = %d after cancel", m.State.Catalog.Len())
	}

	// Reopening starts from an empty draft
	m, _ = send(t, m, runes("n"))
	if m.Form.Draft().Name != "" {
		t.Errorf("draft survived cancel: %+v", m.Form.Draft())
	}
}

func TestAppDebouncedSearchResetsPage(t *testing.T) {
	m := newTestApp(t, 10*time.Millisecond)

	m, _ = send(t, m, keyOf(tea.KeyRight))
	if m.State.Page != 2 {
		t.Fatalf("Page = %d, want 2", m.State.Page)
	}

	m, _ = send(t, m, runes("/"))
	if !m.Search.Focused() {
		t.Fatal("/ should focus the search box")
	}

	m, cmd := typeIntoApp(t, m, "de")
	if m.State.Query != "de" || m.State.DebouncedQuery != "" {
		t.Fatalf("query = %q, debounced = %q before the delay", m.State.Query, m.State.DebouncedQuery)
	}
	if m.State.Page != 2 {
		t.Errorf("page changed before the debounced query did")
	}

	m, _ = send(t, m, waitForFire(t, cmd))

	if m.State.DebouncedQuery != "de" {
		t.Errorf("DebouncedQuery = %q, want de", m.State.DebouncedQuery)
	}
	if m.State.Page != 1 {
		t.Errorf("Page = %d, want reset to 1", m.State.Page)
	}
	if got := len(m.State.Filtered()); got != 2 {
		t.Errorf("Filtered() = %d products, want Standing Desk and Desk Lamp", got)
	}
}

func TestAppSearchEnterAppliesImmediately(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("/"))
	m, _ = typeIntoApp(t, m, "MUG")
	m, _ = send(t, m, keyOf(tea.KeyEnter))

	if m.Search.Focused() {
		t.Error("enter should leave the search box")
	}
	if m.State.DebouncedQuery != "MUG" {
		t.Errorf("DebouncedQuery = %q, want MUG", m.State.DebouncedQuery)
	}
	visible := m.State.Visible()
	if len(visible) != 1 || visible[0].Name != "Coffee Mug" {
		t.Errorf("Visible() = %+v, want Coffee Mug", visible)
	}
}

func TestAppSearchKeysDoNotTriggerCommands(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("/"))
	m, _ = typeIntoApp(t, m, "vnq")

	if m.State.View != catalog.ViewList || m.State.ModalOpen {
		t.Error("letters typed into search were treated as commands")
	}
	if m.Search.Value() != "vnq" {
		t.Errorf("search = %q", m.Search.Value())
	}
}

func TestAppPagination(t *testing.T) {
	m := newTestApp(t, time.Hour)

	steps := []struct {
		key  tea.KeyType
		want int
	}{
		{tea.KeyLeft, 1},
		{tea.KeyRight, 2},
		{tea.KeyEnd, 3},
		{tea.KeyRight, 3},
		{tea.KeyHome, 1},
	}

	for _, step := range steps {
		m, _ = send(t, m, keyOf(step.key))
		if m.State.Page != step.want {
			t.Errorf("after %v Page = %d, want %d", step.key, m.State.Page, step.want)
		}
	}

	m, _ = send(t, m, keyOf(tea.KeyEnd))
	if got := len(m.State.Visible()); got != 2 {
		t.Errorf("last page has %d products, want 2", got)
	}
}

func TestAppSelectionStaysOnPage(t *testing.T) {
	m := newTestApp(t, time.Hour)

	for i := 0; i < 10; i++ {
		m, _ = send(t, m, keyOf(tea.KeyDown))
	}
	if m.Selected != 5 {
		t.Errorf("Selected = %d, want clamped to 5", m.Selected)
	}

	m, _ = send(t, m, keyOf(tea.KeyRight))
	if m.Selected != 0 {
		t.Errorf("Selected = %d after page change, want 0", m.Selected)
	}
	if p, ok := m.SelectedProduct(); !ok || p.Name != "Notebook Set" {
		t.Errorf("SelectedProduct() = %+v", p)
	}
}

func TestAppToggleView(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("v"))
	if m.State.View != catalog.ViewCard {
		t.Fatalf("View = %q, want card", m.State.View)
	}
	if !strings.Contains(m.View(), "enter to edit") {
		t.Error("card view should mark the selected card")
	}

	m, _ = send(t, m, runes("v"))
	if m.State.View != catalog.ViewList {
		t.Errorf("View = %q, want list", m.State.View)
	}
}

func TestAppQuitStopsDebounce(t *testing.T) {
	m := newTestApp(t, time.Hour)

	m, _ = send(t, m, runes("/"), runes("x"), keyOf(tea.KeyEsc))
	if !m.Query.Scheduled() {
		t.Fatal("expected a pending search")
	}

	m, cmd := send(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
	if m.Query.Scheduled() {
		t.Error("pending search survived teardown")
	}
}

func TestAppView(t *testing.T) {
	m := newTestApp(t, time.Hour)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.Width != 120 || m.Height != 40 {
		t.Fatalf("size = %dx%d", m.Width, m.Height)
	}

	view := m.View()
	for _, want := range []string{"PRODUCT CATALOG", "Wireless Mouse", "$29.99", "page 1 of 3", "14 of 14 products"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
