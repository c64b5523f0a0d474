package catalog

import (
	"fmt"

	"github.com/muurk/catalog/internal/pagination"
	"github.com/muurk/catalog/internal/product"
)

// DefaultPageSize is the number of products on one page.
const DefaultPageSize = 6

// ViewMode selects how a page of products is presented.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewCard ViewMode = "card"
)

// Toggle switches between the two view modes.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewCard {
		return ViewList
	}
	return ViewCard
}

// ParseViewMode accepts "list" or "card".
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewList, ViewCard:
		return ViewMode(s), nil
	default:
		return "", fmt.Errorf("unknown view %q (expected %q or %q)", s, ViewList, ViewCard)
	}
}

// State is the session state owned by the top-level model. Derived data
// (filtered products, the visible page, pager controls) is recomputed from
// it on every read and never stored.
type State struct {
	Catalog        *Catalog
	Query          string // raw search text
	DebouncedQuery string // search text the filter actually uses
	View           ViewMode
	Page           int // 1-based
	PageSize       int
	ModalOpen      bool
	Editing        *product.Product // nil while creating
}

// NewState starts a session on page 1 with an empty query.
func NewState(c *Catalog, pageSize int, view ViewMode) State {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if view != ViewCard {
		view = ViewList
	}
	return State{
		Catalog:  c,
		View:     view,
		Page:     1,
		PageSize: pageSize,
	}
}

// Filtered returns the products matching the debounced query.
func (s State) Filtered() []product.Product {
	return Filter(s.Catalog.All(), s.DebouncedQuery)
}

// Visible returns the current page of the filtered products.
func (s State) Visible() []product.Product {
	return pagination.Paginate(s.Filtered(), s.Page, s.PageSize)
}

// Controls returns the pager state for the current page.
func (s State) Controls() pagination.Controls {
	return pagination.NewControls(s.Page, len(s.Filtered()), s.PageSize)
}

// SetDebouncedQuery adopts a new debounced query. Any change sends the
// session back to page 1 so a narrower search never lands on an empty page.
func (s *State) SetDebouncedQuery(q string) {
	if q == s.DebouncedQuery {
		return
	}
	s.DebouncedQuery = q
	s.Page = 1
}

// GoToPage moves to page, clamped to the available pages.
func (s *State) GoToPage(page int) {
	s.Page = pagination.Clamp(page, s.Controls().TotalPages)
}

func (s *State) NextPage()  { s.GoToPage(s.Page + 1) }
func (s *State) PrevPage()  { s.GoToPage(s.Page - 1) }
func (s *State) FirstPage() { s.GoToPage(1) }
func (s *State) LastPage()  { s.GoToPage(s.Controls().TotalPages) }

// ToggleView flips between list and card presentation.
func (s *State) ToggleView() {
	s.View = s.View.Toggle()
}

// OpenCreate opens the modal with an empty form.
func (s *State) OpenCreate() {
	s.Editing = nil
	s.ModalOpen = true
}

// OpenEdit opens the modal pre-filled from p.
func (s *State) OpenEdit(p product.Product) {
	s.Editing = &p
	s.ModalOpen = true
}

// CloseModal closes the modal and forgets the edit target.
func (s *State) CloseModal() {
	s.ModalOpen = false
	s.Editing = nil
}

// Save stores a validated payload: an update of the product being edited,
// or a new product when creating. The modal closes on success.
func (s *State) Save(payload product.Payload) (product.Product, error) {
	var editingID *int64
	if s.Editing != nil {
		id := s.Editing.ID
		editingID = &id
	}

	saved, err := s.Catalog.Save(payload, editingID)
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to save product: %w", err)
	}

	s.CloseModal()
	return saved, nil
}
