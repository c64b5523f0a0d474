package catalog

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/muurk/catalog/internal/product"
)

// ErrProductNotFound is returned when an edit targets an id that is not in
// the collection.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the canonical, ordered product collection.
// Products are only ever inserted or updated; there is no removal.
type Catalog struct {
	products []product.Product
	lastID   atomic.Int64
}

// New seeds a catalog. The seed slice is copied. Fresh ids continue above
// the largest seed id, so they never collide with seeded records.
func New(seed []product.Product) *Catalog {
	c := &Catalog{
		products: make([]product.Product, len(seed)),
	}
	copy(c.products, seed)

	var maxID int64
	for _, p := range seed {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	c.lastID.Store(maxID)

	return c
}

// All returns a copy of the collection in display order (newest first).
func (c *Catalog) All() []product.Product {
	out := make([]product.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get looks up a product by id.
func (c *Catalog) Get(id int64) (product.Product, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.products[i], true
	}
	return product.Product{}, false
}

// Save inserts or updates a product.
//
// With editingID nil the payload becomes a new product with a fresh id,
// prepended to the collection. Otherwise the payload is merged onto the
// existing record at its current position.
func (c *Catalog) Save(payload product.Payload, editingID *int64) (product.Product, error) {
	if editingID != nil {
		i := c.indexOf(*editingID)
		if i < 0 {
			return product.Product{}, ErrProductNotFound
		}
		c.products[i] = c.products[i].Merge(payload)
		return c.products[i], nil
	}

	created := product.Product{ID: c.nextID()}.Merge(payload)
	c.products = append([]product.Product{created}, c.products...)
	return created, nil
}

func (c *Catalog) nextID() int64 {
	return c.lastID.Add(1)
}

func (c *Catalog) indexOf(id int64) int {
	for i, p := range c.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Filter keeps the products whose name contains query, ignoring case.
// The query is trimmed first; a blank query keeps everything. Order is kept.
func Filter(products []product.Product, query string) []product.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
