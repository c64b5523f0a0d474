package product

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Product is one catalog item.
type Product struct {
	ID          int64           `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Category    string          `json:"category" yaml:"category"`
	Stock       int64           `json:"stock" yaml:"stock"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// Payload is the normalized result of a successful form submission.
// It carries every editable field; the ID is owned by the catalog.
type Payload struct {
	Name        string
	Price       decimal.Decimal
	Category    string
	Stock       int64
	Description string
}

// Merge returns a copy of p with the payload fields applied on top.
// The ID is preserved.
func (p Product) Merge(pl Payload) Product {
	p.Name = pl.Name
	p.Price = pl.Price
	p.Category = pl.Category
	p.Stock = pl.Stock
	p.Description = pl.Description
	return p
}

// Draft mirrors the product fields as raw text while a form is open.
type Draft struct {
	Name        string
	Price       string
	Category    string
	Stock       string
	Description string
}

// DraftFrom pre-populates a draft from an existing product (edit mode).
func DraftFrom(p Product) Draft {
	return Draft{
		Name:        p.Name,
		Price:       p.Price.String(),
		Category:    p.Category,
		Stock:       strconv.FormatInt(p.Stock, 10),
		Description: p.Description,
	}
}
