package product

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifies a form field that can carry a validation error.
type Field string

const (
	FieldName        Field = "name"
	FieldPrice       Field = "price"
	FieldCategory    Field = "category"
	FieldStock       Field = "stock"
	FieldDescription Field = "description"
)

// Validation messages shown beside the offending field.
const (
	MsgNameRequired     = "Name is required"
	MsgPriceRequired    = "Price is required"
	MsgPriceNotNumber   = "Price must be a number"
	MsgCategoryRequired = "Category is required"
	MsgStockNotNumber   = "Stock must be a number"
)

// fieldOrder is the display order of the form.
var fieldOrder = []Field{FieldName, FieldPrice, FieldCategory, FieldStock, FieldDescription}

// FieldErrors holds at most one message per field.
// An empty set means the draft is valid.
type FieldErrors map[Field]string

// Error implements the error interface with a stable, form-ordered message.
func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, f := range fieldOrder {
		if msg, ok := fe[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	// Unknown fields last, sorted, so the message never depends on map order.
	var extra []string
	for f, msg := range fe {
		if !isKnownField(f) {
			extra = append(extra, msg)
		}
	}
	sort.Strings(extra)
	msgs = append(msgs, extra...)
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Get returns the message for a field, or "" when the field is valid.
func (fe FieldErrors) Get(f Field) string {
	return fe[f]
}

func isKnownField(f Field) bool {
	for _, k := range fieldOrder {
		if k == f {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err is (or wraps) a FieldErrors value.
func IsValidationError(err error) bool {
	var fe FieldErrors
	return errors.As(err, &fe)
}

// Validate checks every field of the draft and collects all failures.
// It never stops at the first error.
func Validate(d Draft) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(d.Price) == "" {
		errs[FieldPrice] = MsgPriceRequired
	} else if _, err := parsePrice(d.Price); err != nil {
		errs[FieldPrice] = MsgPriceNotNumber
	}

	if strings.TrimSpace(d.Category) == "" {
		errs[FieldCategory] = MsgCategoryRequired
	}

	if strings.TrimSpace(d.Stock) != "" {
		if _, err := parseStock(d.Stock); err != nil {
			errs[FieldStock] = MsgStockNotNumber
		}
	}

	return errs
}

// Submit validates the draft and, when it is valid, coerces it into a Payload.
// Stock left empty becomes 0. Text fields pass through as entered.
func Submit(d Draft) (Payload, error) {
	if errs := Validate(d); len(errs) > 0 {
		return Payload{}, errs
	}

	price, _ := parsePrice(d.Price)

	var stock int64
	if strings.TrimSpace(d.Stock) != "" {
		stock, _ = parseStock(d.Stock)
	}

	return Payload{
		Name:        d.Name,
		Price:       price,
		Category:    d.Category,
		Stock:       stock,
		Description: d.Description,
	}, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

var (
	maxStock = decimal.NewFromInt(math.MaxInt64)
	minStock = decimal.NewFromInt(math.MinInt64)
)

// parseStock accepts any numeric text whose value is integral ("3", "3.0", "1e2").
func parseStock(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errors.New("stock must be a whole number")
	}
	if d.Cmp(maxStock) > 0 || d.Cmp(minStock) < 0 {
		return 0, errors.New("stock out of range")
	}
	return d.IntPart(), nil
}
