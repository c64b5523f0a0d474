// Package product defines the catalog item model and the rules for turning
// raw form input into a product.
//
// # Draft, Validate, Submit
//
// A form edits a Draft, where every field is plain text. Validate checks the
// whole draft at once and returns a FieldErrors set with one message per bad
// field. Submit runs Validate and, on success, coerces the draft into a
// Payload:
//
//	payload, err := product.Submit(draft)
//	if product.IsValidationError(err) {
//	    // show err.(product.FieldErrors) beside the inputs
//	}
//
// Price parses as a decimal; stock must be a whole number and defaults to 0
// when left empty. Description is never validated.
//
// # Dataset
//
// DefaultSeed returns the embedded starter dataset (seed.yaml). LoadSeedFile
// reads a replacement dataset from a YAML or JSON file with the same layout.
//
// # Formatting
//
// PriceFormatter renders prices with a currency glyph and locale grouping
// using golang.org/x/text, e.g. "$1,299.99".
package product
