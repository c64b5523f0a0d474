// Package catalog owns the canonical product collection and the session
// state built around it.
//
// Catalog is the single source of truth for products: it is seeded once at
// startup and then only changed by Save, which either merges an edit in place
// or prepends a newly created product with a fresh id. Ids come from a
// monotonic counter that starts above the largest seeded id.
//
// State carries everything the interactive view needs (search text, the
// debounced query, view mode, page, modal and edit target). Filtered,
// Visible and Controls are derived on every call, so they can never drift
// from the underlying collection.
package catalog
