// Package pagination slices ordered collections into fixed-size, 1-based pages
// and computes the state of prev/next/first/last controls.
package pagination

// Paginate returns the items on a 1-based page. Out-of-range pages, and
// non-positive page or page sizes, yield an empty slice rather than a panic.
// The returned slice aliases items.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return items[:0:0]
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return items[:0:0]
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

// TotalPages is max(1, ceil(total/pageSize)). An empty collection still has
// one (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp keeps page within [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Controls describes which navigation actions are available for a page.
type Controls struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	HasFirst   bool // available whenever HasPrev is
	HasLast    bool // available whenever HasNext is
}

// NewControls computes the control state for page given total items.
func NewControls(page, total, pageSize int) Controls {
	pages := TotalPages(total, pageSize)
	return Controls{
		Page:       page,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
		HasFirst:   page > 1,
		HasLast:    page < pages,
	}
}
