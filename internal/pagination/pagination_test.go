package pagination

import (
	"testing"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

// TestPaginateLength checks len == min(size, max(0, n-(page-1)*size)) over a grid
func TestPaginateLength(t *testing.T) {
	for n := 0; n <= 14; n++ {
		items := makeItems(n)
		for size := 1; size <= 7; size++ {
			for page := 1; page <= 6; page++ {
				want := n - (page-1)*size
				if want < 0 {
					want = 0
				}
				if want > size {
					want = size
				}

				got := Paginate(items, page, size)
				if len(got) != want {
					t.Errorf("Paginate(n=%d, page=%d, size=%d) len = %d, want %d", n, page, size, len(got), want)
				}
				if len(got) > 0 && got[0] != (page-1)*size+1 {
					t.Errorf("Paginate(n=%d, page=%d, size=%d) starts at %d", n, page, size, got[0])
				}
			}
		}
	}
}

func TestPaginateEdgeCases(t *testing.T) {
	items := makeItems(10)

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int
	}{
		{"First page", 1, 6, []int{1, 2, 3, 4, 5, 6}},
		{"Partial last page", 2, 6, []int{7, 8, 9, 10}},
		{"Past the end", 3, 6, nil},
		{"Far past the end", 1000, 6, nil},
		{"Zero page", 0, 6, nil},
		{"Negative page", -2, 6, nil},
		{"Zero page size", 1, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.pageSize)
			if len(got) != len(tt.want) {
				t.Fatalf("Paginate() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Paginate()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaginateNilInput(t *testing.T) {
	var items []string
	if got := Paginate(items, 1, 6); len(got) != 0 {
		t.Errorf("Paginate(nil) = %v, want empty", got)
	}
}

func TestPaginateDoesNotLeakCapacity(t *testing.T) {
	items := makeItems(10)
	page := Paginate(items, 1, 3)
	page = append(page, 99)
	if items[3] != 4 {
		t.Errorf("appending to a page overwrote the source: items[3] = %d", items[3])
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 0, 1},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestNewControls(t *testing.T) {
	tests := []struct {
		name               string
		page, total, size  int
		wantPrev, wantNext bool
		wantPages          int
	}{
		{"Single page", 1, 3, 6, false, false, 1},
		{"Empty collection", 1, 0, 6, false, false, 1},
		{"First of three", 1, 14, 6, false, true, 3},
		{"Middle", 2, 14, 6, true, true, 3},
		{"Last", 3, 14, 6, true, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControls(tt.page, tt.total, tt.size)
			if c.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", c.TotalPages, tt.wantPages)
			}
			if c.HasPrev != tt.wantPrev || c.HasFirst != tt.wantPrev {
				t.Errorf("HasPrev/HasFirst = %v/%v, want %v", c.HasPrev, c.HasFirst, tt.wantPrev)
			}
			if c.HasNext != tt.wantNext || c.HasLast != tt.wantNext {
				t.Errorf("HasNext/HasLast = %v/%v, want %v", c.HasNext, c.HasLast, tt.wantNext)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		page, pages, want int
	}{
		{0, 3, 1},
		{1, 3, 1},
		{3, 3, 3},
		{4, 3, 3},
		{2, 0, 1},
	}

	for _, tt := range tests {
		if got := Clamp(tt.page, tt.pages); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.page, tt.pages, got, tt.want)
		}
	}
}
