package listquery

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	// MaxPageSize caps pageSize; the historical uncapped variant is gone.
	MaxPageSize = 100
)

// Page holds 1-based pagination parameters.
type Page struct {
	Page     int
	PageSize int
}

// Normalize coerces non-positive values to defaults and applies the cap.
// Callers that fail to parse a numeric query value pass zero and get the
// default rather than an error.
func (p Page) Normalize() Page {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Result carries the slice for one page plus totals for the whole filtered
// set.
type Result[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices the filtered set. An out-of-range page yields an empty
// items slice, never an error. Concatenating pages 1..TotalPages
// reproduces the input exactly.
func Paginate[T any](items []T, p Page) Result[T] {
	p = p.Normalize()
	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.PageSize - 1) / p.PageSize
	}

	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, items[start:end])

	return Result[T]{
		Items:      page,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}
