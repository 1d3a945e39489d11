package ports

// PageQuery carries the pagination parameters of a list request.
// Page is 0-based; Size is capped by the service layer.
type PageQuery struct {
	Page int
	Size int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps the query into the allowed range.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = defaultPageSize
	}
	if q.Size > maxPageSize {
		q.Size = maxPageSize
	}
	return q
}

// Offset returns the number of items to skip for this page.
func (q PageQuery) Offset() int {
	return q.Page * q.Size
}

// Page is one slice of a paginated result set.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	TotalPages int
	NumPage    int
	NumItems   int
}

// NewPage assembles a Page from a result slice and the total match count.
func NewPage[T any](items []T, total int64, q PageQuery) Page[T] {
	totalPages := 0
	if q.Size > 0 {
		totalPages = int((total + int64(q.Size) - 1) / int64(q.Size))
	}
	return Page[T]{
		Items:      items,
		TotalCount: total,
		TotalPages: totalPages,
		NumPage:    q.Page,
		NumItems:   len(items),
	}
}
