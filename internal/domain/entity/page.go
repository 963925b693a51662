package entity

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// Page is one slice of a listing plus the total row count.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}
