package impl

import (
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
)

// normalizePagination applies the default page and limit and caps the limit.
func normalizePagination(p entity.Pagination) entity.Pagination {
	if p.Page < 1 {
		p.Page = constants.DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = constants.DefaultLimit
	}
	if p.Limit > constants.MaxLimit {
		p.Limit = constants.MaxLimit
	}

	return p
}
