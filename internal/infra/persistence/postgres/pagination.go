package postgres

import (
	"estate/internal/domain/entity"

	"gorm.io/gorm"
)

// paginate applies offset and limit; a non-positive limit returns every row.
func paginate(p entity.Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Limit <= 0 {
			return db
		}

		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// mapSlice converts persistence models to entities.
func mapSlice[M any, E any](models []M, convert func(*M) E) []E {
	out := make([]E, 0, len(models))
	for i := range models {
		out = append(out, convert(&models[i]))
	}

	return out
}
