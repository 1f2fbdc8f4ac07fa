package services

import (
	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

// PaginateProducts slices the sorted set into one page and computes
// pagination metadata over the full set. Limit is clamped to at most
// MaxPageSize regardless of caller input, and a page below 1 is treated
// as 1 so the offset never goes negative. An out-of-range offset yields
// an empty page, not an error.
func PaginateProducts(sorted []models.Product, page, limit int) ([]models.Product, models.SearchPagination) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = models.DefaultPageSize
	}
	if limit > models.MaxPageSize {
		limit = models.MaxPageSize
	}

	total := len(sorted)
	totalPages := (total + limit - 1) / limit
	offset := (page - 1) * limit

	items := make([]models.Product, 0, limit)
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		items = append(items, sorted[offset:end]...)
	}

	meta := models.SearchPagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     offset+limit < total,
		HasPreviousPage: page > 1,
	}
	return items, meta
}
