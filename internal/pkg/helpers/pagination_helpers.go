package helpers

import (
	"math"

	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1
)

// CalculateOffsetLimit maps a 1-based page and size onto SQL offset/limit,
// clamping out-of-range values to the defaults.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	limit = size
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * limit), limit
}

// NewPaginationInfo builds the envelope pagination block for a page of results.
// Size is clamped the same way CalculateOffsetLimit clamps it, so the envelope
// always describes the page the query actually returned.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	switch {
	case totalItems > 0:
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	case page == 1:
		// An empty collection still renders as one empty page.
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}
