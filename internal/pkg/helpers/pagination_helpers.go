package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventboard/internal/app/models/dto"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
	DefaultPage     = 0 // Page indexes are 0-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries
// based on a 0-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 || size > MaxPageSize {
		limit = DefaultPageSize
	} else {
		limit = size
	}

	if page < 0 {
		page = DefaultPage
	}

	offset = uint64(page * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page is the 0-based page index.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	// Clamp the reported page to the last existing page.
	currentPage := page
	if totalPages > 0 && currentPage > totalPages-1 {
		currentPage = totalPages - 1
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		page = DefaultPage
	}

	sizeStr := c.DefaultQuery("size", "5")
	size, err = strconv.Atoi(sizeStr)
	if err != nil || size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}

// ParsePageQuery extracts pagination and sort parameters into a PageQuery.
// Unknown sort keys are left for the repository allowlist to resolve.
func ParsePageQuery(c *gin.Context) dto.PageQuery {
	page, size := ParsePaginationParams(c)
	return dto.PageQuery{
		Page:      page,
		Size:      size,
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}
}
