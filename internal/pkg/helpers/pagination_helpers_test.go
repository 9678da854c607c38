package helpers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"eventboard/internal/pkg/helpers"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page default size", 0, 0, 0, helpers.DefaultPageSize},
		{"first page explicit size", 0, 10, 0, 10},
		{"second page", 1, 5, 5, 5},
		{"third page larger size", 2, 20, 40, 20},
		{"negative page clamps to first", -3, 5, 0, 5},
		{"oversized page size falls back", 1, helpers.MaxPageSize + 1, uint64(helpers.DefaultPageSize), helpers.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := helpers.CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := helpers.NewPaginationInfo(12, 0, 5)
	assert.Equal(t, 0, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 5, info.PageSize)
	assert.Equal(t, int64(12), info.TotalItems)

	// Page beyond the last is clamped to the last existing page
	info = helpers.NewPaginationInfo(12, 9, 5)
	assert.Equal(t, 2, info.CurrentPage)

	// No items means no pages
	info = helpers.NewPaginationInfo(0, 0, 5)
	assert.Equal(t, 0, info.TotalPages)
	assert.Equal(t, 0, info.CurrentPage)
}

func TestParsePageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/events?page=2&size=10&sort=title&order=asc", nil)

	page := helpers.ParsePageQuery(c)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, "title", page.SortBy)
	assert.Equal(t, "asc", page.SortOrder)
}

func TestParsePageQuery_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/events", nil)

	page := helpers.ParsePageQuery(c)
	assert.Equal(t, helpers.DefaultPage, page.Page)
	assert.Equal(t, helpers.DefaultPageSize, page.Size)
	assert.Empty(t, page.SortBy)
	assert.Empty(t, page.SortOrder)
}

func TestParsePaginationParams_InvalidValues(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/events?page=abc&size=-1", nil)

	page, size := helpers.ParsePaginationParams(c)
	assert.Equal(t, helpers.DefaultPage, page)
	assert.Equal(t, helpers.DefaultPageSize, size)
}
