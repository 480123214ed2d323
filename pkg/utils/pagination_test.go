package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) (PaginationParams, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/courses"+query, nil)
	return GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetPaginationParams(t *testing.T) {
	_, ok := paramsFor("")
	assert.False(t, ok)

	p, ok := paramsFor("?page=3&limit=10")
	assert.True(t, ok)
	assert.Equal(t, PaginationParams{Page: 3, PageSize: 10, Offset: 20}, p)

	p, _ = paramsFor("?page=-1&limit=500")
	assert.Equal(t, PaginationParams{Page: 1, PageSize: 20, Offset: 0}, p)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4}, Paginate(items, PaginationParams{Page: 2, PageSize: 2, Offset: 2}))
	assert.Equal(t, []int{5}, Paginate(items, PaginationParams{Page: 3, PageSize: 2, Offset: 4}))
	assert.Empty(t, Paginate(items, PaginationParams{Page: 4, PageSize: 2, Offset: 6}))
}
