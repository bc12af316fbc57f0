package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/pkg/errs"
)

func TestSearchProducts_RequiresAtLeastOneFilter(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/products", nil)
	_, body := doRequest(t, router, req)

	assert.Equal(t, errs.ErrInvalidParams, body.Code)
	assert.Empty(t, upstream.queries)
}

func TestListCategories(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/categories", nil)
	rec, body := doRequest(t, router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)
	assert.Equal(t, 1, upstream.queryCount("AllCategories"))
	assert.Contains(t, body.Data, "categories")
}
