/*
Package handler provides HTTP handler functions for catalog browsing.

Catalog endpoints are thin passthroughs to the upstream commerce API; no state is kept.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/app/commerce"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logx"
	"storefront/internal/pkg/resp"
)

// HandleListCategories returns the storefront navigation categories.
func HandleListCategories(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := deps.Commerce.Categories(r.Context())
		if err != nil {
			logx.Error(err, "failed to fetch categories")
			resp.RespondError(w, r, errs.NewError(errs.ErrCatalogRemote, err.Error()))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"categories": categories,
		})
	}
}

// HandleProductsByCategory returns the products assigned to a category uid.
func HandleProductsByCategory(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryUID := chi.URLParam(r, "uid")
		if categoryUID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		products, err := deps.Commerce.ProductsByCategory(r.Context(), categoryUID)
		if err != nil {
			logx.Error(err, "failed to fetch products by category", "category_uid", categoryUID)
			resp.RespondError(w, r, errs.NewError(errs.ErrCatalogRemote, err.Error()))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"products": products,
		})
	}
}

// HandleSearchProducts returns products matching the filter parameters. At least one of
// sku, url_key, or category_uid is required.
func HandleSearchProducts(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := commerce.ProductFilter{
			SKU:         r.URL.Query().Get("sku"),
			URLKey:      r.URL.Query().Get("url_key"),
			CategoryUID: r.URL.Query().Get("category_uid"),
		}

		if filter.SKU == "" && filter.URLKey == "" && filter.CategoryUID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		products, err := deps.Commerce.FilteredProducts(r.Context(), filter)
		if err != nil {
			logx.Error(err, "failed to fetch filtered products")
			resp.RespondError(w, r, errs.NewError(errs.ErrCatalogRemote, err.Error()))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"products": products,
		})
	}
}
