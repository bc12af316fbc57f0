package commerce

import (
	"context"
)

// productsData is the {products: {items, total_count}} payload of catalog queries.
type productsData struct {
	Products struct {
		TotalCount int       `json:"total_count"`
		Items      []Product `json:"items"`
	} `json:"products"`
}

// ProductsByCategory fetches the products assigned to a category uid.
func (c *Client) ProductsByCategory(ctx context.Context, categoryUID string) ([]Product, error) {
	var data productsData

	vars := map[string]any{"cat": categoryUID}
	if err := c.execute(ctx, productsByCategoryQuery, vars, "", &data); err != nil {
		return nil, err
	}

	return data.Products.Items, nil
}

// FilteredProducts fetches products matching the given attribute filter.
func (c *Client) FilteredProducts(ctx context.Context, filter ProductFilter) ([]Product, error) {
	upstreamFilter := map[string]any{}
	if filter.SKU != "" {
		upstreamFilter["sku"] = map[string]any{"eq": filter.SKU}
	}
	if filter.URLKey != "" {
		upstreamFilter["url_key"] = map[string]any{"eq": filter.URLKey}
	}
	if filter.CategoryUID != "" {
		upstreamFilter["category_uid"] = map[string]any{"eq": filter.CategoryUID}
	}

	var data productsData

	vars := map[string]any{"filter": upstreamFilter}
	if err := c.execute(ctx, filteredProductsQuery, vars, "", &data); err != nil {
		return nil, err
	}

	return data.Products.Items, nil
}

// Categories fetches the category tree and flattens it to the children of the root
// categories, which is the level the storefront navigation renders.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var data struct {
		Categories struct {
			Items []struct {
				Children []Category `json:"children"`
			} `json:"items"`
		} `json:"categories"`
	}

	if err := c.execute(ctx, allCategoriesQuery, nil, "", &data); err != nil {
		return nil, err
	}

	categories := []Category{}
	for _, item := range data.Categories.Items {
		categories = append(categories, item.Children...)
	}

	return categories, nil
}
