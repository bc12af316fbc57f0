package commerce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories_FlattensRootChildren(t *testing.T) {
	client, _ := newUpstream(t, respondOK(`{"data":{"categories":{"items":[
		{"children":[{"uid":"cat-1","name":"Men","url_key":"men"},{"uid":"cat-2","name":"Women","url_key":"women"}]},
		{"children":[{"uid":"cat-3","name":"Sale","url_key":"sale"}]}
	]}}}`))

	categories, err := client.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "cat-1", categories[0].UID)
	assert.Equal(t, "Sale", categories[2].Name)
}

func TestProductsByCategory_SendsCategoryVariable(t *testing.T) {
	client, seen := newUpstream(t, respondOK(`{"data":{"products":{"total_count":1,"items":[
		{"uid":"p-1","name":"Mug","sku":"ABC123","url_key":"mug"}
	]}}}`))

	products, err := client.ProductsByCategory(context.Background(), "cat-1")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "ABC123", products[0].SKU)
	require.Len(t, *seen, 1)
	assert.Equal(t, "cat-1", (*seen)[0].Variables["cat"])
}

func TestFilteredProducts_OmitsZeroValuedFields(t *testing.T) {
	client, seen := newUpstream(t, respondOK(`{"data":{"products":{"total_count":0,"items":[]}}}`))

	_, err := client.FilteredProducts(context.Background(), ProductFilter{URLKey: "mug"})

	require.NoError(t, err)
	require.Len(t, *seen, 1)

	filter, ok := (*seen)[0].Variables["filter"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, filter, "url_key")
	assert.NotContains(t, filter, "sku")
	assert.NotContains(t, filter, "category_uid")
}
