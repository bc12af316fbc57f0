package commerce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the client sent for later assertions.
type recordedRequest struct {
	Query     string
	Variables map[string]any
	Header    http.Header
}

// newUpstream starts a fake GraphQL endpoint that records every request and answers with
// the body produced by respond.
func newUpstream(t *testing.T, respond func(r recordedRequest) (status int, body string)) (*Client, *[]recordedRequest) {
	t.Helper()

	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		rec := recordedRequest{Query: req.Query, Variables: req.Variables, Header: r.Header.Clone()}
		seen = append(seen, rec)

		status, body := respond(rec)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL), &seen
}

func respondOK(body string) func(recordedRequest) (int, string) {
	return func(recordedRequest) (int, string) {
		return http.StatusOK, body
	}
}

func TestCreateGuestCart(t *testing.T) {
	client, seen := newUpstream(t, respondOK(`{"data":{"createEmptyCart":"g-1"}}`))

	id, err := client.CreateGuestCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "g-1", id)
	require.Len(t, *seen, 1)
	assert.Contains(t, (*seen)[0].Query, "createEmptyCart")
	assert.Empty(t, (*seen)[0].Header.Get("Authorization"))
	assert.NotEmpty(t, (*seen)[0].Header.Get("X-Request-Id"))
}

func TestGetCart_DecodesSnapshot(t *testing.T) {
	client, seen := newUpstream(t, respondOK(`{"data":{"cart":{
		"id":"g-55",
		"itemsV2":{"items":[{"uid":"line-1","quantity":2,
			"product":{"sku":"ABC123","name":"Mug"},
			"prices":{"row_total":{"value":19.9,"currency":"EUR"}}}],
			"total_count":1},
		"prices":{"grand_total":{"value":19.9,"currency":"EUR"}}}}}`))

	cart, err := client.GetCart(context.Background(), "g-55")

	require.NoError(t, err)
	assert.Equal(t, "g-55", cart.ID)
	require.Len(t, cart.ItemsV2.Items, 1)
	assert.Equal(t, "ABC123", cart.ItemsV2.Items[0].Product.SKU)
	assert.Equal(t, 2, cart.ItemsV2.Items[0].Quantity)
	assert.InDelta(t, 19.9, cart.Prices.GrandTotal.Value, 0.001)

	require.Len(t, *seen, 1)
	assert.Equal(t, "g-55", (*seen)[0].Variables["cartId"])
}

func TestGetCustomerCart_AttachesBearerCredential(t *testing.T) {
	client, seen := newUpstream(t, respondOK(`{"data":{"customerCart":{"id":"c-9"}}}`))

	cart, err := client.GetCustomerCart(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "c-9", cart.ID)
	require.Len(t, *seen, 1)
	assert.Equal(t, "Bearer tok-1", (*seen)[0].Header.Get("Authorization"))
}

func TestExecute_JoinsGraphQLErrorMessages(t *testing.T) {
	client, _ := newUpstream(t, respondOK(
		`{"errors":[{"message":"The requested qty is not available"},{"message":"Product not found"}]}`))

	_, err := client.GetCart(context.Background(), "g-55")

	require.Error(t, err)
	assert.Equal(t, "The requested qty is not available; Product not found", err.Error())
}

func TestExecute_NonSuccessStatus(t *testing.T) {
	client, _ := newUpstream(t, func(recordedRequest) (int, string) {
		return http.StatusBadGateway, "upstream down"
	})

	_, err := client.GetCart(context.Background(), "g-55")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestExecute_NullDataIsError(t *testing.T) {
	client, _ := newUpstream(t, respondOK(`{"data":null}`))

	_, err := client.CreateGuestCart(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data returned")
}

func TestAddSimpleItem_SendsVariables(t *testing.T) {
	client, seen := newUpstream(t, respondOK(
		`{"data":{"addSimpleProductsToCart":{"cart":{"id":"g-55"}}}}`))

	cart, err := client.AddSimpleItem(context.Background(), "g-55", "ABC123", 2, "")

	require.NoError(t, err)
	assert.Equal(t, "g-55", cart.ID)
	require.Len(t, *seen, 1)
	vars := (*seen)[0].Variables
	assert.Equal(t, "g-55", vars["cartId"])
	assert.Equal(t, "ABC123", vars["sku"])
	assert.Equal(t, float64(2), vars["qty"])
}

func TestUpdateItemQuantity_NoCartInPayload(t *testing.T) {
	client, _ := newUpstream(t, respondOK(`{"data":{"updateCartItems":{"cart":null}}}`))

	_, err := client.UpdateItemQuantity(context.Background(), "g-55", "line-1", 2, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "updateCartItems returned no cart")
}

func TestIsCartNotFound(t *testing.T) {
	client, _ := newUpstream(t, respondOK(
		`{"errors":[{"message":"Could not find a cart with ID \"g-55\""}]}`))

	_, err := client.GetCart(context.Background(), "g-55")

	require.Error(t, err)
	assert.True(t, IsCartNotFound(err))

	assert.False(t, IsCartNotFound(nil))
	assert.False(t, IsCartNotFound(context.Canceled))
}

func TestMergeGuestCart_ResolvesDestinationFirst(t *testing.T) {
	client, seen := newUpstream(t, func(r recordedRequest) (int, string) {
		if _, isMerge := r.Variables["guestCartId"]; isMerge {
			return http.StatusOK, `{"data":{"mergeCarts":{"id":"c-9","itemsV2":{"items":[],"total_count":0}}}}`
		}
		return http.StatusOK, `{"data":{"customerCart":{"id":"c-9"}}}`
	})

	merged, err := client.MergeGuestCart(context.Background(), "g-55", "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "c-9", merged.ID)

	require.Len(t, *seen, 2)
	assert.Contains(t, (*seen)[0].Query, "customerCart")
	assert.Contains(t, (*seen)[1].Query, "mergeCarts")
	assert.Equal(t, "g-55", (*seen)[1].Variables["guestCartId"])
	assert.Equal(t, "c-9", (*seen)[1].Variables["customerCartId"])
	assert.Equal(t, "Bearer tok-1", (*seen)[1].Header.Get("Authorization"))
}
