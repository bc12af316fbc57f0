package commerce

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// IsCartNotFound reports whether the upstream rejected the cart id itself, as opposed to
// the operation performed on it. The upstream has no structured error codes for this; it
// consistently phrases the rejection the same way.
func IsCartNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Could not find a cart")
}

// CreateGuestCart provisions a new empty guest cart upstream and returns its opaque id.
func (c *Client) CreateGuestCart(ctx context.Context) (string, error) {
	var data struct {
		CreateEmptyCart string `json:"createEmptyCart"`
	}

	if err := c.execute(ctx, createGuestCartMutation, nil, "", &data); err != nil {
		return "", err
	}

	if data.CreateEmptyCart == "" {
		return "", errors.New("commerce: empty guest cart id returned")
	}

	return data.CreateEmptyCart, nil
}

// GetCart fetches a cart by its id. Used for guest carts; the upstream rejects ids it no
// longer recognizes (expired or already merged), which callers treat as a stale id.
func (c *Client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	var data struct {
		Cart *Cart `json:"cart"`
	}

	err := c.execute(ctx, getCartQuery, map[string]any{"cartId": cartID}, "", &data)
	if err != nil {
		return nil, err
	}

	if data.Cart == nil {
		return nil, fmt.Errorf("commerce: cart %q not found", cartID)
	}

	return data.Cart, nil
}

// GetCustomerCart fetches the cart scoped to the given credential. The upstream derives
// which cart belongs to the customer; no cart id is supplied or needed.
func (c *Client) GetCustomerCart(ctx context.Context, token string) (*Cart, error) {
	var data struct {
		CustomerCart *Cart `json:"customerCart"`
	}

	if err := c.execute(ctx, getCustomerCartQuery, nil, token, &data); err != nil {
		return nil, err
	}

	if data.CustomerCart == nil {
		return nil, errors.New("commerce: no customer cart returned")
	}

	return data.CustomerCart, nil
}

// cartPayload is the {cart: ...} wrapper shared by all cart mutations.
type cartPayload struct {
	Cart *Cart `json:"cart"`
}

// unwrapCart validates a mutation payload and returns the contained cart.
func unwrapCart(p *cartPayload, op string) (*Cart, error) {
	if p == nil || p.Cart == nil {
		return nil, fmt.Errorf("commerce: %s returned no cart", op)
	}
	return p.Cart, nil
}

// AddSimpleItem adds a simple product line to the cart and returns the post-mutation cart.
// Pass a non-empty token for credential-scoped carts; the upstream validates ownership.
func (c *Client) AddSimpleItem(ctx context.Context, cartID, sku string, qty int, token string) (*Cart, error) {
	var data struct {
		AddSimpleProductsToCart *cartPayload `json:"addSimpleProductsToCart"`
	}

	vars := map[string]any{"cartId": cartID, "sku": sku, "qty": qty}
	if err := c.execute(ctx, addSimpleToCartMutation, vars, token, &data); err != nil {
		return nil, err
	}

	return unwrapCart(data.AddSimpleProductsToCart, "addSimpleProductsToCart")
}

// AddConfigurableItem adds a configurable product variant to the cart. parentSku names
// the configurable product, childSku the selected variant. The upstream validates stock
// and variant consistency against both, so this path is not interchangeable with
// AddSimpleItem.
func (c *Client) AddConfigurableItem(ctx context.Context, cartID, parentSku, childSku string, qty int, token string) (*Cart, error) {
	var data struct {
		AddConfigurableProductsToCart *cartPayload `json:"addConfigurableProductsToCart"`
	}

	vars := map[string]any{"cartId": cartID, "parentSku": parentSku, "childSku": childSku, "qty": qty}
	if err := c.execute(ctx, addConfigurableToCartMutation, vars, token, &data); err != nil {
		return nil, err
	}

	return unwrapCart(data.AddConfigurableProductsToCart, "addConfigurableProductsToCart")
}

// RemoveItem removes a cart line by its uid and returns the post-mutation cart.
func (c *Client) RemoveItem(ctx context.Context, cartID, itemUID, token string) (*Cart, error) {
	var data struct {
		RemoveItemFromCart *cartPayload `json:"removeItemFromCart"`
	}

	vars := map[string]any{"cartId": cartID, "itemUid": itemUID}
	if err := c.execute(ctx, removeCartItemMutation, vars, token, &data); err != nil {
		return nil, err
	}

	return unwrapCart(data.RemoveItemFromCart, "removeItemFromCart")
}

// UpdateItemQuantity sets the quantity of a cart line and returns the post-mutation cart.
// The quantity must already be validated as positive; removal goes through RemoveItem.
func (c *Client) UpdateItemQuantity(ctx context.Context, cartID, itemUID string, qty int, token string) (*Cart, error) {
	var data struct {
		UpdateCartItems *cartPayload `json:"updateCartItems"`
	}

	vars := map[string]any{"cartId": cartID, "itemUid": itemUID, "qty": qty}
	if err := c.execute(ctx, updateCartItemMutation, vars, token, &data); err != nil {
		return nil, err
	}

	return unwrapCart(data.UpdateCartItems, "updateCartItems")
}

// MergeGuestCart merges the guest cart into the credential's customer cart and returns
// the merged cart. The upstream requires an explicit destination cart id, so the
// customer's own cart id is resolved from the credential first; callers never track it.
func (c *Client) MergeGuestCart(ctx context.Context, guestCartID, token string) (*Cart, error) {
	customerCart, err := c.GetCustomerCart(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("commerce: resolve merge destination: %w", err)
	}

	var data struct {
		MergeCarts *Cart `json:"mergeCarts"`
	}

	vars := map[string]any{"guestCartId": guestCartID, "customerCartId": customerCart.ID}
	if err := c.execute(ctx, mergeCartsMutation, vars, token, &data); err != nil {
		return nil, err
	}

	if data.MergeCarts == nil {
		return nil, errors.New("commerce: mergeCarts returned no cart")
	}

	return data.MergeCarts, nil
}
