package cart

import (
	"context"

	"storefront/internal/app/commerce"
)

// CredentialStore exposes the customer credential to the cart subsystem.
//
// The credential is owned by the auth subsystem; the cart session only ever reads it.
// Its presence or absence is the sole signal for guest-versus-customer branching.
type CredentialStore interface {
	// Credential returns the plaintext credential and whether one is present.
	Credential() (string, bool)
}

// GuestCartStore persists the guest cart id between visits so repeated sessions do not
// fragment into multiple abandoned guest carts. A customer's cart id is never written
// here: it is always re-derived from the credential.
type GuestCartStore interface {
	// Get returns the persisted guest cart id and whether one is present.
	Get() (string, bool)

	// Set persists the guest cart id, replacing any previous value.
	Set(id string) error

	// Clear removes the persisted guest cart id. Clearing an absent id is a no-op.
	Clear() error
}

// API is the set of upstream cart operations the session depends on.
// *commerce.Client satisfies it; tests substitute a fake.
type API interface {
	CreateGuestCart(ctx context.Context) (string, error)
	GetCart(ctx context.Context, cartID string) (*commerce.Cart, error)
	GetCustomerCart(ctx context.Context, token string) (*commerce.Cart, error)
	AddSimpleItem(ctx context.Context, cartID, sku string, qty int, token string) (*commerce.Cart, error)
	AddConfigurableItem(ctx context.Context, cartID, parentSku, childSku string, qty int, token string) (*commerce.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemUID, token string) (*commerce.Cart, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemUID string, qty int, token string) (*commerce.Cart, error)
	MergeGuestCart(ctx context.Context, guestCartID, token string) (*commerce.Cart, error)
}
