/*
Package cart implements the cart session manager: the state machine that tracks exactly
one active cart per storefront session and keeps it consistent across identity changes.

Three responsibilities are composed here:

  - Identity resolution: on bootstrap, decide whether the visitor is a guest or an
    authenticated customer and which cart id already exists for them.
  - Mutation gateway: apply add/remove/update operations against the active cart id,
    attaching the customer credential when one is present.
  - Identity transition: merge the guest cart into the customer cart on login, and reset
    to a fresh guest cart on logout.

The invariants are asymmetric by design: a guest cart is id-based and its id is persisted
client-side, while a customer cart is credential-based and always re-derived upstream.
After every successful remote call the returned cart replaces the local snapshot
wholesale; line items are never merged client-side.
*/
package cart

import (
	"context"

	"storefront/internal/app/commerce"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logx"
)

// Session is the cart session manager for one storefront session. It owns the active
// cart id exclusively: callers go through its operations and never touch the id directly.
//
// A Session is constructed per request with request-scoped stores; the shared
// MutationLocks registry provides cross-request serialization per cart id.
type Session struct {
	api      API
	creds    CredentialStore
	guestIDs GuestCartStore
	locks    *MutationLocks

	activeID string
	snapshot *commerce.Cart
	ready    bool
}

// NewSession creates a Session over the given upstream API and stores.
func NewSession(api API, creds CredentialStore, guestIDs GuestCartStore, locks *MutationLocks) *Session {
	return &Session{
		api:      api,
		creds:    creds,
		guestIDs: guestIDs,
		locks:    locks,
	}
}

// Ready reports whether an active cart id has been resolved.
func (s *Session) Ready() bool {
	return s.ready
}

// ActiveCartID returns the currently active cart id, or "" before bootstrap.
func (s *Session) ActiveCartID() string {
	return s.activeID
}

// Snapshot returns the last authoritative cart state, or nil when none has been fetched.
func (s *Session) Snapshot() *commerce.Cart {
	return s.snapshot
}

// adopt makes the given cart the active snapshot and cart id.
func (s *Session) adopt(c *commerce.Cart) {
	s.activeID = c.ID
	s.snapshot = c
	s.ready = true
}

// emptyCart builds the local representation of a freshly provisioned guest cart.
// A new cart has no lines, so no fetch is needed before the first mutation.
func emptyCart(id string) *commerce.Cart {
	return &commerce.Cart{ID: id}
}

// Bootstrap resolves exactly one active cart id for the session.
//
// The checks run in a fixed order to stay deterministic:
//  1. A persisted guest cart id, when present, is fetched by id. A rejected id is stale:
//     a new guest cart is provisioned and its id replaces the stored one.
//  2. With no stored id, a present credential resolves the customer cart; nothing is
//     written to the guest store on this path.
//  3. Otherwise a new guest cart is provisioned and persisted.
//
// Bootstrap is idempotent: once the session is ready it returns immediately, so calling
// it twice never provisions a second guest cart. On failure the session stays not-ready
// and mutations refuse to run.
func (s *Session) Bootstrap(ctx context.Context) *errs.CustomError {
	if s.ready {
		return nil
	}

	if storedID, ok := s.guestIDs.Get(); ok {
		snapshot, err := s.api.GetCart(ctx, storedID)
		if err != nil {
			// Stored id is stale (expired or already merged). Replace it.
			logx.Warn("Persisted guest cart id rejected upstream, provisioning a new cart",
				"cart_id", storedID,
				"error", err,
			)
			return s.provisionGuestCart(ctx)
		}

		s.adopt(snapshot)
		return nil
	}

	if token, ok := s.creds.Credential(); ok {
		snapshot, err := s.api.GetCustomerCart(ctx, token)
		if err != nil {
			return errs.NewError(errs.ErrCartRemote, err.Error())
		}

		// Customer cart ids are credential-scoped; the guest store stays untouched.
		s.adopt(snapshot)
		return nil
	}

	return s.provisionGuestCart(ctx)
}

// provisionGuestCart creates a new guest cart upstream, persists its id, and adopts the
// resulting empty snapshot.
func (s *Session) provisionGuestCart(ctx context.Context) *errs.CustomError {
	newID, err := s.api.CreateGuestCart(ctx)
	if err != nil {
		return errs.NewError(errs.ErrCartRemote, err.Error())
	}

	if err := s.guestIDs.Set(newID); err != nil {
		logx.Error(err, "failed to persist guest cart id", "cart_id", newID)
		return errs.NewError(errs.ErrUnknown, err)
	}

	s.adopt(emptyCart(newID))
	return nil
}

// resolveForMutation establishes the active cart id for a mutation without provisioning
// anything. A persisted guest id is adopted as-is: if it has gone stale the mutation
// fails visibly and recovery happens on the next bootstrap, never silently mid-mutation.
// With no guest id, a present credential resolves the customer cart. Otherwise the
// session is not ready and the mutation must refuse.
func (s *Session) resolveForMutation(ctx context.Context) *errs.CustomError {
	if s.ready {
		return nil
	}

	if storedID, ok := s.guestIDs.Get(); ok {
		s.activeID = storedID
		s.ready = true
		return nil
	}

	if token, ok := s.creds.Credential(); ok {
		snapshot, err := s.api.GetCustomerCart(ctx, token)
		if err != nil {
			return errs.NewError(errs.ErrCartRemote, err.Error())
		}
		s.adopt(snapshot)
		return nil
	}

	return errs.NewError(errs.ErrCartNotReady)
}

// AddItem adds a product line to the active cart and adopts the returned cart state.
// The payload variant selects the upstream mutation: simple and configurable adds are
// validated differently upstream and are not interchangeable.
func (s *Session) AddItem(ctx context.Context, payload AddPayload) *errs.CustomError {
	if payload == nil {
		return errs.NewError(errs.ErrInvalidParams)
	}

	if payload.Quantity() < 1 {
		return errs.NewError(errs.ErrCartItemQtyInvalid)
	}

	if customErr := s.resolveForMutation(ctx); customErr != nil {
		return customErr
	}

	token, _ := s.creds.Credential()

	unlock := s.locks.Lock(s.activeID)
	defer unlock()

	var (
		snapshot *commerce.Cart
		err      error
	)

	switch p := payload.(type) {
	case SimpleItem:
		snapshot, err = s.api.AddSimpleItem(ctx, s.activeID, p.SKU, p.Qty, token)
	case ConfigurableItem:
		snapshot, err = s.api.AddConfigurableItem(ctx, s.activeID, p.ParentSKU, p.SKU, p.Qty, token)
	default:
		return errs.NewError(errs.ErrInvalidParams)
	}

	if err != nil {
		// Previous snapshot stays untouched; retrying is the caller's decision.
		return mutationError(err)
	}

	s.adopt(snapshot)
	return nil
}

// mutationError maps an upstream mutation failure to its error code. A rejected cart id
// is reported as stale rather than recovered here: the next bootstrap replaces it, and
// recovering mid-mutation would silently redirect the user's change into an empty cart.
func mutationError(err error) *errs.CustomError {
	if commerce.IsCartNotFound(err) {
		return errs.NewError(errs.ErrCartStale)
	}
	return errs.NewError(errs.ErrCartRemote, err.Error())
}

// RemoveItem removes a cart line by its uid and adopts the returned cart state.
func (s *Session) RemoveItem(ctx context.Context, itemUID string) *errs.CustomError {
	if itemUID == "" {
		return errs.NewError(errs.ErrInvalidParams)
	}

	if customErr := s.resolveForMutation(ctx); customErr != nil {
		return customErr
	}

	token, _ := s.creds.Credential()

	unlock := s.locks.Lock(s.activeID)
	defer unlock()

	snapshot, err := s.api.RemoveItem(ctx, s.activeID, itemUID, token)
	if err != nil {
		return mutationError(err)
	}

	s.adopt(snapshot)
	return nil
}

// UpdateQuantity sets the quantity of a cart line and adopts the returned cart state.
// A quantity below 1 is rejected at this boundary: dropping a line goes through
// RemoveItem, never through a zero-quantity update.
func (s *Session) UpdateQuantity(ctx context.Context, itemUID string, qty int) *errs.CustomError {
	if itemUID == "" {
		return errs.NewError(errs.ErrInvalidParams)
	}

	if qty < 1 {
		return errs.NewError(errs.ErrCartItemQtyInvalid)
	}

	if customErr := s.resolveForMutation(ctx); customErr != nil {
		return customErr
	}

	token, _ := s.creds.Credential()

	unlock := s.locks.Lock(s.activeID)
	defer unlock()

	snapshot, err := s.api.UpdateItemQuantity(ctx, s.activeID, itemUID, qty, token)
	if err != nil {
		return mutationError(err)
	}

	s.adopt(snapshot)
	return nil
}

// MergeOnLogin transfers the guest cart into the customer cart immediately after a
// successful credential exchange.
//
// When a guest cart id is persisted it is merged upstream; the id is deleted on success
// (the upstream absorbs the cart, the id must not be reused) and the merged cart becomes
// the active snapshot. With no guest cart there is nothing to merge and the customer's
// existing cart is simply adopted. Failures are reported but callers must not roll back
// the login itself: cart state is secondary to authentication state.
func (s *Session) MergeOnLogin(ctx context.Context) *errs.CustomError {
	token, ok := s.creds.Credential()
	if !ok {
		return errs.NewError(errs.ErrUnauthorized)
	}

	guestCartID, hasGuestCart := s.guestIDs.Get()

	if !hasGuestCart {
		snapshot, err := s.api.GetCustomerCart(ctx, token)
		if err != nil {
			logx.Error(err, "failed to fetch customer cart after login")
			return errs.NewError(errs.ErrCartMergeFailed)
		}

		s.adopt(snapshot)
		return nil
	}

	unlock := s.locks.Lock(guestCartID)
	defer unlock()

	merged, err := s.api.MergeGuestCart(ctx, guestCartID, token)
	if err != nil {
		logx.Error(err, "guest cart merge failed", "guest_cart_id", guestCartID)
		return errs.NewError(errs.ErrCartMergeFailed)
	}

	if err := s.guestIDs.Clear(); err != nil {
		logx.Error(err, "failed to clear merged guest cart id", "guest_cart_id", guestCartID)
	}

	s.adopt(merged)
	return nil
}

// Reset discards all cart context and provisions a fresh, empty guest cart.
//
// It is invoked on logout, strictly after the credential has been cleared; a mutation
// racing between the two steps could otherwise attach a no-longer-valid credential to a
// guest operation. Reset is idempotent: the guest id is cleared defensively even though
// a customer session should not have one.
func (s *Session) Reset(ctx context.Context) *errs.CustomError {
	if err := s.guestIDs.Clear(); err != nil {
		logx.Error(err, "failed to clear guest cart id during reset")
	}

	s.activeID = ""
	s.snapshot = nil
	s.ready = false

	return s.provisionGuestCart(ctx)
}
