/*
Package handler provides the HTTP handlers and routing setup for the storefront server.

This file contains the cart endpoints. Each request gets its own cart session wired to
cookie-backed stores: the guest cart id cookie and the decrypted credential from the
extractor middleware. The cart id itself never appears in responses; clients act on the
cart exclusively through these endpoints.
*/
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"storefront/internal/app/auth"
	"storefront/internal/app/cart"
	"storefront/internal/app/commerce"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/req"
	"storefront/internal/pkg/resp"
)

// newCartSession builds the request-scoped cart session over cookie-backed stores.
func (deps *AppDeps) newCartSession(w http.ResponseWriter, r *http.Request) *cart.Session {
	return cart.NewSession(
		deps.Commerce,
		contextCredentialStore{ctx: r.Context()},
		newGuestCartStore(w, r, deps.Config),
		deps.CartLocks,
	)
}

// moneyView renders an upstream amount for clients.
type moneyView struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// cartLineView is one cart line as rendered to clients.
type cartLineView struct {
	UID       string    `json:"uid"`
	Quantity  int       `json:"quantity"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	RowTotal  moneyView `json:"rowTotal"`
}

// cartView is the client-facing cart state. The cart id is deliberately absent.
type cartView struct {
	Items      []cartLineView `json:"items"`
	ItemCount  int            `json:"itemCount"`
	GrandTotal moneyView      `json:"grandTotal"`
}

// actorView describes the visitor identity attached to cart reads.
type actorView struct {
	Customer  bool   `json:"customer"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
}

// renderCart maps the authoritative upstream cart to the client view.
func renderCart(c *commerce.Cart) cartView {
	view := cartView{
		Items: []cartLineView{},
	}

	if c == nil {
		return view
	}

	for _, item := range c.ItemsV2.Items {
		line := cartLineView{
			UID:      item.UID,
			Quantity: item.Quantity,
			SKU:      item.Product.SKU,
			Name:     item.Product.Name,
			RowTotal: moneyView(item.Prices.RowTotal),
		}
		if item.Product.Thumbnail != nil {
			line.Thumbnail = item.Product.Thumbnail.URL
		}

		view.Items = append(view.Items, line)
		view.ItemCount += item.Quantity
	}

	view.GrandTotal = moneyView(c.Prices.GrandTotal)

	return view
}

// renderActor maps the derived visitor identity to the client view.
func renderActor(a auth.Actor) actorView {
	view := actorView{Customer: a.IsCustomer}
	if a.Profile != nil {
		view.Firstname = a.Profile.Firstname
		view.Lastname = a.Profile.Lastname
		view.Email = a.Profile.Email
	}
	return view
}

// HandleGetCart bootstraps the cart session and returns the active cart.
// The bootstrap provisions a guest cart when needed and transparently replaces a stale
// persisted id, so a successful response always reflects exactly one active cart.
func HandleGetCart(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := deps.newCartSession(w, r)

		if customErr := session.Bootstrap(r.Context()); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"cart":  renderCart(session.Snapshot()),
			"actor": renderActor(auth.ActorFromContext(r.Context())),
		})
	}
}

type AddCartItemInput struct {
	SKU       string `json:"sku" validate:"required"`
	ParentSKU string `json:"parentSku"`
	Qty       int    `json:"qty" validate:"required,min=1"`
}

// HandleAddCartItem adds a product line to the active cart. A payload carrying a
// parentSku takes the configurable-product path, everything else the simple path.
func HandleAddCartItem(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AddCartItemInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := validateInput(deps, input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		var payload cart.AddPayload
		if input.ParentSKU != "" {
			payload = cart.ConfigurableItem{ParentSKU: input.ParentSKU, SKU: input.SKU, Qty: input.Qty}
		} else {
			payload = cart.SimpleItem{SKU: input.SKU, Qty: input.Qty}
		}

		session := deps.newCartSession(w, r)
		if customErr := session.AddItem(r.Context(), payload); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"cart": renderCart(session.Snapshot()),
		})
	}
}

type UpdateCartItemInput struct {
	Qty int `json:"qty" validate:"required,min=1"`
}

// HandleUpdateCartItem sets the quantity of a cart line. A quantity below 1 is rejected
// here and at the session gateway; removal has its own endpoint.
func HandleUpdateCartItem(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemUID := chi.URLParam(r, "uid")
		if itemUID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		var input UpdateCartItemInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := validateInput(deps, input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		session := deps.newCartSession(w, r)
		if customErr := session.UpdateQuantity(r.Context(), itemUID, input.Qty); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"cart": renderCart(session.Snapshot()),
		})
	}
}

// HandleRemoveCartItem removes a cart line by its uid.
func HandleRemoveCartItem(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemUID := chi.URLParam(r, "uid")
		if itemUID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		session := deps.newCartSession(w, r)
		if customErr := session.RemoveItem(r.Context(), itemUID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"cart": renderCart(session.Snapshot()),
		})
	}
}

// validateInput runs struct validation and maps quantity violations to the cart error
// code so clients can tell a bad quantity apart from a malformed payload.
func validateInput(deps *AppDeps, input any) *errs.CustomError {
	err := deps.Validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Qty" {
				return errs.NewError(errs.ErrCartItemQtyInvalid)
			}
		}
	}

	return errs.NewError(errs.ErrInvalidParams)
}
