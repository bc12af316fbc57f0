/*
Package handler provides HTTP handler functions for customer authentication.

Login and logout are the two identity transitions of the storefront. Both orchestrate the
credential cookie and the cart session in a fixed order: on login the cookie is set and
the guest cart is merged into the customer cart; on logout the cookie is cleared first
and only then is the cart reset to a fresh guest cart, so no racing mutation can attach a
stale credential to a guest operation.
*/
package handler

import (
	"net/http"

	"storefront/internal/app/cart"
	"storefront/internal/app/commerce"
	"storefront/internal/pkg/auth/credential"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logx"
	"storefront/internal/pkg/req"
	"storefront/internal/pkg/resp"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin exchanges credentials with the upstream, sets the encrypted credential
// cookie, and merges any guest cart into the customer cart.
//
// The merge is best-effort: login succeeds even when it fails, and the failure is
// surfaced in the response for visibility and retry.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := credential.FromContext(r.Context()); ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		token, encrypted, customErr := deps.Auth.Login(r.Context(), input.Email, input.Password)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		setAuthCookie(w, deps.Config, encrypted)

		// The freshly issued token is not in the request context yet, so the merge
		// session reads it from a static store.
		session := cart.NewSession(
			deps.Commerce,
			staticCredentialStore{token: token},
			newGuestCartStore(w, r, deps.Config),
			deps.CartLocks,
		)

		data := map[string]any{}

		if mergeErr := session.MergeOnLogin(r.Context()); mergeErr != nil {
			logx.Warn("login succeeded but cart merge failed", "code", mergeErr.Code)
			data["cartMergeError"] = mergeErr.Message
		} else {
			data["cart"] = renderCart(session.Snapshot())
		}

		resp.RespondSuccess(w, r, data)
	}
}

type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}

// HandleSignup creates a new customer account. The visitor signs in separately; no
// cookie is issued here.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := credential.FromContext(r.Context()); ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input SignupInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		customErr := deps.Auth.Signup(r.Context(), commerce.CustomerInput{
			Email:     input.Email,
			Firstname: input.Firstname,
			Lastname:  input.Lastname,
			Password:  input.Password,
		})
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

// HandleLogout clears the credential cookie, then resets the cart to a fresh guest cart.
// A reset failure does not undo the logout; it is reported for visibility like a failed
// merge.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Credential first, cart second. The reset below must never see the old token.
		clearAuthCookie(w, deps.Config)

		session := cart.NewSession(
			deps.Commerce,
			noCredentialStore{},
			newGuestCartStore(w, r, deps.Config),
			deps.CartLocks,
		)

		data := map[string]any{}

		if resetErr := session.Reset(r.Context()); resetErr != nil {
			logx.Warn("logout succeeded but cart reset failed", "code", resetErr.Code)
			data["cartResetError"] = resetErr.Message
		} else {
			data["cart"] = renderCart(session.Snapshot())
		}

		resp.RespondSuccess(w, r, data)
	}
}

// HandleGetCustomer returns the authenticated customer's profile.
func HandleGetCustomer(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := credential.FromContext(r.Context())
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		customer, customErr := deps.Auth.Customer(r.Context(), token)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"customer": customer,
		})
	}
}
