package handler

import (
	"context"
	"net/http"

	"storefront/internal/configs"
	"storefront/internal/pkg/auth/credential"
)

const (
	// guestCartCookieMaxAge keeps the guest cart id for 30 days, long enough to span
	// repeat visits without accumulating abandoned carts forever.
	guestCartCookieMaxAge = 30 * 24 * 60 * 60

	// authCookieMaxAge bounds a customer session to 4 hours.
	authCookieMaxAge = 4 * 60 * 60
)

// guestCartCookieStore adapts the guest cart cookie to the cart.GuestCartStore
// capability. Writes go to the response; an overlay keeps reads consistent within the
// same request, since the request's Cookie header never reflects in-flight Set-Cookie.
type guestCartCookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	name   string
	secure bool

	pending string
	dirty   bool
}

// newGuestCartStore creates a cookie-backed guest cart id store for one request.
func newGuestCartStore(w http.ResponseWriter, r *http.Request, cfg *configs.AppConfig) *guestCartCookieStore {
	return &guestCartCookieStore{
		w:      w,
		r:      r,
		name:   cfg.GuestCartCookieName(),
		secure: cfg.IsProduction(),
	}
}

func (s *guestCartCookieStore) Get() (string, bool) {
	if s.dirty {
		return s.pending, s.pending != ""
	}

	cookie, err := s.r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

func (s *guestCartCookieStore) Set(id string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.name,
		Value:    id,
		Path:     "/",
		MaxAge:   guestCartCookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})

	s.pending = id
	s.dirty = true
	return nil
}

func (s *guestCartCookieStore) Clear() error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})

	s.pending = ""
	s.dirty = true
	return nil
}

// contextCredentialStore exposes the credential decrypted by the extractor middleware as
// a read-only cart.CredentialStore.
type contextCredentialStore struct {
	ctx context.Context
}

func (s contextCredentialStore) Credential() (string, bool) {
	return credential.FromContext(s.ctx)
}

// staticCredentialStore carries a credential that is not yet in the request context,
// i.e. the token issued moments ago during login.
type staticCredentialStore struct {
	token string
}

func (s staticCredentialStore) Credential() (string, bool) {
	return s.token, s.token != ""
}

// noCredentialStore is the guest view used after the auth cookie has been cleared.
type noCredentialStore struct{}

func (noCredentialStore) Credential() (string, bool) {
	return "", false
}

// setAuthCookie writes the encrypted credential cookie.
func setAuthCookie(w http.ResponseWriter, cfg *configs.AppConfig, encrypted string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.AuthCookieName(),
		Value:    encrypted,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}

// clearAuthCookie expires the credential cookie.
func clearAuthCookie(w http.ResponseWriter, cfg *configs.AppConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.AuthCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	})
}
