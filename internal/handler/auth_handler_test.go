package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/configs"
	"storefront/internal/pkg/auth/credential"
	"storefront/internal/pkg/errs"
)

func authCookieFor(t *testing.T, cfg *configs.AppConfig, token string) *http.Cookie {
	t.Helper()

	sealed, err := credential.EncryptToken(token, cfg.AuthCookieSecret)
	require.NoError(t, err)

	return &http.Cookie{Name: cfg.AuthCookieName(), Value: sealed}
}

func TestLogin_SetsCookieAndMergesGuestCart(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart", Value: "g-55"})
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)
	assert.Equal(t, 1, upstream.queryCount("generateCustomerToken"))
	assert.Equal(t, 1, upstream.queryCount("mergeCarts"))

	authCookie := responseCookie(rec, "auth")
	require.NotNil(t, authCookie)
	assert.NotEmpty(t, authCookie.Value)
	assert.True(t, authCookie.HttpOnly)
	assert.Positive(t, authCookie.MaxAge)
	// The raw credential never appears in the cookie.
	assert.NotContains(t, authCookie.Value, "tok-1")

	// The merged guest cart id is gone.
	cartCookie := responseCookie(rec, "cart")
	require.NotNil(t, cartCookie)
	assert.Empty(t, cartCookie.Value)
	assert.Negative(t, cartCookie.MaxAge)

	assert.Contains(t, body.Data, "cart")
}

func TestLogin_MergeFailureDoesNotFailLogin(t *testing.T) {
	router, upstream, _ := newTestRouter(t)
	upstream.failMerge = true

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "cart", Value: "g-55"})
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)
	assert.Contains(t, body.Data, "cartMergeError")

	// Login still issued the credential cookie.
	authCookie := responseCookie(rec, "auth")
	require.NotNil(t, authCookie)
	assert.NotEmpty(t, authCookie.Value)

	// The guest cart id survives for a later merge attempt.
	assert.Nil(t, responseCookie(rec, "cart"))
}

func TestLogin_WithoutGuestCartAdoptsCustomerCart(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)
	assert.Zero(t, upstream.queryCount("mergeCarts"))
	assert.Equal(t, 1, upstream.queryCount("customerCart"))
	assert.Contains(t, body.Data, "cart")
}

func TestLogin_AlreadyLoggedIn(t *testing.T) {
	router, upstream, cfg := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"jane@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(authCookieFor(t, cfg, "tok-1"))
	_, body := doRequest(t, router, req)

	assert.Equal(t, errs.ErrAlreadyLoggedIn, body.Code)
	assert.Empty(t, upstream.queries)
}

func TestLogin_InvalidPayload(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"not-an-email","password":""}`))
	req.Header.Set("Content-Type", "application/json")
	_, body := doRequest(t, router, req)

	assert.Equal(t, errs.ErrInvalidParams, body.Code)
	assert.Empty(t, upstream.queries)
}

func TestLogout_ClearsCredentialAndResetsCart(t *testing.T) {
	router, upstream, cfg := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(authCookieFor(t, cfg, "tok-1"))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)

	authCookie := responseCookie(rec, "auth")
	require.NotNil(t, authCookie)
	assert.Empty(t, authCookie.Value)
	assert.Negative(t, authCookie.MaxAge)

	// A fresh guest cart replaces the customer context.
	assert.Equal(t, 1, upstream.queryCount("createEmptyCart"))
	cartCookie := responseCookie(rec, "cart")
	require.NotNil(t, cartCookie)
	assert.Equal(t, "g-1", cartCookie.Value)
	assert.Positive(t, cartCookie.MaxAge)

	cartData, ok := body.Data["cart"].(map[string]any)
	require.True(t, ok)
	assert.Empty(t, cartData["items"])
}

func TestSignup_CreatesAccountWithoutCookie(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"jane@example.com","firstname":"Jane","lastname":"Doe","password":"hunter22x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)
	assert.Equal(t, 1, upstream.queryCount("createCustomer"))
	assert.Nil(t, responseCookie(rec, "auth"))
}

func TestGetCustomer_RequiresCredential(t *testing.T) {
	router, upstream, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/customer", nil)
	rec, body := doRequest(t, router, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, errs.ErrUnauthorized, body.Code)
	assert.Empty(t, upstream.queries)
}

func TestGetCustomer_ReturnsProfile(t *testing.T) {
	router, _, cfg := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/customer", nil)
	req.AddCookie(authCookieFor(t, cfg, "tok-1"))
	rec, body := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, body.Code)

	customer, ok := body.Data["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", customer["email"])
}
