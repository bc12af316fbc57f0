/*
Package handler provides the HTTP handlers and routing setup for the storefront server.

This file defines the main Router, applying necessary middleware like logging, CORS,
credential extraction, and IP-based rate limiting before delegating requests to the cart,
auth, catalog, and customer handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"storefront/internal/pkg/auth/credential"
	"storefront/internal/pkg/limiter"
	"storefront/internal/pkg/logx"
	"storefront/internal/pkg/resp"
)

const (
	// LoginRate limits credential-exchange attempts per IP to deter brute-forcing.
	LoginRate  = 0.2
	LoginBurst = 5

	// SignupRate limits account creation per IP.
	SignupRate  = 0.05
	SignupBurst = 2
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters for the auth endpoints, configures CORS, and
// applies global and per-route middleware, including the credential extractor that makes
// the decrypted customer token available to every /api handler.
func Router(deps *AppDeps) http.Handler {
	loginLimiter := limiter.NewIPRateLimiter(rate.Limit(LoginRate), LoginBurst)
	signupLimiter := limiter.NewIPRateLimiter(rate.Limit(SignupRate), SignupBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Storefront Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(credential.ExtractorMiddleware(deps.Config.AuthCookieName(), deps.Config.AuthCookieSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Method(http.MethodPost, "/login", loginLimiter.Middleware(HandleLogin(deps)))
			auth.Method(http.MethodPost, "/signup", signupLimiter.Middleware(HandleSignup(deps)))
			auth.Post("/logout", HandleLogout(deps))
		})

		api.Get("/customer", HandleGetCustomer(deps))

		api.Route("/cart", func(cartRoutes chi.Router) {
			cartRoutes.Get("/", HandleGetCart(deps))
			cartRoutes.Post("/items", HandleAddCartItem(deps))
			cartRoutes.Patch("/items/{uid}", HandleUpdateCartItem(deps))
			cartRoutes.Delete("/items/{uid}", HandleRemoveCartItem(deps))
		})

		api.Route("/catalog", func(catalog chi.Router) {
			catalog.Get("/categories", HandleListCategories(deps))
			catalog.Get("/categories/{uid}/products", HandleProductsByCategory(deps))
			catalog.Get("/products", HandleSearchProducts(deps))
		})
	})

	return r
}
