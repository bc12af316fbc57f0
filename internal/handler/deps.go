package handler

import (
	"github.com/go-playground/validator/v10"

	"storefront/internal/app/auth"
	"storefront/internal/app/cart"
	"storefront/internal/app/commerce"
	"storefront/internal/configs"
)

type AppDeps struct {
	Config    *configs.AppConfig
	Commerce  *commerce.Client
	Auth      *auth.Service
	CartLocks *cart.MutationLocks
	Validate  *validator.Validate
}

// NewAppDeps wires the application dependencies for the HTTP layer.
func NewAppDeps(cfg *configs.AppConfig) *AppDeps {
	client := commerce.NewClient(cfg.CommerceEndpoint)

	return &AppDeps{
		Config:    cfg,
		Commerce:  client,
		Auth:      auth.NewService(client, cfg.AuthCookieSecret),
		CartLocks: cart.NewMutationLocks(),
		Validate:  validator.New(),
	}
}
