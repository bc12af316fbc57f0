/*
Package auth implements the customer authentication session: credential exchange with the
upstream commerce platform, encryption of the credential for cookie transport, and
derivation of the visitor identity from a present credential.

The package owns the credential. The cart subsystem only ever reads it, and the identity
transitions it triggers (merge on login, reset on logout) are orchestrated by the HTTP
layer in a fixed order: cookie set before merge, cookie cleared before reset.
*/
package auth

import (
	"context"

	"storefront/internal/app/commerce"
	"storefront/internal/pkg/auth/credential"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logx"
)

// API is the set of upstream account operations the service depends on.
// *commerce.Client satisfies it.
type API interface {
	GenerateCustomerToken(ctx context.Context, email, password string) (string, error)
	CreateCustomer(ctx context.Context, input commerce.CustomerInput) (*commerce.Customer, error)
	GetCustomer(ctx context.Context, token string) (*commerce.Customer, error)
}

// Service is the auth session manager.
type Service struct {
	api          API
	cookieSecret string
}

// NewService creates a Service using the given upstream API and cookie encryption secret.
func NewService(api API, cookieSecret string) *Service {
	return &Service{
		api:          api,
		cookieSecret: cookieSecret,
	}
}

// Login exchanges the email/password pair for a customer credential and returns both the
// plaintext token (needed for the immediate cart merge) and its encrypted cookie value.
func (s *Service) Login(ctx context.Context, email, password string) (token, encrypted string, customErr *errs.CustomError) {
	token, err := s.api.GenerateCustomerToken(ctx, email, password)
	if err != nil {
		logx.Warn("login: credential exchange rejected", "email", email, "error", err)
		return "", "", errs.NewError(errs.ErrInvalidCredentials)
	}

	encrypted, err = credential.EncryptToken(token, s.cookieSecret)
	if err != nil {
		logx.Error(err, "login: credential encryption failed")
		return "", "", errs.NewError(errs.ErrUnknown, err)
	}

	return token, encrypted, nil
}

// Signup registers a new customer account upstream. The visitor signs in separately
// afterwards; no credential is issued here.
func (s *Service) Signup(ctx context.Context, input commerce.CustomerInput) *errs.CustomError {
	if _, err := s.api.CreateCustomer(ctx, input); err != nil {
		return errs.NewError(errs.ErrAuthRemote, err.Error())
	}

	return nil
}

// Customer fetches the account profile owning the credential.
func (s *Service) Customer(ctx context.Context, token string) (*commerce.Customer, *errs.CustomError) {
	customer, err := s.api.GetCustomer(ctx, token)
	if err != nil {
		return nil, errs.NewError(errs.ErrAuthRemote, err.Error())
	}

	return customer, nil
}
