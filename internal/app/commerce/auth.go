package commerce

import (
	"context"
	"errors"
)

// GenerateCustomerToken exchanges an email/password pair for a customer credential.
// The returned token is opaque to the storefront; it is only ever forwarded back to the
// upstream as a bearer credential.
func (c *Client) GenerateCustomerToken(ctx context.Context, email, password string) (string, error) {
	var data struct {
		GenerateCustomerToken *struct {
			Token string `json:"token"`
		} `json:"generateCustomerToken"`
	}

	vars := map[string]any{"email": email, "password": password}
	if err := c.execute(ctx, generateCustomerTokenMutation, vars, "", &data); err != nil {
		return "", err
	}

	if data.GenerateCustomerToken == nil || data.GenerateCustomerToken.Token == "" {
		return "", errors.New("commerce: no token returned")
	}

	return data.GenerateCustomerToken.Token, nil
}

// CreateCustomer registers a new customer account upstream.
func (c *Client) CreateCustomer(ctx context.Context, input CustomerInput) (*Customer, error) {
	var data struct {
		CreateCustomer *struct {
			Customer *Customer `json:"customer"`
		} `json:"createCustomer"`
	}

	vars := map[string]any{"input": input}
	if err := c.execute(ctx, createCustomerMutation, vars, "", &data); err != nil {
		return nil, err
	}

	if data.CreateCustomer == nil || data.CreateCustomer.Customer == nil {
		return nil, errors.New("commerce: no customer returned")
	}

	return data.CreateCustomer.Customer, nil
}

// GetCustomer fetches the profile of the customer owning the credential.
func (c *Client) GetCustomer(ctx context.Context, token string) (*Customer, error) {
	var data struct {
		Customer *Customer `json:"customer"`
	}

	if err := c.execute(ctx, getCustomerQuery, nil, token, &data); err != nil {
		return nil, err
	}

	if data.Customer == nil {
		return nil, errors.New("commerce: no customer profile returned")
	}

	return data.Customer, nil
}
