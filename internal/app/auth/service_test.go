package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/app/commerce"
	"storefront/internal/pkg/auth/credential"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logx"
)

func init() {
	logx.InitGlobalLogger(false)
}

type fakeAccountAPI struct {
	token    string
	tokenErr error

	created   *commerce.CustomerInput
	createErr error

	customer    *commerce.Customer
	customerErr error
}

func (f *fakeAccountAPI) GenerateCustomerToken(ctx context.Context, email, password string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.token, nil
}

func (f *fakeAccountAPI) CreateCustomer(ctx context.Context, input commerce.CustomerInput) (*commerce.Customer, error) {
	f.created = &input
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &commerce.Customer{Email: input.Email}, nil
}

func (f *fakeAccountAPI) GetCustomer(ctx context.Context, token string) (*commerce.Customer, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	return f.customer, nil
}

func TestLogin_ReturnsTokenAndEncryptedCookieValue(t *testing.T) {
	svc := NewService(&fakeAccountAPI{token: "tok-1"}, "test-secret")

	token, encrypted, customErr := svc.Login(context.Background(), "jane@example.com", "hunter22")

	require.Nil(t, customErr)
	assert.Equal(t, "tok-1", token)
	require.NotEmpty(t, encrypted)
	assert.NotEqual(t, token, encrypted)

	plain, err := credential.DecryptToken(encrypted, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", plain)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	svc := NewService(&fakeAccountAPI{tokenErr: errors.New("The account sign-in was incorrect")}, "test-secret")

	_, _, customErr := svc.Login(context.Background(), "jane@example.com", "wrong")

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidCredentials, customErr.Code)
}

func TestSignup_ForwardsInput(t *testing.T) {
	api := &fakeAccountAPI{}
	svc := NewService(api, "test-secret")

	input := commerce.CustomerInput{
		Email:     "jane@example.com",
		Firstname: "Jane",
		Lastname:  "Doe",
		Password:  "hunter22x",
	}
	require.Nil(t, svc.Signup(context.Background(), input))

	require.NotNil(t, api.created)
	assert.Equal(t, input, *api.created)
}

func TestSignup_UpstreamRejection(t *testing.T) {
	api := &fakeAccountAPI{createErr: errors.New("A customer with the same email address already exists")}
	svc := NewService(api, "test-secret")

	customErr := svc.Signup(context.Background(), commerce.CustomerInput{Email: "jane@example.com"})

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrAuthRemote, customErr.Code)
	assert.Contains(t, customErr.Message, "already exists")
}

func TestCustomer_ReturnsProfile(t *testing.T) {
	api := &fakeAccountAPI{customer: &commerce.Customer{Email: "jane@example.com", Firstname: "Jane"}}
	svc := NewService(api, "test-secret")

	customer, customErr := svc.Customer(context.Background(), "tok-1")

	require.Nil(t, customErr)
	assert.Equal(t, "jane@example.com", customer.Email)
}
