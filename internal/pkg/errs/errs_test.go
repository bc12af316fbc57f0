package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/pkg/logx"
)

func init() {
	logx.InitGlobalLogger(false)
}

func TestNewError_DefaultsStatusToOK(t *testing.T) {
	customErr := NewError(ErrCartNotReady)

	require.NotNil(t, customErr)
	assert.Equal(t, ErrCartNotReady, customErr.Code)
	assert.Equal(t, http.StatusOK, customErr.Status)
}

func TestNewError_KeepsExplicitStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, NewError(ErrUnauthorized).Status)
	assert.Equal(t, http.StatusTooManyRequests, NewError(ErrRateLimitExceeded).Status)
	assert.Equal(t, http.StatusInternalServerError, NewError(ErrUnknown).Status)
}

func TestNewError_FormatsDetailsIntoTemplate(t *testing.T) {
	customErr := NewError(ErrCartRemote, "The requested qty is not available")

	assert.Equal(t, "Cart service error: The requested qty is not available", customErr.Message)
}

func TestNewError_IgnoresDetailsWithoutPlaceholders(t *testing.T) {
	customErr := NewError(ErrCartNotReady, "extra detail")

	assert.Equal(t, errorMap[ErrCartNotReady].Message, customErr.Message)
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	customErr := NewError(42424)

	require.NotNil(t, customErr)
	assert.Equal(t, ErrUnknown, customErr.Code)
	assert.Equal(t, http.StatusInternalServerError, customErr.Status)
}

func TestNewError_DoesNotMutateTemplate(t *testing.T) {
	NewError(ErrCartRemote, "first")
	customErr := NewError(ErrCartRemote, "second")

	assert.Equal(t, "Cart service error: second", customErr.Message)
	assert.Equal(t, "Cart service error: %s", errorMap[ErrCartRemote].Message)
}

func TestCustomError_Error(t *testing.T) {
	customErr := NewError(ErrUnauthorized)

	assert.Equal(t, "Error Code 3001 (HTTP 401): Please sign in to continue.", customErr.Error())
}
