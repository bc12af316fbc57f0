/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Cart and Catalog Business Logic Errors
const (
	// ErrCartNotReady indicates that a cart operation was attempted before the session
	// bootstrap resolved an active cart id.
	ErrCartNotReady = 2101

	// ErrCartRemote indicates that the upstream commerce API rejected or failed a cart
	// operation. The upstream message is passed through verbatim.
	ErrCartRemote = 2102

	// ErrCartStale indicates that a previously valid cart id was rejected by the
	// upstream system (expired or deleted) outside of bootstrap recovery.
	ErrCartStale = 2103

	// ErrCartMergeFailed indicates that the guest cart could not be merged into the
	// customer cart after login. Login itself is not rolled back.
	ErrCartMergeFailed = 2104

	// ErrCartItemQtyInvalid indicates a line quantity below 1. Removing a line must go
	// through the remove operation, never through a zero-quantity update.
	ErrCartItemQtyInvalid = 2201

	// ErrCatalogRemote indicates that an upstream catalog query failed.
	ErrCatalogRemote = 2301
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrUnauthorized indicates that the request requires an authenticated customer.
	ErrUnauthorized = 3001

	// ErrAlreadyLoggedIn indicates a login or signup attempt from an authenticated session.
	ErrAlreadyLoggedIn = 3002

	// ErrInvalidCredentials indicates that the upstream rejected the email/password pair.
	ErrInvalidCredentials = 3003

	// ErrAuthRemote indicates that the upstream account service failed for a reason
	// other than bad credentials. The upstream message is passed through verbatim.
	ErrAuthRemote = 3004
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
