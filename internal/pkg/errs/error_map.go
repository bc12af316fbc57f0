/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Cart and Catalog Business Logic Errors
	ErrCartNotReady:       {Code: ErrCartNotReady, Message: "Your cart is not ready yet. Please try again."},
	ErrCartRemote:         {Code: ErrCartRemote, Message: "Cart service error: %s"},
	ErrCartStale:          {Code: ErrCartStale, Message: "Your cart has expired. Please refresh the page."},
	ErrCartMergeFailed:    {Code: ErrCartMergeFailed, Message: "We could not transfer your cart items. Please try again."},
	ErrCartItemQtyInvalid: {Code: ErrCartItemQtyInvalid, Message: "Quantity must be at least 1. Remove the item instead."},
	ErrCatalogRemote:      {Code: ErrCatalogRemote, Message: "Catalog service error: %s"},

	// 3xxx: User, Session, and Security Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "You are already signed in."},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect email or password."},
	ErrAuthRemote:         {Code: ErrAuthRemote, Message: "Account service error: %s"},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
