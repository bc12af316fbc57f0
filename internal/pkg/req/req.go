/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates the logic for parsing JSON request bodies and integrates error handling
to ensure data format correctness and size constraints, facilitating subsequent business
logic processing.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"storefront/internal/pkg/errs"
)

const (
	// MaxJSONBodySize defines the maximum allowed size (1 MB) for a JSON request body.
	// Storefront payloads are small; anything larger is rejected up front.
	MaxJSONBodySize int64 = 1 << 20 // 1 MB
)

// BindJSON attempts to bind the JSON data from the HTTP request body to the destination struct dst.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(nil, r.Body, MaxJSONBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
