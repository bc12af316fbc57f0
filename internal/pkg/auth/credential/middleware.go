package credential

import (
	"context"
	"net/http"

	"storefront/internal/pkg/logx"
)

// Define Context Key for storing the decrypted credential, preventing key collisions with other packages.
type contextKey string

const (
	// contextCredentialKey is the key used to store the decrypted customer credential in the request Context.
	contextCredentialKey contextKey = "customer_credential"
)

// ExtractorMiddleware attempts to read and decrypt the credential cookie on every request.
// It injects the plaintext credential into the Context upon success. It does NOT interrupt
// the request (no 401 response) on failure or a missing cookie, treating the visitor as a
// guest instead. Handlers that require an authenticated customer check the context themselves.
func ExtractorMiddleware(cookieName, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				// Cookie is missing. Treat as guest and continue.
				next.ServeHTTP(w, r)
				return
			}

			token, err := DecryptToken(cookie.Value, secret)
			if err != nil {
				// Cookie exists but cannot be decrypted (tampered, or the secret rotated).
				// We log the warning but treat the visitor as a guest and continue.
				logx.Warn("Undecryptable credential cookie, treating as guest", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), contextCredentialKey, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext safely extracts the decrypted credential from the request Context.
// In contexts where ExtractorMiddleware is used, ok == false means the visitor is a guest.
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextCredentialKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
