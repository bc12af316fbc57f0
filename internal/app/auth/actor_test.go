package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/pkg/auth/credential"
)

// actorThroughMiddleware resolves the actor the way a handler would: from a request
// context populated by the credential extractor.
func actorThroughMiddleware(t *testing.T, cookie *http.Cookie) Actor {
	t.Helper()

	var actor Actor
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = ActorFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	credential.ExtractorMiddleware("auth", "test-secret")(inner).ServeHTTP(httptest.NewRecorder(), req)

	return actor
}

func TestActorFromContext_Guest(t *testing.T) {
	actor := actorThroughMiddleware(t, nil)

	assert.False(t, actor.IsCustomer)
	assert.Nil(t, actor.Profile)
}

func TestActorFromContext_CustomerWithOpaqueToken(t *testing.T) {
	sealed, err := credential.EncryptToken("opaque-token", "test-secret")
	require.NoError(t, err)

	actor := actorThroughMiddleware(t, &http.Cookie{Name: "auth", Value: sealed})

	assert.True(t, actor.IsCustomer)
	assert.Nil(t, actor.Profile)
}
