package auth

import (
	"context"

	"storefront/internal/pkg/auth/credential"
)

// Actor describes the current visitor identity. It is derived from the presence of a
// credential at the moment of the call, never stored: identity changes only through
// explicit login and logout transitions.
type Actor struct {
	// IsCustomer is true when a valid credential is present.
	IsCustomer bool

	// Profile holds best-effort identity fields decoded from the credential itself.
	// Nil for guests and for credentials that carry no readable claims.
	Profile *credential.Profile
}

// ActorFromContext derives the visitor identity from the credential middleware's context.
func ActorFromContext(ctx context.Context) Actor {
	token, ok := credential.FromContext(ctx)
	if !ok {
		return Actor{}
	}

	profile, _ := credential.DecodeProfile(token)

	return Actor{
		IsCustomer: true,
		Profile:    profile,
	}
}
