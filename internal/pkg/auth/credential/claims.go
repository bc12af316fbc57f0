package credential

import (
	"github.com/golang-jwt/jwt"
)

// Profile holds the customer identity fields that can be recovered from the credential
// itself, without an upstream round-trip. All fields are best-effort.
type Profile struct {
	Firstname string
	Lastname  string
	Email     string
}

// DecodeProfile attempts to read profile claims out of the credential token.
//
// The upstream commerce platform issues its customer tokens as JWTs in most deployments,
// but the token is contractually opaque. Signature verification is impossible here (the
// signing key belongs to the upstream), so the claims are parsed unverified and used only
// for display purposes, never for authorization decisions. A token that is not a JWT, or
// carries no recognizable claims, yields (nil, false).
func DecodeProfile(token string) (*Profile, bool) {
	parser := &jwt.Parser{}
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	p := &Profile{
		Firstname: stringClaim(claims, "firstname"),
		Lastname:  stringClaim(claims, "lastname"),
		Email:     stringClaim(claims, "email"),
	}

	if p.Firstname == "" && p.Lastname == "" && p.Email == "" {
		return nil, false
	}

	return p, true
}

// stringClaim returns the named claim when it is a non-empty string.
func stringClaim(claims jwt.MapClaims, name string) string {
	if v, ok := claims[name].(string); ok {
		return v
	}
	return ""
}
