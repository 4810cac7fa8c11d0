package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is the authorization scheme of every issued token.
const TokenType = "Bearer"

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers or stored on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// ExpiresAt returns the expiry moment of the token, or the zero time when
// the token carries no "exp" claim.
func (t *Token) ExpiresAt() time.Time {
	if t.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}

	return t.RegisteredClaims.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Credentials is the body of a login request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by both the login and the renewal endpoints.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	Expires   time.Time `json:"expires"`
}

// NewLoginResponse builds the response for a freshly signed token.
func NewLoginResponse(token *Token) LoginResponse {
	return LoginResponse{
		Token:     token.SignedString,
		TokenType: TokenType,
		Expires:   token.ExpiresAt().UTC(),
	}
}
