package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTParams holds everything needed to issue a token.
type JWTParams struct {
	Issuer   string
	Audience string
	Subject  string
	Duration time.Duration
	SignKey  string
	// ID becomes the "jti" claim. Empty means none.
	ID string
	// Now is the issuing moment. Zero means time.Now().
	Now time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): identifies the intended recipient
//   - Subject   (sub): the authenticated user name
//   - ID        (jti): a unique token identifier
//   - IssuedAt  (iat) and NotBefore (nbf): the issuing time
//   - ExpiresAt (exp): the issuing time plus Duration
//
// Issuer, Audience, Subject, SignKey and a non-zero Duration are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.JWTParams{
//	    Issuer: "purchases", Audience: "purchases-spa", Subject: "admin",
//	    Duration: 5 * time.Minute, SignKey: "secret",
//	})
func GenerateJWTToken(params JWTParams) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Subject == "" ||
		params.Duration == 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	claims := jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   params.Subject,
		Audience:  jwt.ClaimStrings{params.Audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        params.ID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp), required and checked without clock skew
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, tokenAudience string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], models.TokenType) || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseExpiryUnverified reads the "exp" claim without checking the signature.
// The client uses it to schedule renewals of a token it cannot verify.
func ParseExpiryUnverified(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry")
	}

	return claims.ExpiresAt.Time, nil
}
