package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix marks a configured password that is stored as a bcrypt hash.
const bcryptPrefix = "$2"

// authService is the concrete implementation of AuthService.
// It checks a single configured credential pair and manages the JWT token
// lifecycle with HMAC-SHA256 signatures.
type authService struct {
	// username and password are the only accepted credentials. password may
	// hold a bcrypt hash instead of the plain value.
	username string
	password string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer and tokenAudience are embedded in every issued JWT and
	// required from every parsed one.
	tokenIssuer   string
	tokenAudience string

	// tokenDuration is the lifetime of tokens issued at login,
	// refreshTokenDuration the lifetime of renewed ones.
	tokenDuration        time.Duration
	refreshTokenDuration time.Duration

	validator   validators.Validator
	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the credential
// pair and security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		username:             cfg.Username,
		password:             cfg.Password,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenAudience:        cfg.TokenAudience,
		tokenDuration:        cfg.TokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		validator:            validators.NewPurchaseValidator(),
		idGenerator:          utils.NewUUIDGenerator(),
		now:                  time.Now,
		logger:               logger,
	}
}

// Login authenticates the configured user.
//
// Both fields are compared in constant time and both comparisons always run,
// so neither the response nor its timing tells which field was wrong.
//
// Returns a token valid for tokenDuration or:
//   - a [validators.ValidationError] if a field is empty.
//   - ErrInvalidCredentials if the username or the password does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, err
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(credentials.Username), []byte(a.username)) == 1
	passwordOK := a.checkPassword(credentials.Password)
	if !usernameOK || !passwordOK {
		log.Warn().Str("func", "authService.Login").Msg("invalid credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(credentials.Username, a.tokenDuration)
}

// Refresh issues a new token for subject with the refresh lifetime.
// The caller must already hold a valid token for subject.
func (a *authService) Refresh(ctx context.Context, subject string) (models.Token, error) {
	if subject == "" {
		logger.FromContext(ctx).Warn().Str("func", "authService.Refresh").Msg("empty subject")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return a.createToken(subject, a.refreshTokenDuration)
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, issuer, audience and expiry are verified without clock skew.
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) createToken(subject string, duration time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   a.tokenIssuer,
		Audience: a.tokenAudience,
		Subject:  subject,
		Duration: duration,
		SignKey:  a.tokenSignKey,
		ID:       a.idGenerator.Generate(),
		Now:      a.now(),
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) checkPassword(password string) bool {
	if strings.HasPrefix(a.password, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(a.password), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
}
