package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService defines the client-side contract for obtaining,
// persisting and renewing the bearer token of the terminal client.
type ClientSessionService interface {
	// Login exchanges credentials for a token, saves the session locally and
	// attaches the token to the server adapter.
	// Returns ErrInvalidCredentials when the server rejects the credentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Logout forgets the local session. The token itself stays valid on the
	// server until it expires.
	Logout(ctx context.Context) error

	// Current loads the saved session and attaches its token to the server
	// adapter. Returns ErrNotLoggedIn when no session is saved and
	// ErrSessionExpired (after discarding it) when the token expired.
	Current(ctx context.Context) (models.Session, error)

	// Refresh renews the current token on the server and saves the result.
	Refresh(ctx context.Context) (models.Session, error)

	// Check inspects the session once and renews or discards it depending on
	// the remaining lifetime and threshold. It reports the action taken.
	Check(ctx context.Context, threshold time.Duration) (models.SessionAction, error)
}

// ClientSessionKeeper defines the contract for a background worker that
// periodically calls Check to keep the session alive.
type ClientSessionKeeper interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 10 seconds if interval is zero or negative. Any previously
	// running keeper is stopped before the new one begins.
	Start(ctx context.Context, interval, threshold time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
