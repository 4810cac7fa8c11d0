package store

import (
	"context"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore keeps the single client session between CLI invocations.
type SessionStore interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrLocalSessionNotFound] when nothing is saved.
	LoadSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
