package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
)

// ClientStorages groups all client-side storage repositories.
type ClientStorages struct {
	// SessionStore keeps the token of the logged-in user.
	SessionStore SessionStore

	db *DB
}

// NewClientStorages opens (and creates when missing) the SQLite database at
// cfg.SessionDSN, applies the client migrations and wires the stores.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.SessionDSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewSessionStore(db),
		db:           db,
	}, nil
}

// Close releases the database handle.
func (c *ClientStorages) Close() error {
	return c.db.Close()
}
