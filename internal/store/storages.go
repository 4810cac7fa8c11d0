package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	PurchaseRepository        PurchaseRepository
	CountryCurrencyRepository CountryCurrencyRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db), nil
}

// NewStoragesFromDB wires the repositories to an already migrated database.
func NewStoragesFromDB(db *DB) *Storages {
	return &Storages{
		PurchaseRepository:        NewPurchaseRepository(db),
		CountryCurrencyRepository: NewCountryCurrencyRepository(db),
		db:                        db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
