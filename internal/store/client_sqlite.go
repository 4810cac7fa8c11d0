package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

const (
	saveSession = `INSERT INTO session (id, username, token, expires_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			username = excluded.username,
			token = excluded.token,
			expires_at = excluded.expires_at;`

	loadSession = `SELECT username, token, expires_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session;`
)

type sessionStore struct {
	*DB
}

// NewSessionStore returns a [SessionStore] backed by the client SQLite database.
func NewSessionStore(db *DB) SessionStore {
	return &sessionStore{DB: db}
}

func (s *sessionStore) SaveSession(ctx context.Context, session models.Session) error {
	_, err := s.ExecContext(ctx, saveSession, session.Username, session.Token, session.ExpiresAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionStore.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionStore) LoadSession(ctx context.Context) (models.Session, error) {
	var (
		session   models.Session
		expiresAt string
	)

	err := s.QueryRowContext(ctx, loadSession).Scan(&session.Username, &session.Token, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionStore.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	session.ExpiresAt, err = time.Parse(time.RFC3339Nano, expiresAt)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: invalid expiry %q: %w", ErrScanningRow, expiresAt, err)
	}

	return session, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context) error {
	if _, err := s.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionStore.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
