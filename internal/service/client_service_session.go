package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type clientSessionService struct {
	sessionStore store.SessionStore
	adapter      adapter.ServerAdapter

	now    func() time.Time
	logger *logger.Logger
}

func NewClientSessionService(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessionStore: sessionStore,
		adapter:      serverAdapter,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *clientSessionService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, credentials)
	if err != nil {
		return models.Session{}, mapAdapterError(err, ErrInvalidCredentials, ErrLoginOnServer)
	}

	session := newSession(credentials.Username, resp)
	if err = s.sessionStore.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.adapter.SetToken(session.Token)

	s.logger.Info().Str("username", session.Username).Time("expires_at", session.ExpiresAt).Msg("logged in")

	return session, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.sessionStore.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info().Msg("logged out")

	return nil
}

func (s *clientSessionService) Current(ctx context.Context) (models.Session, error) {
	session, err := s.sessionStore.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err = s.Logout(ctx); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrSessionExpired
	}

	s.adapter.SetToken(session.Token)

	return session, nil
}

func (s *clientSessionService) Refresh(ctx context.Context) (models.Session, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return models.Session{}, err
	}

	resp, err := s.adapter.Refresh(ctx)
	if err != nil {
		mapped := mapAdapterError(err, ErrSessionExpired, ErrRefreshOnServer)
		if errors.Is(mapped, ErrSessionExpired) {
			// the server no longer accepts the token, keeping it is pointless
			_ = s.Logout(ctx)
		}
		return models.Session{}, mapped
	}

	session := newSession(current.Username, resp)
	if err = s.sessionStore.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.adapter.SetToken(session.Token)

	s.logger.Info().Time("expires_at", session.ExpiresAt).Msg("token refreshed")

	return session, nil
}

func (s *clientSessionService) Check(ctx context.Context, threshold time.Duration) (models.SessionAction, error) {
	session, err := s.sessionStore.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.SessionKeep, ErrNotLoggedIn
		}
		return models.SessionKeep, fmt.Errorf("load session: %w", err)
	}

	action := models.NextSessionAction(session.TimeLeft(s.now()), threshold)
	switch action {
	case models.SessionRefresh:
		if _, err = s.Refresh(ctx); err != nil {
			return action, err
		}
	case models.SessionDiscard:
		if err = s.Logout(ctx); err != nil {
			return action, err
		}
	}

	return action, nil
}

// newSession prefers the expiry reported by the server and falls back to
// the "exp" claim of the token.
func newSession(username string, resp models.LoginResponse) models.Session {
	expiresAt := resp.Expires
	if expiresAt.IsZero() {
		if exp, err := utils.ParseExpiryUnverified(resp.Token); err == nil {
			expiresAt = exp
		}
	}

	return models.Session{
		Username:  username,
		Token:     resp.Token,
		ExpiresAt: expiresAt.UTC(),
	}
}
