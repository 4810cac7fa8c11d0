package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/mock"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sessionNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionSvc(t *testing.T) (*clientSessionService, *mock.MockSessionStore, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessionStore := mock.NewMockSessionStore(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientSessionService(sessionStore, serverAdapter, logger.Nop()).(*clientSessionService)
	svc.now = func() time.Time { return sessionNow }

	return svc, sessionStore, serverAdapter
}

func savedSession(left time.Duration) models.Session {
	return models.Session{Username: "admin", Token: "old-token", ExpiresAt: sessionNow.Add(left)}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_SavesAndAttachesToken(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()
	creds := models.Credentials{Username: "admin", Password: "s3cret"}
	expires := sessionNow.Add(5 * time.Minute)

	gomock.InOrder(
		serverAdapter.EXPECT().Login(ctx, creds).Return(models.LoginResponse{Token: "jwt", TokenType: "Bearer", Expires: expires}, nil),
		sessionStore.EXPECT().SaveSession(ctx, models.Session{Username: "admin", Token: "jwt", ExpiresAt: expires}).Return(nil),
		serverAdapter.EXPECT().SetToken("jwt"),
	)

	session, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "jwt", session.Token)
	assert.Equal(t, expires, session.ExpiresAt)
}

func TestClientSessionService_Login_ExpiryFromTokenWhenMissing(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer: "iss", Audience: "aud", Subject: "admin",
		Duration: 5 * time.Minute, SignKey: "key", Now: sessionNow,
	})
	require.NoError(t, err)

	serverAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{Token: token.SignedString}, nil)
	sessionStore.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
		assert.True(t, sessionNow.Add(5*time.Minute).Equal(s.ExpiresAt), "expires at %s", s.ExpiresAt)
		return nil
	})
	serverAdapter.EXPECT().SetToken(token.SignedString)

	_, err = svc.Login(ctx, models.Credentials{Username: "admin", Password: "x"})
	require.NoError(t, err)
}

func TestClientSessionService_Login_Rejected(t *testing.T) {
	svc, _, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "bad"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestClientSessionService_Login_ServerDown(t *testing.T) {
	svc, _, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrServiceUnavailable)

	_, err := svc.Login(ctx, models.Credentials{Username: "admin", Password: "x"})
	assert.True(t, errors.Is(err, ErrLoginOnServer))
	assert.True(t, errors.Is(err, adapter.ErrServiceUnavailable))
}

// ── Current / Logout ─────────────────────────────────────────────────────────

func TestClientSessionService_Current_AttachesToken(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(3*time.Minute), nil)
	serverAdapter.EXPECT().SetToken("old-token")

	session, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)
}

func TestClientSessionService_Current_NotLoggedIn(t *testing.T) {
	svc, sessionStore, _ := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.Current(ctx)
	assert.True(t, errors.Is(err, ErrNotLoggedIn))
}

func TestClientSessionService_Current_ExpiredIsDiscarded(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(-time.Second), nil)
	serverAdapter.EXPECT().SetToken("")
	sessionStore.EXPECT().DeleteSession(ctx).Return(nil)

	_, err := svc.Current(ctx)
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

func TestClientSessionService_Logout(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().SetToken("")
	sessionStore.EXPECT().DeleteSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestClientSessionService_Refresh_SavesNewToken(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()
	expires := sessionNow.Add(24 * time.Hour)

	gomock.InOrder(
		sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(30*time.Second), nil),
		serverAdapter.EXPECT().SetToken("old-token"),
		serverAdapter.EXPECT().Refresh(ctx).Return(models.LoginResponse{Token: "new-token", Expires: expires}, nil),
		sessionStore.EXPECT().SaveSession(ctx, models.Session{Username: "admin", Token: "new-token", ExpiresAt: expires}).Return(nil),
		serverAdapter.EXPECT().SetToken("new-token"),
	)

	session, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-token", session.Token)
}

func TestClientSessionService_Refresh_RejectedTokenIsDiscarded(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(30*time.Second), nil)
	serverAdapter.EXPECT().SetToken("old-token")
	serverAdapter.EXPECT().Refresh(ctx).Return(models.LoginResponse{}, adapter.ErrUnauthorized)
	serverAdapter.EXPECT().SetToken("")
	sessionStore.EXPECT().DeleteSession(ctx).Return(nil)

	_, err := svc.Refresh(ctx)
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

func TestClientSessionService_Refresh_TransientFailureKeepsSession(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(30*time.Second), nil)
	serverAdapter.EXPECT().SetToken("old-token")
	serverAdapter.EXPECT().Refresh(ctx).Return(models.LoginResponse{}, adapter.ErrBadGateway)

	_, err := svc.Refresh(ctx)
	assert.True(t, errors.Is(err, ErrRefreshOnServer))
}

// ── Check ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Check_KeepsFreshSession(t *testing.T) {
	svc, sessionStore, _ := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(2*time.Minute), nil)

	action, err := svc.Check(ctx, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.SessionKeep, action)
}

func TestClientSessionService_Check_RefreshesInsideThreshold(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(59*time.Second), nil).Times(2)
	serverAdapter.EXPECT().SetToken(gomock.Any()).Times(2)
	serverAdapter.EXPECT().Refresh(ctx).Return(models.LoginResponse{Token: "new-token", Expires: sessionNow.Add(time.Hour)}, nil)
	sessionStore.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

	action, err := svc.Check(ctx, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.SessionRefresh, action)
}

func TestClientSessionService_Check_DiscardsExpired(t *testing.T) {
	svc, sessionStore, serverAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(savedSession(0), nil)
	serverAdapter.EXPECT().SetToken("")
	sessionStore.EXPECT().DeleteSession(ctx).Return(nil)

	action, err := svc.Check(ctx, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, models.SessionDiscard, action)
}

func TestClientSessionService_Check_NoSession(t *testing.T) {
	svc, sessionStore, _ := newTestSessionSvc(t)
	ctx := context.Background()

	sessionStore.EXPECT().LoadSession(ctx).Return(models.Session{}, store.ErrLocalSessionNotFound)

	_, err := svc.Check(ctx, time.Minute)
	assert.True(t, errors.Is(err, ErrNotLoggedIn))
}
