package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/mock"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	app     *App
	session *mock.MockClientSessionService
	keeper  *mock.MockClientSessionKeeper
	server  *mock.MockServerAdapter

	out    bytes.Buffer
	errOut bytes.Buffer

	closed     bool
	loadedPath string
	overrides  config.ClientConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		session: mock.NewMockClientSessionService(ctrl),
		keeper:  mock.NewMockClientSessionKeeper(ctrl),
		server:  mock.NewMockServerAdapter(ctrl),
	}

	env.app = NewApp(models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"), logger.Nop())
	env.app.loadConfig = func(jsonPath string, overrides config.ClientConfig) (*config.ClientConfig, error) {
		env.loadedPath = jsonPath
		env.overrides = overrides
		return &config.ClientConfig{
			Workers: config.ClientWorkers{CheckInterval: 10 * time.Second, RefreshThreshold: time.Minute},
		}, nil
	}
	env.app.newServices = func(context.Context, *config.ClientConfig, service.SessionCheckFunc, *logger.Logger) (*service.ClientServices, func() error, error) {
		return &service.ClientServices{
				SessionService: env.session,
				SessionKeeper:  env.keeper,
				Server:         env.server,
			}, func() error {
				env.closed = true
				return nil
			}, nil
	}
	env.app.SetOutput(&env.out, &env.errOut)

	return env
}

func (e *testEnv) run(args ...string) error {
	return e.app.Execute(context.Background(), args)
}

func (e *testEnv) loggedIn() {
	e.session.EXPECT().Current(gomock.Any()).Return(models.Session{Username: "admin", Token: "t"}, nil)
}

func TestApp_PersistentFlagsReachConfig(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Logout(gomock.Any()).Return(nil)

	err := env.run("--config", "client.json", "--server", "http://api:8080", "--timeout", "5s", "--session", "s.db", "logout")

	require.NoError(t, err)
	assert.Equal(t, "client.json", env.loadedPath)
	assert.Equal(t, "http://api:8080", env.overrides.Adapter.ServerURL)
	assert.Equal(t, 5*time.Second, env.overrides.Adapter.RequestTimeout)
	assert.Equal(t, "s.db", env.overrides.Storage.SessionDSN)
	assert.True(t, env.closed, "services must be closed after the command")
	assert.Contains(t, env.out.String(), "Logged out")
}

func TestApp_ConfigError(t *testing.T) {
	env := newTestEnv(t)
	env.app.loadConfig = func(string, config.ClientConfig) (*config.ClientConfig, error) {
		return nil, errors.New("bad config")
	}

	err := env.run("logout")

	require.Error(t, err)
	assert.Contains(t, env.errOut.String(), "load config")
}

func TestApp_Login(t *testing.T) {
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("password flag", func(t *testing.T) {
		env := newTestEnv(t)
		env.session.EXPECT().
			Login(gomock.Any(), models.Credentials{Username: "admin", Password: "secret"}).
			Return(models.Session{Username: "admin", Token: "jwt", ExpiresAt: expires}, nil)

		require.NoError(t, env.run("login", "-u", "admin", "-p", "secret"))

		assert.Contains(t, env.out.String(), "Logged in as")
		assert.Contains(t, env.out.String(), "2026-01-01T12:00:00Z")
		assert.NotContains(t, env.out.String(), "jwt")
	})

	t.Run("password from stdin", func(t *testing.T) {
		env := newTestEnv(t)
		env.app.SetInput(strings.NewReader("secret\n"))
		env.session.EXPECT().
			Login(gomock.Any(), models.Credentials{Username: "admin", Password: "secret"}).
			Return(models.Session{Username: "admin", ExpiresAt: expires}, nil)

		require.NoError(t, env.run("login", "-u", "admin"))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.session.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.Session{}, service.ErrInvalidCredentials)

		err := env.run("login", "-u", "admin", "-p", "wrong")

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Contains(t, env.errOut.String(), "invalid username or password")
	})

	t.Run("username required", func(t *testing.T) {
		env := newTestEnv(t)

		assert.Error(t, env.run("login", "-p", "secret"))
	})
}

func TestApp_StatusNotLoggedIn(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Current(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)

	err := env.run("status")

	assert.ErrorIs(t, err, service.ErrNotLoggedIn)
	assert.Contains(t, env.errOut.String(), `run "login" first`)
}

func TestApp_StatusJSON(t *testing.T) {
	env := newTestEnv(t)
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	env.session.EXPECT().Current(gomock.Any()).
		Return(models.Session{Username: "admin", Token: "jwt", ExpiresAt: expires}, nil)

	require.NoError(t, env.run("--json", "status"))

	var got sessionJSON
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
	assert.Equal(t, "admin", got.Username)
	assert.True(t, expires.Equal(got.ExpiresAt))
	assert.NotContains(t, env.out.String(), "jwt")
}

func TestApp_Refresh(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Refresh(gomock.Any()).
		Return(models.Session{Username: "admin", ExpiresAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}, nil)

	require.NoError(t, env.run("refresh"))

	assert.Contains(t, env.out.String(), "2026-01-02T00:00:00Z")
}

func TestApp_Watch(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn()

	started := make(chan struct{})
	env.keeper.EXPECT().Start(gomock.Any(), 10*time.Second, time.Minute).Do(func(context.Context, time.Duration, time.Duration) {
		close(started)
	})
	env.keeper.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.app.Execute(ctx, []string{"watch"}) }()

	<-started
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestApp_OnSessionCheckEndsWatch(t *testing.T) {
	tests := []struct {
		name     string
		action   models.SessionAction
		err      error
		wantOut  string
		wantStop bool
	}{
		{name: "keep", action: models.SessionKeep},
		{name: "refresh", action: models.SessionRefresh, wantOut: "Token renewed"},
		{name: "discard", action: models.SessionDiscard, wantOut: "discarded", wantStop: true},
		{name: "expired on server", action: models.SessionRefresh, err: service.ErrSessionExpired, wantOut: "Session ended", wantStop: true},
		{name: "transient failure", action: models.SessionRefresh, err: adapter.ErrTimeout, wantOut: "did not answer in time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			stopped := false
			env.app.stopWatch = func() { stopped = true }

			env.app.onSessionCheck(tt.action, tt.err)

			if tt.wantOut == "" {
				assert.Empty(t, env.out.String())
			} else {
				assert.Contains(t, env.out.String(), tt.wantOut)
			}
			assert.Equal(t, tt.wantStop, stopped)
		})
	}
}

func TestApp_Currencies(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn()
	env.server.EXPECT().GetCountryCurrencies(gomock.Any()).Return([]models.CountryCurrency{
		{Country: "Canada", Currency: "Dollar"},
		{Country: "Mexico", Currency: "Peso"},
	}, nil)

	require.NoError(t, env.run("currencies"))

	assert.Contains(t, env.out.String(), "Canada")
	assert.Contains(t, env.out.String(), "Peso")
}

func TestApp_Rate(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn()
	date := models.NewDate(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	env.server.EXPECT().GetExchangeRate(gomock.Any(), "Canada", "Dollar", date).Return(models.ExchangeRate{
		Country:       "Canada",
		Currency:      "Dollar",
		ExchangeRate:  decimal.RequireFromString("1.354"),
		RecordDate:    date,
		EffectiveDate: date,
	}, nil)

	require.NoError(t, env.run("--json", "rate", "Canada", "Dollar", "2024-03-31", "--amount", "10"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &got))
	assert.Equal(t, "13.54", got["converted"])
	assert.Equal(t, "10.00", got["amount"])
	assert.Equal(t, "2024-03-31", got["record_date"])
}

func TestApp_RateInvalidDate(t *testing.T) {
	env := newTestEnv(t)

	assert.Error(t, env.run("rate", "Canada", "Dollar", "31/03/2024"))
}

func TestApp_SyncStatus(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn()
	env.server.EXPECT().GetSyncStatus(gomock.Any()).Return(models.SyncStatus{
		State:       models.SyncDone,
		Attempt:     2,
		MaxAttempts: 5,
		Result:      &models.ReconcileResult{Fetched: 10, Inserted: 3, Deleted: 1},
	}, nil)

	require.NoError(t, env.run("sync-status"))

	assert.Contains(t, env.out.String(), "done")
	assert.Contains(t, env.out.String(), "2/5")
}

func TestApp_Version(t *testing.T) {
	t.Run("with server", func(t *testing.T) {
		env := newTestEnv(t)
		env.server.EXPECT().GetVersion(gomock.Any()).Return(models.VersionResponse{Version: "2.0.0"}, nil)

		require.NoError(t, env.run("version"))

		assert.Contains(t, env.out.String(), "1.0.0 2026-01-01 abc123")
		assert.Contains(t, env.out.String(), "2.0.0")
	})

	t.Run("offline", func(t *testing.T) {
		env := newTestEnv(t)

		require.NoError(t, env.run("version", "--offline"))

		assert.Contains(t, env.out.String(), "1.0.0")
	})
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "too many requests, try again later", describeError(adapter.ErrTooManyRequests))
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}

func TestApp_Browse(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn()

	var got models.PurchaseFilter
	env.app.browse = func(_ *cobra.Command, filter models.PurchaseFilter) error {
		got = filter
		return nil
	}

	require.NoError(t, env.run("browse", "--description", "coffee", "--page-size", "5"))

	assert.Equal(t, "coffee", got.Description)
	assert.Equal(t, 5, got.PageSize)
	assert.Equal(t, 0, got.Start)
}

func TestApp_BrowseRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	env.session.EXPECT().Current(gomock.Any()).Return(models.Session{}, service.ErrNotLoggedIn)
	env.app.browse = func(*cobra.Command, models.PurchaseFilter) error {
		t.Fatal("browser must not start without a session")
		return nil
	}

	assert.ErrorIs(t, env.run("browse"), service.ErrNotLoggedIn)
}
