package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the purchase API base URL.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SessionDSN is the SQLite file holding the current session.
	SessionDSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// CheckInterval defines how often the session keeper inspects the token.
	CheckInterval time.Duration
	// RefreshThreshold is the remaining lifetime under which the token is renewed.
	RefreshThreshold time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are owned by the client's command tree, so the
// builder reads .env files, the environment, the JSON file at jsonPath
// (when non-empty) and defaults. Non-empty overrides (typically values of
// persistent CLI flags) take precedence over every other source.
func GetClientConfig(jsonPath string, overrides ClientConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withJSONFile(jsonPath).
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := clientConfigFrom(cfg)
	if overrides.Adapter.ServerURL != "" {
		clientCfg.Adapter.ServerURL = overrides.Adapter.ServerURL
	}
	if overrides.Adapter.RequestTimeout != 0 {
		clientCfg.Adapter.RequestTimeout = overrides.Adapter.RequestTimeout
	}
	if overrides.Storage.SessionDSN != "" {
		clientCfg.Storage.SessionDSN = overrides.Storage.SessionDSN
	}

	return clientCfg, clientCfg.validate()
}

func clientConfigFrom(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionDSN: cfg.Storage.Session.DSN,
		},
		Workers: ClientWorkers{
			CheckInterval:    cfg.Workers.SessionCheckInterval,
			RefreshThreshold: cfg.Workers.SessionRefreshThreshold,
		},
	}
}
