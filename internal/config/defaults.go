// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, used for every field no other source sets.
const (
	DefaultHTTPAddress             = "localhost:8080"
	DefaultRequestTimeout          = 30 * time.Second
	DefaultTokenDuration           = 5 * time.Minute
	DefaultRefreshTokenDuration    = 24 * time.Hour
	DefaultRateLimit               = 100
	DefaultRateLimitWindow         = time.Minute
	DefaultTreasuryBaseURL         = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange"
	DefaultServerURL               = "http://localhost:8080"
	DefaultAdapterTimeout          = 30 * time.Second
	DefaultRetryCount              = 3
	DefaultRetryBaseDelay          = 4 * time.Second
	DefaultRetryStep               = time.Second
	DefaultSyncStartDelay          = 5 * time.Second
	DefaultSyncMaxAttempts         = 5
	DefaultSyncRetryDelay          = 3 * time.Second
	DefaultSyncPageSize            = 100
	DefaultSessionDSN              = "session.db"
	DefaultSessionCheckInterval    = 10 * time.Second
	DefaultSessionRefreshThreshold = time.Minute
	DefaultServiceName             = "purchase-tracker"
)

// DefaultAllowedOrigins is the CORS allow-list used when none is configured.
var DefaultAllowedOrigins = []string{"http://localhost:4200"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: "development",
			Version:     "dev",
		},
		Auth: Auth{
			TokenDuration:        DefaultTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
		},
		Storage: Storage{
			Session: Session{DSN: DefaultSessionDSN},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			RateLimit:       DefaultRateLimit,
			RateLimitWindow: DefaultRateLimitWindow,
			AllowedOrigins:  append([]string(nil), DefaultAllowedOrigins...),
		},
		Adapter: Adapter{
			TreasuryBaseURL: DefaultTreasuryBaseURL,
			ServerURL:       DefaultServerURL,
			RequestTimeout:  DefaultAdapterTimeout,
			RetryCount:      DefaultRetryCount,
			RetryBaseDelay:  DefaultRetryBaseDelay,
			RetryStep:       DefaultRetryStep,
		},
		Workers: Workers{
			SyncStartDelay:          DefaultSyncStartDelay,
			SyncMaxAttempts:         DefaultSyncMaxAttempts,
			SyncRetryDelay:          DefaultSyncRetryDelay,
			SyncPageSize:            DefaultSyncPageSize,
			SessionCheckInterval:    DefaultSessionCheckInterval,
			SessionRefreshThreshold: DefaultSessionRefreshThreshold,
		},
		Telemetry: Telemetry{
			ServiceName: DefaultServiceName,
		},
	}
}
