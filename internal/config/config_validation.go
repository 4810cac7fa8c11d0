// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks invariants shared by the server and the client on the
// merged [StructuredConfig]. Zero values are accepted here; the role-specific
// validators decide which fields are mandatory.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenDuration < 0 || cfg.Auth.RefreshTokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAuthConfigs)
	}

	if cfg.Adapter.RetryCount < 0 || cfg.Adapter.RetryBaseDelay < 0 || cfg.Adapter.RetryStep < 0 {
		return fmt.Errorf("%w: negative retry settings", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncMaxAttempts < 0 || cfg.Workers.SyncPageSize < 0 || cfg.Workers.SyncRetryDelay < 0 {
		return fmt.Errorf("%w: negative sync settings", ErrInvalidWorkerConfigs)
	}

	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	return nil
}

// validateServer checks that everything the server needs at startup is set.
func (cfg *StructuredConfig) validateServer() error {
	auth := cfg.Auth
	if auth.Username == "" || auth.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidAuthConfigs)
	}
	if auth.TokenSignKey == "" || auth.TokenIssuer == "" || auth.TokenAudience == "" {
		return fmt.Errorf("%w: token sign key, issuer and audience are required", ErrInvalidAuthConfigs)
	}
	if auth.TokenDuration == 0 || auth.RefreshTokenDuration == 0 {
		return fmt.Errorf("%w: token durations are required", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RateLimit == 0 || cfg.Server.RateLimitWindow == 0 {
		return ErrInvalidServerConfigs
	}

	if _, err := url.ParseRequestURI(cfg.Adapter.TreasuryBaseURL); err != nil {
		return fmt.Errorf("%w: treasury base url: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout == 0 {
		return fmt.Errorf("%w: request timeout is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncMaxAttempts == 0 || cfg.Workers.SyncPageSize == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		return ErrInvalidTelemetryConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SessionDSN == "" || strings.Contains(cfg.Storage.SessionDSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if _, err := url.ParseRequestURI(cfg.Adapter.ServerURL); err != nil || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.CheckInterval <= 0 || cfg.Workers.RefreshThreshold <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
