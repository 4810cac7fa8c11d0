// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// Every malformed variable is reported, not only the first one. List values
// such as SERVER_ALLOWED_ORIGINS may carry spaces after the commas.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{})
	if err != nil {
		var aggregate env.AggregateError
		if errors.As(err, &aggregate) {
			err = errors.Join(aggregate.Errors...)
		}
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.AllowedOrigins = trimList(cfg.Server.AllowedOrigins)

	return nil
}

func trimList(values []string) []string {
	if values == nil {
		return nil
	}

	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			trimmed = append(trimmed, v)
		}
	}

	return trimmed
}
