// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	envFilePathVar    = "ENV_FILE_PATH"
	envEnvironmentVar = "APP_ENVIRONMENT"
)

// loadDotEnv loads the first .env file found into the process environment.
// Lookup order: $ENV_FILE_PATH, .env.$APP_ENVIRONMENT, .env.
// Variables already present in the environment are never overwritten.
// A missing file is not an error, an explicitly configured one is.
func loadDotEnv() error {
	if path := os.Getenv(envFilePathVar); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("error loading env file %q: %w", path, err)
		}
		return nil
	}

	for _, path := range dotEnvCandidates(os.Getenv(envEnvironmentVar)) {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading env file %q: %w", path, err)
		}
	}

	return nil
}

func dotEnvCandidates(environment string) []string {
	if environment == "" {
		return []string{".env"}
	}

	return []string{".env." + environment, ".env"}
}
