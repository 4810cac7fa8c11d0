// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. onUnauthorized is what a 401 means for the calling
// operation: bad credentials for a login, a dead token otherwise.
func mapAdapterError(err error, onUnauthorized, fallback error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", onUnauthorized, err)
	case errors.Is(err, adapter.ErrCancelled), errors.Is(err, adapter.ErrTimeout):
		return err
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
