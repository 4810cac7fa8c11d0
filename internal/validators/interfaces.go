// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks purchase inputs, search filters, exchange rate
// queries and login credentials before they reach the services.
//
// Failures are reported as [*ValidationError], which carries one message per
// invalid field (keyed by the JSON field name) and matches [ErrValidation].
package validators

import "context"

// Validator validates one of the supported input types. When fields are
// given only those JSON fields are checked.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
