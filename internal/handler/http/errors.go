// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Messages returned to API clients.
const (
	msgInvalidJSON          = "Invalid JSON was passed"
	msgUnsupportedMediaType = "Content-Type must be application/json"
	msgInvalidCredentials   = "Invalid username or password"
	msgUnauthorized         = "Unauthorized"
	msgTooManyRequests      = "Too many requests"
	msgUnexpectedError      = "An unexpected error occurred"
	msgPurchaseNotFound     = "Purchase not found"
	msgInvalidQuery         = "Invalid query parameters"
)
