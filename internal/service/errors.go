package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrInvalidPurchaseID = errors.New("invalid purchase id")

	ErrExchangeRateNotFound = errors.New("exchange rate not found")
	ErrUpstreamUnavailable  = errors.New("upstream service unavailable")
	ErrUpstreamMalformed    = errors.New("upstream service sent a malformed response")

	ErrSyncEmptyFeed      = errors.New("treasury feed returned no records")
	ErrSyncAlreadyRunning = errors.New("currency sync is already running")
)

// client errors
var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSessionExpired  = errors.New("session expired")
	ErrLoginOnServer   = errors.New("login on server failed")
	ErrRefreshOnServer = errors.New("token refresh on server failed")
)
