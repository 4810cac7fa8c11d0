package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Outcomes of a treasury fetch other than success and "no data".
var (
	// ErrUnauthorized is returned for a 401 answer.
	ErrUnauthorized = errors.New("upstream unauthorized")

	// ErrRequestFailed is returned for a transport failure or any non-2xx
	// answer without a more specific mapping. Status answers are wrapped in
	// [*StatusError].
	ErrRequestFailed = errors.New("upstream request failed")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("upstream response is malformed")

	// ErrCancelled is returned when the caller cancelled the request.
	ErrCancelled = errors.New("upstream request cancelled")

	// ErrTimeout is returned when no answer arrived before the deadline.
	ErrTimeout = errors.New("upstream request timed out")
)

// Errors mapped from the purchase API status codes on the client side.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// StatusError is a non-2xx answer. It matches [ErrRequestFailed] with
// [errors.Is].
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrRequestFailed
}
