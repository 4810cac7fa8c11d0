package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://example.com"))
//	resp, err := client.R().Get("/items")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures the underlying resty client.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the per-try transport timeout.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

// WithLinearRetry enables transport-level retries: up to count retries after
// the first try, waiting base + attempt*step before retry number attempt.
// Transport errors, 408 and 5xx responses are retried; everything else is
// returned to the caller as is.
func WithLinearRetry(count int, base, step time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if count <= 0 {
			return
		}

		c.SetRetryCount(count).
			SetRetryWaitTime(base).
			SetRetryMaxWaitTime(base + time.Duration(count)*step).
			SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
				attempt := 1
				if resp != nil && resp.Request != nil {
					attempt = resp.Request.Attempt
				}
				return LinearBackoff(base, step, attempt), nil
			}).
			AddRetryCondition(IsTransientFailure)
	}
}

// LinearBackoff returns base + attempt*step.
func LinearBackoff(base, step time.Duration, attempt int) time.Duration {
	return base + time.Duration(attempt)*step
}

// IsTransientFailure reports whether a response or transport error is worth
// another try.
func IsTransientFailure(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}

	code := resp.StatusCode()
	return code == http.StatusRequestTimeout || code >= http.StatusInternalServerError
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// with opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
