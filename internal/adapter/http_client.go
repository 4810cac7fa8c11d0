package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
)

type httpFetcher struct {
	client *utils.HTTPClient

	// deadline bounds one Get call, retries included
	deadline time.Duration
}

// NewHTTPFetcher builds a [Fetcher] with transport retries and an overall
// deadline taken from cfg.
func NewHTTPFetcher(cfg config.Adapter) Fetcher {
	client := utils.NewHTTPClient(
		utils.WithLinearRetry(cfg.RetryCount, cfg.RetryBaseDelay, cfg.RetryStep),
	)
	client.SetHeader("Accept", "application/json")

	return &httpFetcher{client: client, deadline: cfg.RequestTimeout}
}

// Get implements [Fetcher].
func (f *httpFetcher) Get(ctx context.Context, url string, dst any) (bool, error) {
	log := logger.FromContext(ctx)

	callCtx := ctx
	if f.deadline > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, f.deadline)
		defer cancel()
	}

	resp, err := f.client.R().
		SetContext(callCtx).
		Get(url)
	if err != nil {
		err = classifyTransportError(ctx, callCtx, err)
		log.Err(err).Str("func", "httpFetcher.Get").Str("url", url).Msg("request failed")
		return false, err
	}

	code := resp.StatusCode()
	switch {
	case code == http.StatusNotFound:
		return false, nil
	case code == http.StatusUnauthorized:
		return false, fmt.Errorf("%w: %s", ErrUnauthorized, url)
	case code < http.StatusOK || code >= http.StatusMultipleChoices:
		log.Warn().Str("func", "httpFetcher.Get").Str("url", url).Int("status", code).Msg("unexpected status")
		return false, &StatusError{StatusCode: code, Body: strings.TrimSpace(string(resp.Body()))}
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return false, nil
	}

	if err = json.Unmarshal(body, dst); err != nil {
		log.Err(err).Str("func", "httpFetcher.Get").Str("url", url).Msg("error decoding response")
		return false, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return true, nil
}

// classifyTransportError tells a cancellation by the caller apart from an
// expired deadline and from other transport failures.
func classifyTransportError(parent, call context.Context, err error) error {
	if errors.Is(parent.Err(), context.Canceled) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if call.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}
