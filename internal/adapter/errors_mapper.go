package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx answer of the purchase API into a sentinel
// error carrying the server message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, message)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return &StatusError{StatusCode: resp.StatusCode(), Body: message}
	}
}

// errorMessage extracts a readable message from an error body. Field-level
// validation messages are appended in key order.
func errorMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
		return raw
	}

	if len(errResp.Errors) == 0 {
		return errResp.Message
	}

	fields := make([]string, 0, len(errResp.Errors))
	for field := range errResp.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var b strings.Builder
	b.WriteString(errResp.Message)
	for _, field := range fields {
		b.WriteString("; ")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(errResp.Errors[field])
	}

	return b.String()
}
