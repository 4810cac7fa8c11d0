package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

// maxBodyBytes caps the size of decoded request bodies.
const maxBodyBytes = 1 << 20

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] with the given status.
// fieldErrors may be nil.
func WriteError(w http.ResponseWriter, statusCode int, message string, fieldErrors map[string]string) {
	_, _ = WriteJSON(w, models.ErrorResponse{Message: message, Errors: fieldErrors}, statusCode)
}

// DecodeJSON reads a single JSON value from r into dst. Unknown fields and
// trailing data are rejected.
func DecodeJSON(r io.Reader, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	if decoder.More() {
		return errors.New("error decoding JSON body: unexpected data after JSON value")
	}

	return nil
}
