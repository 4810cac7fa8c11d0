package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
)

// errorStatuses is checked in order; the first match wins. Retryable
// database failures come before the generic query errors they wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{validators.ErrValidation, http.StatusBadRequest},
	{service.ErrInvalidPurchaseID, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrPurchaseNotFound, http.StatusNotFound},
	{service.ErrExchangeRateNotFound, http.StatusNotFound},

	{store.ErrTransactionIdentifierExists, http.StatusConflict},
	{service.ErrSyncAlreadyRunning, http.StatusConflict},

	{service.ErrUpstreamMalformed, http.StatusBadGateway},
	{service.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.err) {
			return candidate.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Server-side
// failures never expose their cause; validation failures carry one message
// per field.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var vErr *validators.ValidationError
	switch {
	case errors.As(err, &vErr):
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteError(w, status, vErr.Message, vErr.Fields)
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Warn().Err(err).Msg("invalid credentials")
		utils.WriteError(w, status, msgInvalidCredentials, nil)
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		message := msgUnexpectedError
		if status != http.StatusInternalServerError {
			message = http.StatusText(status)
		}
		utils.WriteError(w, status, message, nil)
	default:
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteError(w, status, firstLine(err), nil)
	}
}

// firstLine returns the outermost sentinel message of a "%w: %w" chain.
func firstLine(err error) string {
	for _, candidate := range errorStatuses {
		if errors.Is(err, candidate.err) {
			return candidate.err.Error()
		}
	}
	return err.Error()
}
