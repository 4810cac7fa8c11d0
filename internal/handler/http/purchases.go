package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// Query parameters of the purchase search.
const (
	queryDescription = "description"
	queryStartDate   = "transactionStartDate"
	queryEndDate     = "transactionEndDate"
	queryMinAmount   = "minAmount"
	queryMaxAmount   = "maxAmount"
	queryStart       = "start"
	queryPageSize    = "pageSize"
)

func (h *Handler) getPurchases(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	filter, fieldErrors := parsePurchaseFilter(r.URL.Query())
	if len(fieldErrors) > 0 {
		log.Debug().Any("errors", fieldErrors).Msg(msgInvalidQuery)
		utils.WriteError(w, http.StatusBadRequest, msgInvalidQuery, fieldErrors)
		return
	}

	page, err := h.services.PurchaseService.GetPurchases(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// getPurchase serves /api/purchases/{id} where the segment holds either the
// numeric id or the transaction identifier. A key that is neither an integer
// nor a UUID matches no purchase.
func (h *Handler) getPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := chi.URLParam(r, "id")

	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		purchase, err := h.services.PurchaseService.GetPurchaseByID(ctx, id)
		if err != nil {
			writePurchaseError(w, r, err, fmt.Sprintf("Purchase with ID %d not found", id))
			return
		}

		utils.WriteJSON(w, purchase, http.StatusOK)
		return
	}

	if !utils.IsUUID(key) {
		utils.WriteError(w, http.StatusNotFound, msgPurchaseNotFound, nil)
		return
	}

	purchase, err := h.services.PurchaseService.GetPurchaseByTransactionIdentifier(ctx, key)
	if err != nil {
		writePurchaseError(w, r, err, fmt.Sprintf("Purchase with transaction identifier %s not found", key))
		return
	}

	utils.WriteJSON(w, purchase, http.StatusOK)
}

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.PurchaseInput
	if err := utils.DecodeJSON(r.Body, &input); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	created, err := h.services.PurchaseService.CreatePurchase(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/purchases/%d", created.ID))
	utils.WriteJSON(w, models.CreatedResponse{
		ID:                    created.ID,
		TransactionIdentifier: created.TransactionIdentifier,
	}, http.StatusCreated)
}

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := purchaseIDParam(w, r)
	if !ok {
		return
	}

	var input models.PurchaseInput
	if err := utils.DecodeJSON(r.Body, &input); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	updated, err := h.services.PurchaseService.UpdatePurchase(r.Context(), id, input)
	if err != nil {
		writePurchaseError(w, r, err, fmt.Sprintf("Purchase with ID %d not found", id))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := purchaseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.services.PurchaseService.DeletePurchase(r.Context(), id); err != nil {
		writePurchaseError(w, r, err, fmt.Sprintf("Purchase with ID %d not found", id))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// purchaseIDParam reads the {id} route parameter. Non-numeric ids name no
// purchase and are answered with 404.
func purchaseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Debug().Str("id", raw).Msg("non-numeric purchase id")
		utils.WriteError(w, http.StatusNotFound, msgPurchaseNotFound, nil)
		return 0, false
	}

	return id, true
}

// writePurchaseError answers lookups of a single purchase. Ids that cannot
// exist are reported like missing ones.
func writePurchaseError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	if errors.Is(err, store.ErrPurchaseNotFound) || errors.Is(err, service.ErrInvalidPurchaseID) {
		logger.FromRequest(r).Info().Err(err).Msg("purchase not found")
		utils.WriteError(w, http.StatusNotFound, notFoundMessage, nil)
		return
	}

	writeServiceError(w, r, err)
}

// parsePurchaseFilter builds a filter from the query string. Absent
// parameters keep their defaults; unparsable ones are reported per field.
// Range and bound checks are left to the validation service.
func parsePurchaseFilter(query url.Values) (models.PurchaseFilter, map[string]string) {
	filter := models.NewPurchaseFilter()
	fieldErrors := make(map[string]string)

	filter.Description = query.Get(queryDescription)

	if raw := query.Get(queryStartDate); raw != "" {
		if t, err := parseQueryTime(raw); err == nil {
			filter.TransactionStartDate = &t
		} else {
			fieldErrors[queryStartDate] = "TransactionStartDate must be a valid date"
		}
	}
	if raw := query.Get(queryEndDate); raw != "" {
		if t, err := parseQueryTime(raw); err == nil {
			filter.TransactionEndDate = &t
		} else {
			fieldErrors[queryEndDate] = "TransactionEndDate must be a valid date"
		}
	}

	if raw := query.Get(queryMinAmount); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			filter.MinAmount = &d
		} else {
			fieldErrors[queryMinAmount] = "MinAmount must be a number"
		}
	}
	if raw := query.Get(queryMaxAmount); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			filter.MaxAmount = &d
		} else {
			fieldErrors[queryMaxAmount] = "MaxAmount must be a number"
		}
	}

	if raw := query.Get(queryStart); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.Start = n
		} else {
			fieldErrors[validators.FieldStart] = validators.MsgStartNegative
		}
	}
	if raw := query.Get(queryPageSize); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.PageSize = n
		} else {
			fieldErrors[validators.FieldPageSize] = validators.MsgPageSizeOutOfRange
		}
	}

	return filter, fieldErrors
}

// parseQueryTime accepts an RFC 3339 timestamp or a bare date, read as
// midnight UTC.
func parseQueryTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	return time.Parse(models.DateLayout, raw)
}
