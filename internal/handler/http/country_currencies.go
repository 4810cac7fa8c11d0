// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/go-chi/chi/v5"
)

const (
	fieldDate      = "date"
	msgInvalidDate = "Date must be a valid date (YYYY-MM-DD)"
)

func (h *Handler) getCountryCurrencies(w http.ResponseWriter, r *http.Request) {
	countryCurrencies, err := h.services.CountryCurrencyService.GetAllCountryCurrencies(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, countryCurrencies, http.StatusOK)
}

// getExchangeRate returns the treasury rate of country/currency valid on date.
func (h *Handler) getExchangeRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	country := pathParam(r, "country")
	currency := pathParam(r, "currency")

	date, err := models.ParseDate(pathParam(r, "date"))
	if err != nil {
		log.Debug().Err(err).Msg("invalid exchange rate date")
		utils.WriteError(w, http.StatusBadRequest, msgInvalidDate, map[string]string{fieldDate: msgInvalidDate})
		return
	}

	rate, err := h.services.ExchangeRateService.GetRate(ctx, country, currency, date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, rate, http.StatusOK)
}

// pathParam returns the decoded value of a route parameter. chi matches on
// the escaped path when the request carries one, so "United%20States" has to
// be unescaped here.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}

	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return unescaped
}
