// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/go-chi/httprate"
)

// rateLimit limits every caller to cfg.RateLimit requests per
// cfg.RateLimitWindow. Callers holding a valid token are counted by token
// subject, everyone else by client address.
func (h *Handler) rateLimit() func(http.Handler) http.Handler {
	limit := h.cfg.RateLimit
	if limit <= 0 {
		limit = config.DefaultRateLimit
	}
	window := h.cfg.RateLimitWindow
	if window <= 0 {
		window = config.DefaultRateLimitWindow
	}

	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(h.rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().Msg("rate limit exceeded")
			utils.WriteError(w, http.StatusTooManyRequests, msgTooManyRequests, nil)
		}),
	)
}

func (h *Handler) rateLimitKey(r *http.Request) (string, error) {
	if h.services.AuthService != nil {
		if tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
			token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
			if err == nil && token.Subject != "" {
				return "sub:" + token.Subject, nil
			}
		}
	}

	ip, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}

	return "ip:" + ip, nil
}
