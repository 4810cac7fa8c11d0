// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler intended for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers with a JSON 404, so a caller using
// an unsupported method learns nothing about which routes exist. Parameterised
// patterns such as /api/purchases/{id} are matched through [chi.Mux.Match].
// If the method does resolve to a handler, the request is served normally.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
			return
		}

		router.ServeHTTP(w, r)
	}
}
