package http

import (
	"mime"
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
)

// requireJSON rejects bodies that are not declared as application/json.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			logger.FromRequest(r).Debug().
				Str("content_type", r.Header.Get("Content-Type")).
				Msg("unsupported media type")
			utils.WriteError(w, http.StatusUnsupportedMediaType, msgUnsupportedMediaType, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
