package http

import (
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the token subject in the
// request context under [utils.SubjectCtxKey]. The request-scoped logger is
// enriched with the subject as well.
//
// Every rejection is answered with the same 401 body, whatever the cause:
// a missing header, a malformed header, a bad signature or an expired token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized, nil)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized, nil)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized, nil)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("subject", token.Subject)
		})
		ctx = l.WithContext(utils.WithSubject(ctx, token.Subject))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
