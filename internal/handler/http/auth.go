package http

import (
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

// login exchanges the configured credential pair for a short-lived token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r.Body, &credentials); err != nil {
		log.Debug().Err(err).Msg(msgInvalidJSON)
		utils.WriteError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().
		Str("subject", token.Subject).
		Time("expires", token.ExpiresAt()).
		Msg("user logged in")

	utils.WriteJSON(w, models.NewLoginResponse(&token), http.StatusOK)
}

// refresh renews the caller's token with the long refresh lifetime.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	subject, ok := utils.GetSubjectFromContext(ctx)
	if !ok {
		log.Warn().Msg("no subject in authenticated request")
		utils.WriteError(w, http.StatusUnauthorized, msgUnauthorized, nil)
		return
	}

	token, err := h.services.AuthService.Refresh(ctx, subject)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Time("expires", token.ExpiresAt()).Msg("token renewed")

	utils.WriteJSON(w, models.NewLoginResponse(&token), http.StatusOK)
}
