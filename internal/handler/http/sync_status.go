package http

import (
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
)

// getSyncStatus reports the state of the latest currency sync run.
func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.CurrencySyncService.Status(), http.StatusOK)
}
