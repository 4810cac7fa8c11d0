package service

import (
	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	SessionKeeper  ClientSessionKeeper

	// Server is the authenticated purchase API. Call SessionService.Current
	// first so that the saved token is attached.
	Server adapter.ServerAdapter
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, notify SessionCheckFunc, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(localStore.SessionStore, serverAdapter, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		SessionKeeper:  NewClientSessionKeeper(sessionSvc, notify, logger),
		Server:         serverAdapter,
	}
}
