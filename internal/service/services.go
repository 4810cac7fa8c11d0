package service

import (
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type Services struct {
	AuthService            AuthService
	PurchaseService        PurchaseService
	CountryCurrencyService CountryCurrencyService
	ExchangeRateService    ExchangeRateService
	CurrencySyncService    CurrencySyncService
	AppInfoService         AppInfoService
}

func NewServices(storages *store.Storages, treasury adapter.TreasuryAdapter, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	purchaseService := NewPurchaseValidationService().
		Wrap(NewPurchaseService(storages.PurchaseRepository, logger))

	return &Services{
		AuthService:            NewAuthService(cfg.Auth, logger),
		PurchaseService:        purchaseService,
		CountryCurrencyService: NewCountryCurrencyService(storages.CountryCurrencyRepository, logger),
		ExchangeRateService:    NewExchangeRateService(treasury, logger),
		CurrencySyncService:    NewCurrencySyncService(treasury, storages.CountryCurrencyRepository, cfg.Workers, logger),
		AppInfoService:         appInfoService,
	}, nil
}
