package service

import (
	"context"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Login checks credentials against the configured pair and issues a
	// short-lived token. Any mismatch yields ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// Refresh issues a long-lived token for an already authenticated subject.
	Refresh(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PurchaseService interface {
	GetPurchaseByID(ctx context.Context, id int64) (models.Purchase, error)
	GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error)
	GetPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error)

	CreatePurchase(ctx context.Context, input models.PurchaseInput) (models.Purchase, error)
	UpdatePurchase(ctx context.Context, id int64, input models.PurchaseInput) (models.Purchase, error)
	DeletePurchase(ctx context.Context, id int64) error
}

type CountryCurrencyService interface {
	GetAllCountryCurrencies(ctx context.Context) ([]models.CountryCurrency, error)
}

type ExchangeRateService interface {
	// GetRate returns the most recent rate recorded on or before date, or
	// ErrExchangeRateNotFound.
	GetRate(ctx context.Context, country, currency string, date models.Date) (models.ExchangeRate, error)
}

// CurrencySyncService mirrors the treasury country/currency list into storage.
type CurrencySyncService interface {
	// Run performs one supervised sync: every attempt fetches all pages and
	// reconciles them, failed attempts are retried after a fixed delay.
	Run(ctx context.Context) (models.ReconcileResult, error)
	// Status returns a snapshot of the current or last run.
	Status() models.SyncStatus
	// OnStatusChange registers fn to be called after every state transition.
	OnStatusChange(fn func(models.SyncStatus))
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// GetAppInfo returns the version together with the build metadata.
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// PurchaseServiceWrapper defines middleware composition for PurchaseService.
// Implementations wrap an existing PurchaseService to add behavior such as
// logging or validating.
type PurchaseServiceWrapper interface {
	Wrap(PurchaseService) PurchaseService // returns a decorated PurchaseService applying additional behavior
}
