package store

import (
	"context"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PurchaseRepository persists purchases.
type PurchaseRepository interface {
	GetPurchaseByID(ctx context.Context, id int64) (models.Purchase, error)
	GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error)
	GetPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error)
	CreatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error)
	UpdatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error)
	DeletePurchase(ctx context.Context, id int64) error
}

// CountryCurrencyRepository persists the country/currency reference list.
type CountryCurrencyRepository interface {
	GetAllCountryCurrencies(ctx context.Context) ([]models.CountryCurrency, error)
	// ReconcileCountryCurrencies makes the stored set equal to fetched in one
	// transaction.
	ReconcileCountryCurrencies(ctx context.Context, fetched []models.CountryCurrency) (models.ReconcileResult, error)
}
