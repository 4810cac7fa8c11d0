// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP integrations: the treasury
// rates of exchange dataset used by the server, and the purchase API used by
// the terminal client.
//
// [Fetcher] performs a single GET and reports one of a fixed set of
// outcomes: decoded data, "no data" (404 or an empty body), or one of the
// sentinel errors in errors.go. Transient transport failures are retried
// before the caller sees a terminal outcome.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Fetcher performs a GET of url and decodes a JSON body into dst.
//
// found is false, with a nil error, when the server answered 404 or sent an
// empty 2xx body. Errors match one of [ErrUnauthorized], [ErrRequestFailed],
// [ErrMalformedResponse], [ErrCancelled] or [ErrTimeout].
type Fetcher interface {
	Get(ctx context.Context, url string, dst any) (found bool, err error)
}

// TreasuryAdapter reads the treasury rates of exchange dataset.
type TreasuryAdapter interface {
	// CountryCurrenciesPage returns one page of (country, currency) pairs.
	// found is false when the page has no data.
	CountryCurrenciesPage(ctx context.Context, page, size int) (models.TreasuryPage[models.CountryCurrency], bool, error)

	// ExchangeRate returns the most recent rate recorded on or before date.
	// found is false when no such record exists.
	ExchangeRate(ctx context.Context, country, currency string, date models.Date) (models.ExchangeRate, bool, error)
}

// ServerAdapter is the client side of the purchase API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)
	// Refresh renews the stored token.
	Refresh(ctx context.Context) (models.LoginResponse, error)

	ListPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error)
	GetPurchase(ctx context.Context, id int64) (models.Purchase, error)
	GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error)
	CreatePurchase(ctx context.Context, input models.PurchaseInput) (models.CreatedResponse, error)
	UpdatePurchase(ctx context.Context, id int64, input models.PurchaseInput) (models.Purchase, error)
	DeletePurchase(ctx context.Context, id int64) error

	GetCountryCurrencies(ctx context.Context) ([]models.CountryCurrency, error)
	GetExchangeRate(ctx context.Context, country, currency string, date models.Date) (models.ExchangeRate, error)

	GetSyncStatus(ctx context.Context) (models.SyncStatus, error)
	GetVersion(ctx context.Context) (models.VersionResponse, error)
}
