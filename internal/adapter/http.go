package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a JSON request, attaching the bearer token when one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		ForceContentType("application/json")

	if token := h.Token(); token != "" {
		req.SetAuthScheme(models.TokenType).SetAuthToken(token)
	}

	return req
}

// Login implements [ServerAdapter]. It POSTs the credentials to /api/auth
// and stores the issued token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		ForceContentType("application/json").
		SetBody(credentials).
		SetResult(&loginResponse).
		Post("/api/auth")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loginResponse.Token)
	return loginResponse, nil
}

// Refresh implements [ServerAdapter]. It PUTs to /api/auth with the current
// token and stores the renewed one.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := h.request(ctx).
		SetResult(&loginResponse).
		Put("/api/auth")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loginResponse.Token)
	return loginResponse, nil
}

// ListPurchases implements [ServerAdapter].
func (h *httpServerAdapter) ListPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error) {
	var page models.PagedResult[models.Purchase]

	resp, err := h.request(ctx).
		SetQueryParamsFromValues(purchaseFilterQuery(filter)).
		SetResult(&page).
		Get("/api/purchases")
	if err != nil {
		return models.PagedResult[models.Purchase]{}, fmt.Errorf("list purchases request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PagedResult[models.Purchase]{}, err
	}

	return page, nil
}

// GetPurchase implements [ServerAdapter].
func (h *httpServerAdapter) GetPurchase(ctx context.Context, id int64) (models.Purchase, error) {
	return h.getPurchase(ctx, strconv.FormatInt(id, 10))
}

// GetPurchaseByTransactionIdentifier implements [ServerAdapter].
func (h *httpServerAdapter) GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error) {
	return h.getPurchase(ctx, transactionIdentifier)
}

func (h *httpServerAdapter) getPurchase(ctx context.Context, key string) (models.Purchase, error) {
	var purchase models.Purchase

	resp, err := h.request(ctx).
		SetPathParam("key", key).
		SetResult(&purchase).
		Get("/api/purchases/{key}")
	if err != nil {
		return models.Purchase{}, fmt.Errorf("get purchase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Purchase{}, err
	}

	return purchase, nil
}

// CreatePurchase implements [ServerAdapter].
func (h *httpServerAdapter) CreatePurchase(ctx context.Context, input models.PurchaseInput) (models.CreatedResponse, error) {
	var created models.CreatedResponse

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&created).
		Post("/api/purchases")
	if err != nil {
		return models.CreatedResponse{}, fmt.Errorf("create purchase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedResponse{}, err
	}

	return created, nil
}

// UpdatePurchase implements [ServerAdapter].
func (h *httpServerAdapter) UpdatePurchase(ctx context.Context, id int64, input models.PurchaseInput) (models.Purchase, error) {
	var purchase models.Purchase

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(input).
		SetResult(&purchase).
		Put("/api/purchases/{id}")
	if err != nil {
		return models.Purchase{}, fmt.Errorf("update purchase request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Purchase{}, err
	}

	return purchase, nil
}

// DeletePurchase implements [ServerAdapter].
func (h *httpServerAdapter) DeletePurchase(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/purchases/{id}")
	if err != nil {
		return fmt.Errorf("delete purchase request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetCountryCurrencies implements [ServerAdapter].
func (h *httpServerAdapter) GetCountryCurrencies(ctx context.Context) ([]models.CountryCurrency, error) {
	var pairs []models.CountryCurrency

	resp, err := h.request(ctx).
		SetResult(&pairs).
		Get("/api/country-currencies")
	if err != nil {
		return nil, fmt.Errorf("country currencies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return pairs, nil
}

// GetExchangeRate implements [ServerAdapter].
func (h *httpServerAdapter) GetExchangeRate(ctx context.Context, country, currency string, date models.Date) (models.ExchangeRate, error) {
	var rate models.ExchangeRate

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{
			"country":  country,
			"currency": currency,
			"date":     date.String(),
		}).
		SetResult(&rate).
		Get("/api/country-currencies/{country}/{currency}/{date}")
	if err != nil {
		return models.ExchangeRate{}, fmt.Errorf("exchange rate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExchangeRate{}, err
	}

	return rate, nil
}

// GetSyncStatus implements [ServerAdapter].
func (h *httpServerAdapter) GetSyncStatus(ctx context.Context) (models.SyncStatus, error) {
	var status models.SyncStatus

	resp, err := h.request(ctx).
		SetResult(&status).
		Get("/api/sync/status")
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("sync status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncStatus{}, err
	}

	return status, nil
}

// GetVersion implements [ServerAdapter].
func (h *httpServerAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.request(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// purchaseFilterQuery encodes the set fields of filter as query parameters.
func purchaseFilterQuery(filter models.PurchaseFilter) url.Values {
	values := url.Values{}
	values.Set("start", strconv.Itoa(filter.Start))
	values.Set("pageSize", strconv.Itoa(filter.PageSize))

	if filter.Description != "" {
		values.Set("description", filter.Description)
	}
	if filter.TransactionStartDate != nil {
		values.Set("transactionStartDate", filter.TransactionStartDate.UTC().Format(time.RFC3339))
	}
	if filter.TransactionEndDate != nil {
		values.Set("transactionEndDate", filter.TransactionEndDate.UTC().Format(time.RFC3339))
	}
	if filter.MinAmount != nil {
		values.Set("minAmount", filter.MinAmount.String())
	}
	if filter.MaxAmount != nil {
		values.Set("maxAmount", filter.MaxAmount.String())
	}

	return values
}
