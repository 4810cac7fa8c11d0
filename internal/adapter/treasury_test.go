package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTreasury(t *testing.T, handler http.HandlerFunc) TreasuryAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Adapter{TreasuryBaseURL: srv.URL + "/rates_of_exchange", RequestTimeout: time.Second}
	return NewTreasuryAdapter(cfg, NewHTTPFetcher(cfg))
}

func TestTreasuryAdapter_CountryCurrenciesPage(t *testing.T) {
	var rawQuery, path string
	treasury := newTestTreasury(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{
			"data": [{"country":"Brazil","currency":"Real"},{"country":"Canada","currency":"Dollar"}],
			"meta": {"count": 2, "total-count": 202, "total-pages": 3}
		}`))
	})

	page, found, err := treasury.CountryCurrenciesPage(context.Background(), 2, 100)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "/rates_of_exchange", path)
	assert.Equal(t, "fields=country,currency&page[number]=2&page[size]=100", rawQuery)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, []models.CountryCurrency{
		{Country: "Brazil", Currency: "Real"},
		{Country: "Canada", Currency: "Dollar"},
	}, page.Data)
}

func TestTreasuryAdapter_CountryCurrenciesPage_NoData(t *testing.T) {
	treasury := newTestTreasury(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, found, err := treasury.CountryCurrenciesPage(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTreasuryAdapter_ExchangeRate(t *testing.T) {
	var rawQuery string
	treasury := newTestTreasury(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{
			"data": [{"country":"United Kingdom","currency":"Pound","exchange_rate":"0.791",
			          "record_date":"2023-12-31","effective_date":"2023-12-31"}],
			"meta": {"count": 1, "total-count": 40, "total-pages": 40}
		}`))
	})

	date := models.NewDate(time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC))
	rate, found, err := treasury.ExchangeRate(context.Background(), "United Kingdom", "Pound", date)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t,
		"filter=record_date:lte:2024-03-01,country:eq:United%20Kingdom,currency:eq:Pound"+
			"&sort=-record_calendar_year,-record_calendar_month,-record_calendar_day&page[size]=1",
		rawQuery)
	assert.True(t, decimal.RequireFromString("0.791").Equal(rate.ExchangeRate))
	assert.Equal(t, "2023-12-31", rate.RecordDate.String())
}

func TestTreasuryAdapter_ExchangeRate_EmptyData(t *testing.T) {
	treasury := newTestTreasury(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [], "meta": {"count": 0, "total-count": 0, "total-pages": 0}}`))
	})

	_, found, err := treasury.ExchangeRate(context.Background(), "Atlantis", "Shell", models.NewDate(time.Now()))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTreasuryAdapter_ExchangeRate_Malformed(t *testing.T) {
	treasury := newTestTreasury(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"exchange_rate": "not a number"}]}`))
	})

	_, _, err := treasury.ExchangeRate(context.Background(), "Brazil", "Real", models.NewDate(time.Now()))
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func Test_escapeDataString(t *testing.T) {
	assert.Equal(t, "United%20Kingdom", escapeDataString("United Kingdom"))
	assert.Equal(t, "Cote%20d%27Ivoire", escapeDataString("Cote d'Ivoire"))
	assert.Equal(t, "A%26B%2CC", escapeDataString("A&B,C"))
}
