package adapter

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-purchase-tracker/internal/config"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

const exchangeRateSort = "-record_calendar_year,-record_calendar_month,-record_calendar_day"

type treasuryAdapter struct {
	fetcher Fetcher
	baseURL string
}

// NewTreasuryAdapter returns a [TreasuryAdapter] reading the rates of
// exchange dataset at cfg.TreasuryBaseURL through fetcher.
func NewTreasuryAdapter(cfg config.Adapter, fetcher Fetcher) TreasuryAdapter {
	return &treasuryAdapter{
		fetcher: fetcher,
		baseURL: strings.TrimRight(cfg.TreasuryBaseURL, "/?"),
	}
}

// CountryCurrenciesPage implements [TreasuryAdapter].
func (t *treasuryAdapter) CountryCurrenciesPage(ctx context.Context, page, size int) (models.TreasuryPage[models.CountryCurrency], bool, error) {
	var result models.TreasuryPage[models.CountryCurrency]

	found, err := t.fetcher.Get(ctx, t.countryCurrenciesURL(page, size), &result)
	if err != nil || !found {
		return models.TreasuryPage[models.CountryCurrency]{}, false, err
	}

	return result, true, nil
}

// ExchangeRate implements [TreasuryAdapter].
func (t *treasuryAdapter) ExchangeRate(ctx context.Context, country, currency string, date models.Date) (models.ExchangeRate, bool, error) {
	var result models.TreasuryPage[models.ExchangeRate]

	found, err := t.fetcher.Get(ctx, t.exchangeRateURL(country, currency, date), &result)
	if err != nil {
		return models.ExchangeRate{}, false, err
	}
	if !found || len(result.Data) == 0 {
		return models.ExchangeRate{}, false, nil
	}

	return result.Data[0], true, nil
}

func (t *treasuryAdapter) countryCurrenciesURL(page, size int) string {
	return t.baseURL + "?fields=country,currency" +
		"&page[number]=" + strconv.Itoa(page) +
		"&page[size]=" + strconv.Itoa(size)
}

func (t *treasuryAdapter) exchangeRateURL(country, currency string, date models.Date) string {
	return t.baseURL + "?filter=record_date:lte:" + date.String() +
		",country:eq:" + escapeDataString(country) +
		",currency:eq:" + escapeDataString(currency) +
		"&sort=" + exchangeRateSort +
		"&page[size]=1"
}

// escapeDataString percent-encodes s as a URI data string, spaces as %20.
func escapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
