// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/adapter"
	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type exchangeRateService struct {
	treasury  adapter.TreasuryAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewExchangeRateService(treasury adapter.TreasuryAdapter, logger *logger.Logger) ExchangeRateService {
	return &exchangeRateService{
		treasury:  treasury,
		validator: validators.NewPurchaseValidator(),
		logger:    logger,
	}
}

// GetRate looks up the most recent treasury record for the pair dated on or
// before date.
//
// Returns ErrExchangeRateNotFound when the treasury has no such record,
// ErrUpstreamMalformed when its answer cannot be decoded and
// ErrUpstreamUnavailable for every other upstream failure. Cancellation by
// the caller is returned as is.
func (s *exchangeRateService) GetRate(ctx context.Context, country, currency string, date models.Date) (models.ExchangeRate, error) {
	log := logger.FromContext(ctx)

	query := validators.ExchangeRateQuery{Country: country, Currency: currency}
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.ExchangeRate{}, err
	}

	rate, found, err := s.treasury.ExchangeRate(ctx, country, currency, date)
	if err != nil {
		log.Err(err).
			Str("func", "exchangeRateService.GetRate").
			Str("country", country).
			Str("currency", currency).
			Stringer("date", date).
			Msg("exchange rate lookup failed")
		return models.ExchangeRate{}, classifyUpstreamError(err)
	}

	if !found {
		log.Warn().
			Str("func", "exchangeRateService.GetRate").
			Str("country", country).
			Str("currency", currency).
			Stringer("date", date).
			Msg("empty response from treasury")
		return models.ExchangeRate{}, fmt.Errorf("%w: %s %s on or before %s", ErrExchangeRateNotFound, country, currency, date)
	}

	return rate, nil
}

// classifyUpstreamError folds the adapter taxonomy into the two upstream
// errors the API reports.
func classifyUpstreamError(err error) error {
	switch {
	case errors.Is(err, adapter.ErrCancelled):
		return err
	case errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrUpstreamMalformed, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
}
