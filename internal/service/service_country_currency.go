package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type countryCurrencyService struct {
	repository store.CountryCurrencyRepository

	logger *logger.Logger
}

func NewCountryCurrencyService(repository store.CountryCurrencyRepository, logger *logger.Logger) CountryCurrencyService {
	return &countryCurrencyService{repository: repository, logger: logger}
}

// GetAllCountryCurrencies returns the stored pairs ordered by country and
// currency. An empty list is returned before the first sync completes.
func (s *countryCurrencyService) GetAllCountryCurrencies(ctx context.Context) ([]models.CountryCurrency, error) {
	pairs, err := s.repository.GetAllCountryCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting country currencies: %w", err)
	}

	if pairs == nil {
		pairs = []models.CountryCurrency{}
	}

	return pairs, nil
}
