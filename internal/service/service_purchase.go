package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type purchaseService struct {
	purchaseRepository store.PurchaseRepository
	idGenerator        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewPurchaseService returns a PurchaseService without input validation.
// Wrap it with NewPurchaseValidationService before exposing it.
func NewPurchaseService(purchaseRepository store.PurchaseRepository, logger *logger.Logger) PurchaseService {
	return &purchaseService{
		purchaseRepository: purchaseRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

func (p *purchaseService) GetPurchaseByID(ctx context.Context, id int64) (models.Purchase, error) {
	if id <= 0 {
		return models.Purchase{}, fmt.Errorf("%w: %d", ErrInvalidPurchaseID, id)
	}

	purchase, err := p.purchaseRepository.GetPurchaseByID(ctx, id)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("error getting purchase %d: %w", id, err)
	}

	return purchase, nil
}

func (p *purchaseService) GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error) {
	purchase, err := p.purchaseRepository.GetPurchaseByTransactionIdentifier(ctx, transactionIdentifier)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("error getting purchase %s: %w", transactionIdentifier, err)
	}

	return purchase, nil
}

func (p *purchaseService) GetPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error) {
	page, err := p.purchaseRepository.GetPurchases(ctx, filter)
	if err != nil {
		return models.PagedResult[models.Purchase]{}, fmt.Errorf("error getting purchases: %w", err)
	}

	return page, nil
}

// CreatePurchase stores a new purchase under a freshly generated transaction
// identifier. The amount is rounded to two decimal places.
func (p *purchaseService) CreatePurchase(ctx context.Context, input models.PurchaseInput) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	purchase := fromInput(input)
	purchase.TransactionIdentifier = p.idGenerator.Generate()

	created, err := p.purchaseRepository.CreatePurchase(ctx, purchase)
	if err != nil {
		log.Err(err).Str("func", "purchaseService.CreatePurchase").Msg("purchase creation failed")
		return models.Purchase{}, fmt.Errorf("error creating purchase: %w", err)
	}

	log.Info().
		Str("func", "purchaseService.CreatePurchase").
		Int64("id", created.ID).
		Str("transaction_identifier", created.TransactionIdentifier).
		Msg("purchase created")

	return created, nil
}

// UpdatePurchase replaces the mutable fields of purchase id. The transaction
// identifier is kept.
func (p *purchaseService) UpdatePurchase(ctx context.Context, id int64, input models.PurchaseInput) (models.Purchase, error) {
	if id <= 0 {
		return models.Purchase{}, fmt.Errorf("%w: %d", ErrInvalidPurchaseID, id)
	}

	purchase := fromInput(input)
	purchase.ID = id

	updated, err := p.purchaseRepository.UpdatePurchase(ctx, purchase)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("error updating purchase %d: %w", id, err)
	}

	return updated, nil
}

func (p *purchaseService) DeletePurchase(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPurchaseID, id)
	}

	if err := p.purchaseRepository.DeletePurchase(ctx, id); err != nil {
		return fmt.Errorf("error deleting purchase %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("func", "purchaseService.DeletePurchase").Int64("id", id).Msg("purchase deleted")

	return nil
}

func fromInput(input models.PurchaseInput) models.Purchase {
	return models.Purchase{
		Description:            input.Description,
		TransactionDatetimeUTC: input.TransactionDateUTC.UTC(),
		PurchaseAmount:         input.PurchaseAmount.Round(models.PurchaseAmountScale),
	}
}
