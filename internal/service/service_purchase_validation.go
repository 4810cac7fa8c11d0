package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

// PurchaseValidationService rejects malformed input before it reaches the
// wrapped PurchaseService.
type PurchaseValidationService struct {
	inner     PurchaseService
	validator validators.Validator
}

func NewPurchaseValidationService() PurchaseServiceWrapper {
	return &PurchaseValidationService{
		validator: validators.NewPurchaseValidator(),
	}
}

func (v *PurchaseValidationService) GetPurchaseByID(ctx context.Context, id int64) (models.Purchase, error) {
	if id <= 0 {
		return models.Purchase{}, fmt.Errorf("%w: %d", ErrInvalidPurchaseID, id)
	}

	return v.inner.GetPurchaseByID(ctx, id)
}

func (v *PurchaseValidationService) GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error) {
	if !utils.IsUUID(transactionIdentifier) {
		return models.Purchase{}, fmt.Errorf("%w: %q is not a transaction identifier", ErrInvalidPurchaseID, transactionIdentifier)
	}

	return v.inner.GetPurchaseByTransactionIdentifier(ctx, transactionIdentifier)
}

func (v *PurchaseValidationService) GetPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return models.PagedResult[models.Purchase]{}, fmt.Errorf("error during purchase filter validation: %w", err)
	}

	return v.inner.GetPurchases(ctx, filter)
}

func (v *PurchaseValidationService) CreatePurchase(ctx context.Context, input models.PurchaseInput) (models.Purchase, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Purchase{}, fmt.Errorf("error during purchase validation before saving: %w", err)
	}

	return v.inner.CreatePurchase(ctx, input)
}

func (v *PurchaseValidationService) UpdatePurchase(ctx context.Context, id int64, input models.PurchaseInput) (models.Purchase, error) {
	if id <= 0 {
		return models.Purchase{}, fmt.Errorf("%w: %d", ErrInvalidPurchaseID, id)
	}
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Purchase{}, fmt.Errorf("error during purchase validation before updating: %w", err)
	}

	return v.inner.UpdatePurchase(ctx, id, input)
}

func (v *PurchaseValidationService) DeletePurchase(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPurchaseID, id)
	}

	return v.inner.DeletePurchase(ctx, id)
}

func (v *PurchaseValidationService) Wrap(wrapper PurchaseService) PurchaseService {
	v.inner = wrapper
	return v
}
