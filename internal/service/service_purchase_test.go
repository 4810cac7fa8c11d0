package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/internal/mock"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPurchaseService(t *testing.T) (PurchaseService, *mock.MockPurchaseRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPurchaseRepository(ctrl)

	svc := NewPurchaseValidationService().Wrap(NewPurchaseService(repo, logger.Nop()))
	return svc, repo
}

func validInput() models.PurchaseInput {
	return models.PurchaseInput{
		Description:        "Coffee beans",
		PurchaseAmount:     decimal.RequireFromString("12.345"),
		TransactionDateUTC: time.Date(2025, 3, 14, 9, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
	}
}

// ── CreatePurchase ───────────────────────────────────────────────────────────

func TestPurchaseService_CreatePurchase_AssignsIdentifierAndRounds(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().CreatePurchase(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Purchase) (models.Purchase, error) {
			assert.Zero(t, p.ID)
			assert.True(t, utils.IsUUID(p.TransactionIdentifier), "identifier %q", p.TransactionIdentifier)
			assert.Equal(t, "12.35", p.PurchaseAmount.StringFixed(2))
			assert.Equal(t, time.UTC, p.TransactionDatetimeUTC.Location())
			assert.Equal(t, 6, p.TransactionDatetimeUTC.Hour())
			p.ID = 7
			return p, nil
		},
	)

	created, err := svc.CreatePurchase(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestPurchaseService_CreatePurchase_IdentifiersDiffer(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	var identifiers []string
	repo.EXPECT().CreatePurchase(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Purchase) (models.Purchase, error) {
			identifiers = append(identifiers, p.TransactionIdentifier)
			return p, nil
		},
	).Times(2)

	_, err := svc.CreatePurchase(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.CreatePurchase(ctx, validInput())
	require.NoError(t, err)

	require.Len(t, identifiers, 2)
	assert.NotEqual(t, identifiers[0], identifiers[1])
}

func TestPurchaseService_CreatePurchase_InvalidInput_RepositoryNotCalled(t *testing.T) {
	svc, _ := newTestPurchaseService(t)

	input := models.PurchaseInput{
		Description:    "",
		PurchaseAmount: decimal.Zero,
	}

	_, err := svc.CreatePurchase(context.Background(), input)

	require.Error(t, err)
	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, validators.MsgDescriptionRequired, vErr.Fields[validators.FieldDescription])
	assert.Equal(t, validators.MsgAmountNotPositive, vErr.Fields[validators.FieldPurchaseAmount])
	assert.Equal(t, validators.MsgDateRequired, vErr.Fields[validators.FieldTransactionDate])
}

func TestPurchaseService_CreatePurchase_RepositoryError(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().CreatePurchase(ctx, gomock.Any()).Return(models.Purchase{}, store.ErrExecutingQuery)

	_, err := svc.CreatePurchase(ctx, validInput())
	assert.True(t, errors.Is(err, store.ErrExecutingQuery))
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestPurchaseService_GetPurchaseByID(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	want := models.Purchase{ID: 3, Description: "Lunch"}
	repo.EXPECT().GetPurchaseByID(ctx, int64(3)).Return(want, nil)

	got, err := svc.GetPurchaseByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPurchaseService_GetPurchaseByID_NotFound(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().GetPurchaseByID(ctx, int64(404)).Return(models.Purchase{}, store.ErrPurchaseNotFound)

	_, err := svc.GetPurchaseByID(ctx, 404)
	assert.True(t, errors.Is(err, store.ErrPurchaseNotFound))
}

func TestPurchaseService_GetPurchaseByID_NonPositiveID(t *testing.T) {
	svc, _ := newTestPurchaseService(t)

	for _, id := range []int64{0, -1} {
		_, err := svc.GetPurchaseByID(context.Background(), id)
		assert.True(t, errors.Is(err, ErrInvalidPurchaseID), "id %d", id)
	}
}

func TestPurchaseService_GetPurchaseByTransactionIdentifier(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	const identifier = "0195a1b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b"
	repo.EXPECT().GetPurchaseByTransactionIdentifier(ctx, identifier).Return(models.Purchase{ID: 1, TransactionIdentifier: identifier}, nil)

	got, err := svc.GetPurchaseByTransactionIdentifier(ctx, identifier)
	require.NoError(t, err)
	assert.Equal(t, identifier, got.TransactionIdentifier)
}

func TestPurchaseService_GetPurchaseByTransactionIdentifier_NotUUID(t *testing.T) {
	svc, _ := newTestPurchaseService(t)

	_, err := svc.GetPurchaseByTransactionIdentifier(context.Background(), "abc")
	assert.True(t, errors.Is(err, ErrInvalidPurchaseID))
}

// ── GetPurchases ─────────────────────────────────────────────────────────────

func TestPurchaseService_GetPurchases(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	filter := models.NewPurchaseFilter()
	filter.Description = "coffee"
	page := models.PagedResult[models.Purchase]{Items: []models.Purchase{{ID: 1}}, Count: 11}
	repo.EXPECT().GetPurchases(ctx, filter).Return(page, nil)

	got, err := svc.GetPurchases(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestPurchaseService_GetPurchases_InvalidFilter(t *testing.T) {
	svc, _ := newTestPurchaseService(t)

	minAmount := decimal.NewFromInt(10)
	maxAmount := decimal.NewFromInt(5)
	filter := models.PurchaseFilter{Start: -1, PageSize: 101, MinAmount: &minAmount, MaxAmount: &maxAmount}

	_, err := svc.GetPurchases(context.Background(), filter)

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 3)
}

// ── UpdatePurchase ───────────────────────────────────────────────────────────

func TestPurchaseService_UpdatePurchase(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().UpdatePurchase(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Purchase) (models.Purchase, error) {
			assert.Equal(t, int64(5), p.ID)
			assert.Empty(t, p.TransactionIdentifier, "identifier is never changed by an update")
			p.TransactionIdentifier = "kept"
			return p, nil
		},
	)

	updated, err := svc.UpdatePurchase(ctx, 5, validInput())
	require.NoError(t, err)
	assert.Equal(t, "kept", updated.TransactionIdentifier)
	assert.Equal(t, "Coffee beans", updated.Description)
}

func TestPurchaseService_UpdatePurchase_NotFound(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().UpdatePurchase(ctx, gomock.Any()).Return(models.Purchase{}, store.ErrPurchaseNotFound)

	_, err := svc.UpdatePurchase(ctx, 5, validInput())
	assert.True(t, errors.Is(err, store.ErrPurchaseNotFound))
}

func TestPurchaseService_UpdatePurchase_TooLongDescription(t *testing.T) {
	svc, _ := newTestPurchaseService(t)

	input := validInput()
	input.Description = "0123456789012345678901234567890123456789012345678901"

	_, err := svc.UpdatePurchase(context.Background(), 5, input)
	assert.True(t, errors.Is(err, validators.ErrValidation))
}

// ── DeletePurchase ───────────────────────────────────────────────────────────

func TestPurchaseService_DeletePurchase(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().DeletePurchase(ctx, int64(9)).Return(nil)

	require.NoError(t, svc.DeletePurchase(ctx, 9))
}

func TestPurchaseService_DeletePurchase_NotFound(t *testing.T) {
	svc, repo := newTestPurchaseService(t)
	ctx := context.Background()

	repo.EXPECT().DeletePurchase(ctx, int64(9)).Return(store.ErrPurchaseNotFound)

	err := svc.DeletePurchase(ctx, 9)
	assert.True(t, errors.Is(err, store.ErrPurchaseNotFound))
}
