package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type purchaseRepository struct {
	*DB
}

// NewPurchaseRepository returns a [PurchaseRepository] backed by db.
func NewPurchaseRepository(db *DB) PurchaseRepository {
	return &purchaseRepository{DB: db}
}

func (p *purchaseRepository) GetPurchaseByID(ctx context.Context, id int64) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPurchaseByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchaseByID").Msg("error building query")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	purchase, err := scanPurchase(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Purchase{}, ErrPurchaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchaseByID").Int64("id", id).Msg("error selecting purchase")
		return models.Purchase{}, p.wrapError(ErrScanningRow, err)
	}

	return purchase, nil
}

func (p *purchaseRepository) GetPurchaseByTransactionIdentifier(ctx context.Context, transactionIdentifier string) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPurchaseByTransactionIdentifierQuery(transactionIdentifier)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchaseByTransactionIdentifier").Msg("error building query")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	purchase, err := scanPurchase(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Purchase{}, ErrPurchaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchaseByTransactionIdentifier").
			Str("transaction_identifier", transactionIdentifier).Msg("error selecting purchase")
		return models.Purchase{}, p.wrapError(ErrScanningRow, err)
	}

	return purchase, nil
}

// GetPurchases returns the requested page and the total number of matches.
// Both reads happen in one read-only transaction so the count agrees with
// the page.
func (p *purchaseRepository) GetPurchases(ctx context.Context, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error) {
	log := logger.FromContext(ctx)

	pageQuery, pageArgs, err := buildSelectPurchasesPageQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchases").Msg("error building page query")
		return models.PagedResult[models.Purchase]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountPurchasesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchases").Msg("error building count query")
		return models.PagedResult[models.Purchase]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result := models.PagedResult[models.Purchase]{Items: []models.Purchase{}}
	err = p.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&result.Count); err != nil {
			return p.wrapError(ErrScanningRow, err)
		}

		rows, err := tx.QueryContext(ctx, pageQuery, pageArgs...)
		if err != nil {
			return p.wrapError(ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			purchase, err := scanPurchase(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			result.Items = append(result.Items, purchase)
		}
		if err := rows.Err(); err != nil {
			return p.wrapError(ErrScanningRows, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.GetPurchases").Msg("error selecting purchases page")
		return models.PagedResult[models.Purchase]{}, err
	}

	return result, nil
}

func (p *purchaseRepository) CreatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPurchaseQuery(purchase)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.CreatePurchase").Msg("error building query")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPurchase(p.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.CreatePurchase").Msg("error inserting purchase")
		if isUniqueViolation(err) {
			return models.Purchase{}, ErrTransactionIdentifierExists
		}
		return models.Purchase{}, p.wrapError(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "purchaseRepository.CreatePurchase").Int64("id", created.ID).Msg("purchase created")
	return created, nil
}

// UpdatePurchase replaces description, date and amount of the stored purchase
// with purchase.ID and returns the stored result.
func (p *purchaseRepository) UpdatePurchase(ctx context.Context, purchase models.Purchase) (models.Purchase, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePurchaseQuery(purchase)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.UpdatePurchase").Msg("error building query")
		return models.Purchase{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPurchase(p.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Purchase{}, ErrPurchaseNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.UpdatePurchase").Int64("id", purchase.ID).Msg("error updating purchase")
		return models.Purchase{}, p.wrapError(ErrExecutingStatement, err)
	}

	return updated, nil
}

func (p *purchaseRepository) DeletePurchase(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePurchaseQuery(id)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.DeletePurchase").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "purchaseRepository.DeletePurchase").Int64("id", id).Msg("error deleting purchase")
		return p.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return p.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPurchaseNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPurchase(row rowScanner) (models.Purchase, error) {
	var purchase models.Purchase
	err := row.Scan(
		&purchase.ID,
		&purchase.Description,
		&purchase.TransactionDatetimeUTC,
		&purchase.PurchaseAmount,
		&purchase.TransactionIdentifier,
	)
	if err != nil {
		return models.Purchase{}, err
	}

	purchase.TransactionDatetimeUTC = purchase.TransactionDatetimeUTC.UTC()
	return purchase, nil
}
