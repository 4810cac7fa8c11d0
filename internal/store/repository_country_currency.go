package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-purchase-tracker/internal/logger"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

type countryCurrencyRepository struct {
	*DB
}

// NewCountryCurrencyRepository returns a [CountryCurrencyRepository] backed by db.
func NewCountryCurrencyRepository(db *DB) CountryCurrencyRepository {
	return &countryCurrencyRepository{DB: db}
}

// GetAllCountryCurrencies returns every stored pair ordered by country.
func (c *countryCurrencyRepository) GetAllCountryCurrencies(ctx context.Context) ([]models.CountryCurrency, error) {
	log := logger.FromContext(ctx)

	pairs, err := c.selectAll(ctx, c.DB.DB)
	if err != nil {
		log.Err(err).Str("func", "countryCurrencyRepository.GetAllCountryCurrencies").Msg("error selecting country currencies")
		return nil, err
	}

	return pairs, nil
}

func (c *countryCurrencyRepository) ReconcileCountryCurrencies(ctx context.Context, fetched []models.CountryCurrency) (models.ReconcileResult, error) {
	log := logger.FromContext(ctx)

	result := models.ReconcileResult{Fetched: UniqueCountryCurrencies(fetched)}

	err := c.withTx(ctx, func(tx *sql.Tx) error {
		stored, err := c.selectAll(ctx, tx)
		if err != nil {
			return err
		}

		plan := BuildReconcilePlan(stored, fetched)
		if plan.IsEmpty() {
			return nil
		}

		if len(plan.Delete) > 0 {
			ids := make([]int64, 0, len(plan.Delete))
			for _, pair := range plan.Delete {
				ids = append(ids, pair.ID)
			}

			query, args, err := buildDeleteCountryCurrenciesQuery(ids)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return c.wrapError(ErrExecutingStatement, err)
			}
			deleted, err := res.RowsAffected()
			if err != nil {
				return c.wrapError(ErrExecutingStatement, err)
			}
			result.Deleted = int(deleted)
		}

		for start := 0; start < len(plan.Insert); start += countryCurrencyInsertBatch {
			end := min(start+countryCurrencyInsertBatch, len(plan.Insert))

			query, args, err := buildInsertCountryCurrenciesQuery(plan.Insert[start:end])
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return c.wrapError(ErrExecutingStatement, err)
			}
			inserted, err := res.RowsAffected()
			if err != nil {
				return c.wrapError(ErrExecutingStatement, err)
			}
			result.Inserted += int(inserted)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "countryCurrencyRepository.ReconcileCountryCurrencies").Msg("error reconciling country currencies")
		return models.ReconcileResult{}, err
	}

	log.Info().Str("func", "countryCurrencyRepository.ReconcileCountryCurrencies").
		Int("fetched", result.Fetched).
		Int("inserted", result.Inserted).
		Int("deleted", result.Deleted).
		Msg("country currencies reconciled")

	return result, nil
}

func (c *countryCurrencyRepository) selectAll(ctx context.Context, q queryer) ([]models.CountryCurrency, error) {
	query, args, err := buildSelectAllCountryCurrenciesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, c.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	pairs := make([]models.CountryCurrency, 0)
	for rows.Next() {
		var pair models.CountryCurrency
		if err := rows.Scan(&pair.ID, &pair.Country, &pair.Currency); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, c.wrapError(ErrScanningRows, err)
	}

	return pairs, nil
}
