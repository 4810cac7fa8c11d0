package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-purchase-tracker/models"
)

const (
	purchasesTable         = "purchases"
	countryCurrenciesTable = "country_currencies"

	// countryCurrencyInsertBatch bounds the number of rows per INSERT so the
	// statement stays below the PostgreSQL parameter limit.
	countryCurrencyInsertBatch = 500
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	purchaseColumns = []string{
		"id",
		"description",
		"transaction_datetime_utc",
		"purchase_amount",
		"transaction_identifier",
	}

	countryCurrencyColumns = []string{"id", "country", "currency"}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

func buildSelectPurchaseByIDQuery(id int64) (string, []any, error) {
	return psql.Select(purchaseColumns...).
		From(purchasesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectPurchaseByTransactionIdentifierQuery(transactionIdentifier string) (string, []any, error) {
	return psql.Select(purchaseColumns...).
		From(purchasesTable).
		Where(sq.Eq{"transaction_identifier": transactionIdentifier}).
		ToSql()
}

// purchaseFilterConditions translates the optional filter fields into WHERE
// conditions. An empty result means no filtering.
func purchaseFilterConditions(filter models.PurchaseFilter) sq.And {
	conditions := sq.And{}

	if description := strings.TrimSpace(filter.Description); description != "" {
		conditions = append(conditions, sq.ILike{"description": "%" + likeEscaper.Replace(description) + "%"})
	}
	if filter.TransactionStartDate != nil {
		conditions = append(conditions, sq.GtOrEq{"transaction_datetime_utc": filter.TransactionStartDate.UTC()})
	}
	if filter.TransactionEndDate != nil {
		conditions = append(conditions, sq.LtOrEq{"transaction_datetime_utc": filter.TransactionEndDate.UTC()})
	}
	if filter.MinAmount != nil {
		conditions = append(conditions, sq.GtOrEq{"purchase_amount": *filter.MinAmount})
	}
	if filter.MaxAmount != nil {
		conditions = append(conditions, sq.LtOrEq{"purchase_amount": *filter.MaxAmount})
	}

	return conditions
}

// buildSelectPurchasesPageQuery returns one page of purchases, newest
// transaction first.
func buildSelectPurchasesPageQuery(filter models.PurchaseFilter) (string, []any, error) {
	query := psql.Select(purchaseColumns...).
		From(purchasesTable).
		OrderBy("transaction_datetime_utc DESC", "id DESC").
		Offset(uint64(max(filter.Start, 0))).
		Limit(uint64(max(filter.PageSize, 0)))

	if conditions := purchaseFilterConditions(filter); len(conditions) > 0 {
		query = query.Where(conditions)
	}

	return query.ToSql()
}

// buildCountPurchasesQuery counts every purchase matching filter, ignoring
// paging.
func buildCountPurchasesQuery(filter models.PurchaseFilter) (string, []any, error) {
	query := psql.Select("COUNT(*)").From(purchasesTable)

	if conditions := purchaseFilterConditions(filter); len(conditions) > 0 {
		query = query.Where(conditions)
	}

	return query.ToSql()
}

func buildInsertPurchaseQuery(purchase models.Purchase) (string, []any, error) {
	return psql.Insert(purchasesTable).
		Columns("description", "transaction_datetime_utc", "purchase_amount", "transaction_identifier").
		Values(purchase.Description, purchase.TransactionDatetimeUTC.UTC(), purchase.PurchaseAmount, purchase.TransactionIdentifier).
		Suffix("RETURNING " + strings.Join(purchaseColumns, ", ")).
		ToSql()
}

// buildUpdatePurchaseQuery overwrites the mutable fields of the purchase with
// the given ID. The transaction identifier never changes.
func buildUpdatePurchaseQuery(purchase models.Purchase) (string, []any, error) {
	return psql.Update(purchasesTable).
		Set("description", purchase.Description).
		Set("transaction_datetime_utc", purchase.TransactionDatetimeUTC.UTC()).
		Set("purchase_amount", purchase.PurchaseAmount).
		Where(sq.Eq{"id": purchase.ID}).
		Suffix("RETURNING " + strings.Join(purchaseColumns, ", ")).
		ToSql()
}

func buildDeletePurchaseQuery(id int64) (string, []any, error) {
	return psql.Delete(purchasesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAllCountryCurrenciesQuery() (string, []any, error) {
	return psql.Select(countryCurrencyColumns...).
		From(countryCurrenciesTable).
		OrderBy("country", "currency").
		ToSql()
}

// buildInsertCountryCurrenciesQuery inserts pairs in a single statement.
// Pairs that already exist are skipped.
func buildInsertCountryCurrenciesQuery(pairs []models.CountryCurrency) (string, []any, error) {
	query := psql.Insert(countryCurrenciesTable).Columns("country", "currency")
	for _, pair := range pairs {
		query = query.Values(pair.Country, pair.Currency)
	}

	return query.Suffix("ON CONFLICT (country, currency) DO NOTHING").ToSql()
}

func buildDeleteCountryCurrenciesQuery(ids []int64) (string, []any, error) {
	return psql.Delete(countryCurrenciesTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
