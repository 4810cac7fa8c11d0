// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectPurchasesPageQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	minAmount := decimal.RequireFromString("1.00")
	maxAmount := decimal.RequireFromString("99.99")

	tests := []struct {
		name         string
		filter       models.PurchaseFilter
		wantContains []string
		wantMissing  []string
		wantArgs     int
	}{
		{
			name:         "no filters",
			filter:       models.NewPurchaseFilter(),
			wantContains: []string{"from purchases", "order by transaction_datetime_utc desc, id desc", "limit 10", "offset 0"},
			wantMissing:  []string{"where"},
			wantArgs:     0,
		},
		{
			name: "every filter",
			filter: models.PurchaseFilter{
				Description:          "coffee",
				TransactionStartDate: &start,
				TransactionEndDate:   &end,
				MinAmount:            &minAmount,
				MaxAmount:            &maxAmount,
				Start:                20,
				PageSize:             5,
			},
			wantContains: []string{
				"description ilike $1",
				"transaction_datetime_utc >= $2",
				"transaction_datetime_utc <= $3",
				"purchase_amount >= $4",
				"purchase_amount <= $5",
				"limit 5",
				"offset 20",
			},
			wantArgs: 5,
		},
		{
			name:         "blank description is ignored",
			filter:       models.PurchaseFilter{Description: "   ", PageSize: 1},
			wantMissing:  []string{"where", "ilike"},
			wantContains: []string{"limit 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectPurchasesPageQuery(tt.filter)
			require.NoError(t, err)
			q := strings.ToLower(query)

			for _, part := range tt.wantContains {
				assert.Contains(t, q, part)
			}
			for _, part := range tt.wantMissing {
				assert.NotContains(t, q, part)
			}
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func Test_buildCountPurchasesQuery_IgnoresPaging(t *testing.T) {
	filter := models.PurchaseFilter{Description: "tea", Start: 40, PageSize: 20}

	query, args, err := buildCountPurchasesQuery(filter)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select count(*) from purchases")
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset")
	assert.Equal(t, []any{"%tea%"}, args)
}

func Test_purchaseFilterConditions_EscapesLikeWildcards(t *testing.T) {
	query, args, err := buildCountPurchasesQuery(models.PurchaseFilter{Description: `50%_off\`})
	require.NoError(t, err)
	require.Contains(t, query, "$1")
	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func Test_buildInsertPurchaseQuery(t *testing.T) {
	purchase := models.Purchase{
		Description:            "coffee",
		TransactionDatetimeUTC: time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)),
		PurchaseAmount:         decimal.RequireFromString("3.50"),
		TransactionIdentifier:  "id",
	}

	query, args, err := buildInsertPurchaseQuery(purchase)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into purchases")
	assert.Contains(t, q, "returning id, description")
	require.Len(t, args, 4)
	assert.Equal(t, time.UTC, args[1].(time.Time).Location())
}

func Test_buildDeleteCountryCurrenciesQuery(t *testing.T) {
	query, args, err := buildDeleteCountryCurrenciesQuery([]int64{4, 5, 6})
	require.NoError(t, err)

	// squirrel generates IN ($1,$2,$3) for a slice.
	assert.Equal(t, "DELETE FROM country_currencies WHERE id IN ($1,$2,$3)", query)
	assert.Equal(t, []any{int64(4), int64(5), int64(6)}, args)
}
