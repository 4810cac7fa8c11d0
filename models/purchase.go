// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts and rates travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// PurchaseDescriptionMaxLength is the maximum number of characters in a description.
	PurchaseDescriptionMaxLength = 50
	// PurchaseAmountScale is the number of decimal places kept for amounts.
	PurchaseAmountScale = 2
	// DefaultPageSize is used when a filter does not specify a page size.
	DefaultPageSize = 10
	// MaxPageSize is the largest page a client may request.
	MaxPageSize = 100
)

// MinPurchaseAmount is the smallest accepted purchase amount.
var MinPurchaseAmount = decimal.New(1, -PurchaseAmountScale)

// Purchase is a single recorded purchase transaction.
type Purchase struct {
	// ID is the database-assigned identifier.
	ID int64 `json:"id"`

	// Description is a free-text label, at most 50 characters.
	Description string `json:"description"`

	// TransactionDatetimeUTC is the moment the purchase happened, in UTC.
	TransactionDatetimeUTC time.Time `json:"transactionDatetimeUtc"`

	// PurchaseAmount is the amount in US dollars with two decimal places.
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`

	// TransactionIdentifier is a UUID assigned by the server at creation
	// and never changed afterwards.
	TransactionIdentifier string `json:"transactionIdentifier"`
}

// TableName returns the name of the database table associated with the
// Purchase model.
func (p Purchase) TableName() string {
	return "purchases"
}

// PurchaseInput is the client-supplied body for creating or updating a purchase.
type PurchaseInput struct {
	Description        string          `json:"description"`
	PurchaseAmount     decimal.Decimal `json:"purchaseAmount"`
	TransactionDateUTC time.Time       `json:"transactionDateUtc"`
}

// PurchaseFilter holds the search criteria of a paged purchase query.
// Nil pointers mean "no constraint".
type PurchaseFilter struct {
	// Description matches purchases whose description contains the value.
	Description string `json:"description,omitempty"`

	TransactionStartDate *time.Time       `json:"transactionStartDate,omitempty"`
	TransactionEndDate   *time.Time       `json:"transactionEndDate,omitempty"`
	MinAmount            *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount            *decimal.Decimal `json:"maxAmount,omitempty"`

	// Start is the zero-based offset of the first returned item.
	Start int `json:"start"`

	// PageSize is the number of items per page, between 1 and 100.
	PageSize int `json:"pageSize"`
}

// NewPurchaseFilter returns a filter with the default paging window.
func NewPurchaseFilter() PurchaseFilter {
	return PurchaseFilter{Start: 0, PageSize: DefaultPageSize}
}

// PagedResult is one page of items plus the total number of matches.
type PagedResult[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}
