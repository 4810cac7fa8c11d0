// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CountryCurrency is one (country, currency) pair of the reference list
// mirrored from the treasury rates of exchange dataset.
type CountryCurrency struct {
	// ID is the database-assigned identifier. Zero for records that were
	// fetched but not stored yet.
	ID int64 `json:"id,omitempty"`

	Country  string `json:"country"`
	Currency string `json:"currency"`
}

// TableName returns the name of the database table associated with the
// CountryCurrency model.
func (c CountryCurrency) TableName() string {
	return "country_currencies"
}

// CountryCurrencyKey identifies a pair independently of its database ID.
type CountryCurrencyKey struct {
	Country  string
	Currency string
}

// Key returns the natural key of the pair.
func (c CountryCurrency) Key() CountryCurrencyKey {
	return CountryCurrencyKey{Country: c.Country, Currency: c.Currency}
}

// ReconcilePlan lists the changes that turn the stored reference set into
// the fetched one.
type ReconcilePlan struct {
	// Insert holds fetched pairs that are not stored yet.
	Insert []CountryCurrency
	// Delete holds stored pairs that are absent from the fetched set.
	Delete []CountryCurrency
}

// IsEmpty reports whether the plan changes nothing.
func (p ReconcilePlan) IsEmpty() bool {
	return len(p.Insert) == 0 && len(p.Delete) == 0
}

// ReconcileResult summarises one applied reconciliation.
type ReconcileResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}
