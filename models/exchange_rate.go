// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by the treasury API and the
// exchange rate endpoint.
const DateLayout = time.DateOnly

// Date is a calendar date serialised as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD" or a full RFC 3339 timestamp.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date{t}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}

	return NewDate(t), nil
}

// String returns the "YYYY-MM-DD" form of the date.
func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// ExchangeRate is one treasury record: the number of foreign currency units
// per US dollar valid from RecordDate.
type ExchangeRate struct {
	Country  string `json:"country"`
	Currency string `json:"currency"`

	// ExchangeRate arrives as a JSON string from the treasury API.
	ExchangeRate decimal.Decimal `json:"exchange_rate"`

	RecordDate    Date `json:"record_date"`
	EffectiveDate Date `json:"effective_date"`
}

// Convert returns amount expressed in the record's currency, rounded to
// two decimal places.
func (r ExchangeRate) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.ExchangeRate).Round(PurchaseAmountScale)
}
