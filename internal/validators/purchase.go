package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-purchase-tracker/models"
)

// Field names reported in validation errors. They match the JSON names of
// the request bodies and query parameters.
const (
	FieldDescription          = "description"
	FieldPurchaseAmount       = "purchaseAmount"
	FieldTransactionDate      = "transactionDateUtc"
	FieldStart                = "start"
	FieldPageSize             = "pageSize"
	FieldTransactionDateRange = "transactionStartDate"
	FieldAmountRange          = "minAmount"
	FieldUsername             = "username"
	FieldPassword             = "password"
	FieldCountry              = "country"
	FieldCurrency             = "currency"
)

// Messages returned to API clients.
const (
	MsgDescriptionRequired = "Description is required"
	MsgDescriptionTooLong  = "Description must not exceed 50 characters"
	MsgAmountNotPositive   = "Purchase amount must be greater than zero"
	MsgDateRequired        = "Transaction Date is required"
	MsgStartNegative       = "Start must be greater than or equal to 0"
	MsgPageSizeOutOfRange  = "PageSize must be between 1 and 100"
	MsgDateRangeReversed   = "TransactionStartDate must be before or equal to TransactionEndDate"
	MsgAmountRangeReversed = "MinAmount must be less than or equal to MaxAmount"
	MsgUsernameRequired    = "Username is required"
	MsgPasswordRequired    = "Password is required"
	MsgCountryRequired     = "Country is required"
	MsgCurrencyRequired    = "Currency is required"
)

// ExchangeRateQuery is the input of an exchange rate lookup.
type ExchangeRateQuery struct {
	Country  string
	Currency string
}

// PurchaseValidator implements [Validator] for purchase bodies, purchase
// filters, login credentials and exchange rate lookups. Unlike a
// first-error validator it reports every invalid field at once.
type PurchaseValidator struct {
}

// NewPurchaseValidator constructs a new PurchaseValidator.
func NewPurchaseValidator() Validator {
	return &PurchaseValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. fields restricts the checks to the named subset.
func (v *PurchaseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PurchaseInput:
		return v.validatePurchaseInput(value, fields...)
	case *models.PurchaseInput:
		return v.validatePurchaseInput(*value, fields...)

	case models.PurchaseFilter:
		return v.validatePurchaseFilter(value, fields...)
	case *models.PurchaseFilter:
		return v.validatePurchaseFilter(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case ExchangeRateQuery:
		return v.validateExchangeRateQuery(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PurchaseValidator) validatePurchaseInput(input models.PurchaseInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldPurchaseAmount, FieldTransactionDate}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldDescription:
			switch {
			case strings.TrimSpace(input.Description) == "":
				errs.add(f, MsgDescriptionRequired)
			case utf8.RuneCountInString(input.Description) > models.PurchaseDescriptionMaxLength:
				errs.add(f, MsgDescriptionTooLong)
			}
		case FieldPurchaseAmount:
			if input.PurchaseAmount.LessThan(models.MinPurchaseAmount) {
				errs.add(f, MsgAmountNotPositive)
			}
		case FieldTransactionDate:
			if input.TransactionDateUTC.IsZero() {
				errs.add(f, MsgDateRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *PurchaseValidator) validatePurchaseFilter(filter models.PurchaseFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStart, FieldPageSize, FieldTransactionDateRange, FieldAmountRange}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldStart:
			if filter.Start < 0 {
				errs.add(f, MsgStartNegative)
			}
		case FieldPageSize:
			if filter.PageSize < 1 || filter.PageSize > models.MaxPageSize {
				errs.add(f, MsgPageSizeOutOfRange)
			}
		case FieldTransactionDateRange:
			if filter.TransactionStartDate != nil && filter.TransactionEndDate != nil &&
				filter.TransactionStartDate.After(*filter.TransactionEndDate) {
				errs.add(f, MsgDateRangeReversed)
			}
		case FieldAmountRange:
			if filter.MinAmount != nil && filter.MaxAmount != nil &&
				filter.MinAmount.GreaterThan(*filter.MaxAmount) {
				errs.add(f, MsgAmountRangeReversed)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *PurchaseValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				errs.add(f, MsgUsernameRequired)
			}
		case FieldPassword:
			if credentials.Password == "" {
				errs.add(f, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *PurchaseValidator) validateExchangeRateQuery(query ExchangeRateQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCountry, FieldCurrency}
	}

	var errs fieldErrors
	for _, f := range fields {
		switch f {
		case FieldCountry:
			if strings.TrimSpace(query.Country) == "" {
				errs.add(f, MsgCountryRequired)
			}
		case FieldCurrency:
			if strings.TrimSpace(query.Currency) == "" {
				errs.add(f, MsgCurrencyRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
