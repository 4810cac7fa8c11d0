package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-purchase-tracker/internal/service"
	"github.com/MKhiriev/go-purchase-tracker/internal/store"
	"github.com/MKhiriev/go-purchase-tracker/internal/validators"
	"github.com/MKhiriev/go-purchase-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTransactionID = "550e8400-e29b-41d4-a716-446655440000"

func testPurchase() models.Purchase {
	return models.Purchase{
		ID:                     7,
		Description:            "Coffee beans",
		TransactionDatetimeUTC: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		PurchaseAmount:         decimal.RequireFromString("12.50"),
		TransactionIdentifier:  testTransactionID,
	}
}

// ─────────────────────────────────────────────
// GET /api/purchases
// ─────────────────────────────────────────────

func TestGetPurchases_DefaultFilter(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	env.purchases.EXPECT().GetPurchases(gomock.Any(), models.NewPurchaseFilter()).
		Return(models.PagedResult[models.Purchase]{Items: []models.Purchase{testPurchase()}, Count: 1}, nil)

	rr := env.do(http.MethodGet, "/api/purchases", "", true)

	require.Equal(t, http.StatusOK, rr.Code)

	var page models.PagedResult[models.Purchase]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Items, 1)
	assert.Equal(t, testTransactionID, page.Items[0].TransactionIdentifier)
	assert.True(t, decimal.RequireFromString("12.5").Equal(page.Items[0].PurchaseAmount))
}

func TestGetPurchases_ParsesQuery(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	query := url.Values{
		"description":          {"coffee"},
		"transactionStartDate": {"2024-01-01"},
		"transactionEndDate":   {"2024-06-30T23:59:59Z"},
		"minAmount":            {"1.5"},
		"maxAmount":            {"100"},
		"start":                {"20"},
		"pageSize":             {"50"},
	}

	env.purchases.EXPECT().GetPurchases(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filter models.PurchaseFilter) (models.PagedResult[models.Purchase], error) {
			assert.Equal(t, "coffee", filter.Description)
			require.NotNil(t, filter.TransactionStartDate)
			assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Equal(*filter.TransactionStartDate))
			require.NotNil(t, filter.TransactionEndDate)
			assert.True(t, time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC).Equal(*filter.TransactionEndDate))
			require.NotNil(t, filter.MinAmount)
			assert.True(t, decimal.RequireFromString("1.5").Equal(*filter.MinAmount))
			require.NotNil(t, filter.MaxAmount)
			assert.True(t, decimal.NewFromInt(100).Equal(*filter.MaxAmount))
			assert.Equal(t, 20, filter.Start)
			assert.Equal(t, 50, filter.PageSize)

			return models.PagedResult[models.Purchase]{Items: []models.Purchase{}}, nil
		})

	rr := env.do(http.MethodGet, "/api/purchases?"+query.Encode(), "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, rr.Body.String())
}

func TestGetPurchases_UnparsableQuery(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	rr := env.do(http.MethodGet, "/api/purchases?start=abc&minAmount=lots&transactionEndDate=yesterday", "", true)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeErrorResponse(t, rr)
	assert.Equal(t, msgInvalidQuery, resp.Message)
	assert.Contains(t, resp.Errors, "start")
	assert.Contains(t, resp.Errors, "minAmount")
	assert.Contains(t, resp.Errors, "transactionEndDate")
}

func TestGetPurchases_ValidationFailure(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	env.purchases.EXPECT().GetPurchases(gomock.Any(), gomock.Any()).Return(
		models.PagedResult[models.Purchase]{},
		fmt.Errorf("error during purchase filter validation: %w", &validators.ValidationError{
			Message: validators.MsgPageSizeOutOfRange,
			Fields:  map[string]string{validators.FieldPageSize: validators.MsgPageSizeOutOfRange},
		}),
	)

	rr := env.do(http.MethodGet, "/api/purchases?pageSize=500", "", true)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeErrorResponse(t, rr)
	assert.Equal(t, validators.MsgPageSizeOutOfRange, resp.Message)
	assert.Equal(t, validators.MsgPageSizeOutOfRange, resp.Errors[validators.FieldPageSize])
}

// ─────────────────────────────────────────────
// GET /api/purchases/{id}
// ─────────────────────────────────────────────

func TestGetPurchase_ByID(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.purchases.EXPECT().GetPurchaseByID(gomock.Any(), int64(7)).Return(testPurchase(), nil)

	rr := env.do(http.MethodGet, "/api/purchases/7", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": 7,
		"description": "Coffee beans",
		"transactionDatetimeUtc": "2024-03-15T10:30:00Z",
		"purchaseAmount": 12.5,
		"transactionIdentifier": "550e8400-e29b-41d4-a716-446655440000"
	}`, rr.Body.String())
}

func TestGetPurchase_ByTransactionIdentifier(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.purchases.EXPECT().GetPurchaseByTransactionIdentifier(gomock.Any(), testTransactionID).Return(testPurchase(), nil)

	rr := env.do(http.MethodGet, "/api/purchases/"+testTransactionID, "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetPurchase_NotFound(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		setup       func(env *testEnv)
		wantMessage string
	}{
		{
			name: "missing id",
			path: "/api/purchases/42",
			setup: func(env *testEnv) {
				env.purchases.EXPECT().GetPurchaseByID(gomock.Any(), int64(42)).
					Return(models.Purchase{}, fmt.Errorf("error getting purchase 42: %w", store.ErrPurchaseNotFound))
			},
			wantMessage: "Purchase with ID 42 not found",
		},
		{
			name: "non-positive id",
			path: "/api/purchases/0",
			setup: func(env *testEnv) {
				env.purchases.EXPECT().GetPurchaseByID(gomock.Any(), int64(0)).
					Return(models.Purchase{}, fmt.Errorf("%w: 0", service.ErrInvalidPurchaseID))
			},
			wantMessage: "Purchase with ID 0 not found",
		},
		{
			name: "missing transaction identifier",
			path: "/api/purchases/" + testTransactionID,
			setup: func(env *testEnv) {
				env.purchases.EXPECT().GetPurchaseByTransactionIdentifier(gomock.Any(), testTransactionID).
					Return(models.Purchase{}, store.ErrPurchaseNotFound)
			},
			wantMessage: "Purchase with transaction identifier " + testTransactionID + " not found",
		},
		{
			name:        "key is neither id nor uuid",
			path:        "/api/purchases/not-a-key",
			setup:       func(env *testEnv) {},
			wantMessage: msgPurchaseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testServerConfig())
			tt.setup(env)

			rr := env.do(http.MethodGet, tt.path, "", true)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeErrorResponse(t, rr).Message)
		})
	}
}

func TestGetPurchase_DatabaseUnavailable(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.purchases.EXPECT().GetPurchaseByID(gomock.Any(), int64(7)).
		Return(models.Purchase{}, fmt.Errorf("%w: %w", store.ErrDatabaseUnavailable, store.ErrExecutingQuery))

	rr := env.do(http.MethodGet, "/api/purchases/7", "", true)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

// ─────────────────────────────────────────────
// POST /api/purchases
// ─────────────────────────────────────────────

func TestCreatePurchase_Success(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	env.purchases.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input models.PurchaseInput) (models.Purchase, error) {
			assert.Equal(t, "Coffee beans", input.Description)
			assert.True(t, decimal.RequireFromString("12.5").Equal(input.PurchaseAmount))
			assert.True(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC).Equal(input.TransactionDateUTC))
			return testPurchase(), nil
		})

	body := `{"description":"Coffee beans","purchaseAmount":12.5,"transactionDateUtc":"2024-03-15T10:30:00Z"}`
	rr := env.do(http.MethodPost, "/api/purchases", body, true)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/purchases/7", rr.Header().Get("Location"))
	assert.JSONEq(t, `{"id":7,"transactionIdentifier":"`+testTransactionID+`"}`, rr.Body.String())
}

func TestCreatePurchase_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "malformed body",
			body:       `{"description":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"description":"","purchaseAmount":0,"transactionDateUtc":"2024-03-15T10:30:00Z"}`,
			serviceErr: &validators.ValidationError{
				Message: validators.MsgDescriptionRequired,
				Fields: map[string]string{
					validators.FieldDescription:    validators.MsgDescriptionRequired,
					validators.FieldPurchaseAmount: validators.MsgAmountNotPositive,
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "identifier collision",
			body:       `{"description":"Tea","purchaseAmount":1,"transactionDateUtc":"2024-03-15T10:30:00Z"}`,
			serviceErr: fmt.Errorf("error creating purchase: %w", store.ErrTransactionIdentifierExists),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unexpected write error",
			body:       `{"description":"Tea","purchaseAmount":1,"transactionDateUtc":"2024-03-15T10:30:00Z"}`,
			serviceErr: fmt.Errorf("error creating purchase: %w", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testServerConfig())
			if tt.serviceErr != nil {
				env.purchases.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(models.Purchase{}, tt.serviceErr)
			}

			rr := env.do(http.MethodPost, "/api/purchases", tt.body, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, msgUnexpectedError, decodeErrorResponse(t, rr).Message)
				assert.NotContains(t, rr.Body.String(), "statement")
			}
		})
	}
}

func TestCreatePurchase_RequiresJSONContentType(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	req := newRequest(http.MethodPost, "/api/purchases", `description=tea`)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := env.serve(req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
}

// ─────────────────────────────────────────────
// PUT /api/purchases/{id}
// ─────────────────────────────────────────────

func TestUpdatePurchase_Success(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	updated := testPurchase()
	updated.Description = "Green tea"
	env.purchases.EXPECT().UpdatePurchase(gomock.Any(), int64(7), gomock.Any()).Return(updated, nil)

	body := `{"description":"Green tea","purchaseAmount":12.5,"transactionDateUtc":"2024-03-15T10:30:00Z"}`
	rr := env.do(http.MethodPut, "/api/purchases/7", body, true)

	require.Equal(t, http.StatusOK, rr.Code)

	var got models.Purchase
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Green tea", got.Description)
	assert.Equal(t, testTransactionID, got.TransactionIdentifier)
}

func TestUpdatePurchase_NotFound(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.purchases.EXPECT().UpdatePurchase(gomock.Any(), int64(9), gomock.Any()).
		Return(models.Purchase{}, fmt.Errorf("error updating purchase 9: %w", store.ErrPurchaseNotFound))

	body := `{"description":"Tea","purchaseAmount":1,"transactionDateUtc":"2024-03-15T10:30:00Z"}`
	rr := env.do(http.MethodPut, "/api/purchases/9", body, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Purchase with ID 9 not found", decodeErrorResponse(t, rr).Message)
}

func TestUpdatePurchase_NonNumericID(t *testing.T) {
	env := newTestEnv(t, testServerConfig())

	rr := env.do(http.MethodPut, "/api/purchases/abc", `{}`, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/purchases/{id}
// ─────────────────────────────────────────────

func TestDeletePurchase_Success(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.purchases.EXPECT().DeletePurchase(gomock.Any(), int64(7)).Return(nil)

	rr := env.do(http.MethodDelete, "/api/purchases/7", "", true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeletePurchase_NotFound(t *testing.T) {
	env := newTestEnv(t, testServerConfig())
	env.purchases.EXPECT().DeletePurchase(gomock.Any(), int64(7)).
		Return(fmt.Errorf("error deleting purchase 7: %w", store.ErrPurchaseNotFound))

	rr := env.do(http.MethodDelete, "/api/purchases/7", "", true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Purchase with ID 7 not found", decodeErrorResponse(t, rr).Message)
}
