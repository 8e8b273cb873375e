package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/session-ledger/internal/service"
)

const (
	testSessionID = "8b0e6c1e-3f0a-4d43-9a55-2f1b8f0e2c11"
	sessionCookie = "Cookie: sessionId=" + testSessionID
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, sessionID string) ([]service.Transaction, error) {
	args := m.Called(ctx, sessionID)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, NewAPIConfig("Test API", "1.0.0"))
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	salaryID := uuid.Must(uuid.NewV4())
	rentID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, testSessionID).
		Return([]service.Transaction{
			{
				ID:        salaryID,
				Title:     "Salary",
				Amount:    decimal.RequireFromString("5000"),
				SessionID: testSessionID,
				CreatedAt: now,
			},
			{
				ID:        rentID,
				Title:     "Rent",
				Amount:    decimal.RequireFromString("-1200"),
				SessionID: testSessionID,
				CreatedAt: now.Add(time.Minute),
			},
		}, nil)

	resp := newListTestAPI(t, mockSvc).Get(BasePath, sessionCookie)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, Transaction{
		ID:        salaryID.String(),
		Title:     "Salary",
		Amount:    5000,
		SessionID: testSessionID,
		CreatedAt: "2025-06-01T12:00:00Z",
	}, body.Transactions[0])
	assert.Equal(t, rentID.String(), body.Transactions[1].ID)
	assert.Equal(t, float64(-1200), body.Transactions[1].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptySessionIsEmptyArray(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, testSessionID).Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get(BasePath, sessionCookie)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"transactions":[]}`, resp.Body.String())
}

func TestHTTP_ListTransactions_MissingCookie(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get(BasePath)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.JSONEq(t, `{"message":"Unauthorized."}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get(BasePath, sessionCookie)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "database unavailable")
	mockSvc.AssertExpectations(t)
}
