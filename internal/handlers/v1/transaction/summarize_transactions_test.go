package transaction

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTransactionSummarizer struct {
	mock.Mock
}

func (m *mockTransactionSummarizer) SummarizeTransactions(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc transactionSummarizer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, NewAPIConfig("Test API", "1.0.0"))
	NewSummarizeTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_SummarizeTransactions_Success(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, testSessionID).
		Return(decimal.RequireFromString("3800"), nil)

	resp := newSummaryTestAPI(t, mockSvc).Get(BasePath+"/summary", sessionCookie)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"summary":{"amount":3800}}`, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SummarizeTransactions_ZeroTransactionsIsZero(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, testSessionID).Return(decimal.Zero, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get(BasePath+"/summary", sessionCookie)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"summary":{"amount":0}}`, resp.Body.String())
}

func TestHTTP_SummarizeTransactions_Fractional(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, testSessionID).
		Return(decimal.RequireFromString("-12.5"), nil)

	resp := newSummaryTestAPI(t, mockSvc).Get(BasePath+"/summary", sessionCookie)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"summary":{"amount":-12.5}}`, resp.Body.String())
}

func TestHTTP_SummarizeTransactions_MissingCookie(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)

	resp := newSummaryTestAPI(t, mockSvc).Get(BasePath + "/summary")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "SummarizeTransactions")
}

func TestHTTP_SummarizeTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionSummarizer)
	mockSvc.On("SummarizeTransactions", mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("database unavailable"))

	resp := newSummaryTestAPI(t, mockSvc).Get(BasePath+"/summary", sessionCookie)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
