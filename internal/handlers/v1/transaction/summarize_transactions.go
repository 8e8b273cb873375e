package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/session-ledger/internal/logging"
	"github.com/carson-networks/session-ledger/internal/session"
)

// SummarizeTransactionsInput is the Huma input for the session summary.
type SummarizeTransactionsInput struct {
	session.Cookie
}

// Summary is the session balance.
type Summary struct {
	Amount float64 `json:"amount" doc:"Sum of all signed amounts, 0 when the session has none"`
}

// SummarizeTransactionsResponseBody is the response body for the summary.
type SummarizeTransactionsResponseBody struct {
	Summary Summary `json:"summary"`
}

// SummarizeTransactionsOutput is the Huma output for the summary.
type SummarizeTransactionsOutput struct {
	Body SummarizeTransactionsResponseBody
}

type transactionSummarizer interface {
	SummarizeTransactions(ctx context.Context, sessionID string) (decimal.Decimal, error)
}

// SummarizeTransactionsHandler handles GET /transactions/summary.
type SummarizeTransactionsHandler struct {
	TransactionService transactionSummarizer
}

func NewSummarizeTransactionsHandler(svc transactionSummarizer) *SummarizeTransactionsHandler {
	return &SummarizeTransactionsHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummarizeTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summarize-transactions",
		Method:      http.MethodGet,
		Path:        BasePath + "/summary",
		Summary:     "Summarize transactions",
		Description: "Returns the balance of the caller's session.",
		Tags:        tags,
	}, session.Guard(h.handle))
}

func (h *SummarizeTransactionsHandler) handle(ctx context.Context, input *SummarizeTransactionsInput, token session.Token) (*SummarizeTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeTransactionsMs")
	}
	amount, err := h.TransactionService.SummarizeTransactions(ctx, token.String())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to summarize transactions", err)
	}

	return &SummarizeTransactionsOutput{
		Body: SummarizeTransactionsResponseBody{
			Summary: Summary{Amount: amount.InexactFloat64()},
		},
	}, nil
}
