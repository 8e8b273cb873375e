package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/session-ledger/internal/logging"
	"github.com/carson-networks/session-ledger/internal/service"
	"github.com/carson-networks/session-ledger/internal/session"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	session.Cookie
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Every transaction of the session"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, sessionID string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        BasePath,
		Summary:     "List transactions",
		Description: "Returns every transaction recorded by the caller's session.",
		Tags:        tags,
	}, session.Guard(h.handle))
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput, token session.Token) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, token.String())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = transactionFromService(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
