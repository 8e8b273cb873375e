package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/session-ledger/internal/logging"
	"github.com/carson-networks/session-ledger/internal/service"
	"github.com/carson-networks/session-ledger/internal/session"
)

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	session.Cookie
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionOutput is the bare transaction record.
type GetTransactionOutput struct {
	Body Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        BasePath + "/{id}",
		Summary:     "Get transaction",
		Description: "Returns one transaction of the caller's session.",
		Tags:        tags,
	}, session.Guard(h.handle))
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput, token session.Token) (*GetTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	// format:"uuid" has already been enforced by the schema.
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "invalid id", err)
	}
	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getTransactionMs")
	}
	transaction, err := h.TransactionService.GetTransaction(ctx, token.String(), id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "Transaction not found")
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction", err)
	}

	return &GetTransactionOutput{Body: transactionFromService(*transaction)}, nil
}
