package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/session-ledger/internal/logging"
	"github.com/carson-networks/session-ledger/internal/service"
	"github.com/carson-networks/session-ledger/internal/session"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Title  string  `json:"title" minLength:"1" doc:"Free-form label"`
	Amount float64 `json:"amount" doc:"Unsigned amount; the type decides the stored sign"`
	Type   string  `json:"type" enum:"credit,debit" doc:"credit adds the amount, debit subtracts it"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	session.Cookie
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction. The
// body is empty; a session cookie is set when the request carried none.
type CreateTransactionOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, sessionID string, create service.TransactionCreate) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
	SecureCookies      bool
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator, secureCookies bool) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc, SecureCookies: secureCookies}
}

// Register registers the create transaction endpoint with the Huma API. It is
// not guarded: it is how a client without a session obtains one.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          BasePath,
		DefaultStatus: http.StatusCreated,
		Summary:       "Create transaction",
		Description:   "Records a credit or debit for the caller's session, starting a session when there is none.",
		Tags:          tags,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	transactionType := service.TransactionType(input.Body.Type)
	if !transactionType.Valid() {
		return service.TransactionCreate{}, huma.NewError(http.StatusUnprocessableEntity, "type must be credit or debit")
	}

	return service.TransactionCreate{
		Title:  input.Body.Title,
		Amount: decimal.NewFromFloat(input.Body.Amount),
		Type:   transactionType,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	output := &CreateTransactionOutput{}
	token, ok := input.Token()
	if !ok {
		token, err = session.New()
		if err != nil {
			return nil, huma.NewError(http.StatusInternalServerError, "failed to start session", err)
		}
		output.SetCookie = append(output.SetCookie, token.Cookie(h.SecureCookies))
		if logData != nil {
			logData.AddData("sessionIssued", true)
		}
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	id, err := h.TransactionService.CreateTransaction(ctx, token.String(), create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return output, nil
}
