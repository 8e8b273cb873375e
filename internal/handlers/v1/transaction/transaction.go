package transaction

import (
	"time"

	"github.com/carson-networks/session-ledger/internal/service"
)

// BasePath is the route group every transaction operation lives under.
const BasePath = "/transactions"

var tags = []string{"Transactions"}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        string  `json:"id" format:"uuid" doc:"Transaction UUID"`
	Title     string  `json:"title" doc:"Free-form label"`
	Amount    float64 `json:"amount" doc:"Signed amount, negative for debits"`
	SessionID string  `json:"session_id" doc:"Owning session token"`
	CreatedAt string  `json:"created_at" format:"date-time" doc:"RFC3339 creation time"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID.String(),
		Title:     tx.Title,
		Amount:    tx.Amount.InexactFloat64(),
		SessionID: tx.SessionID,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}
