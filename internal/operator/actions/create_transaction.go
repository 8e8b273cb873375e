package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/session-ledger/internal/storage"
	"github.com/carson-networks/session-ledger/internal/storage/sqlconfig"
)

// CreateTransaction inserts one transaction row. Amount already carries the
// credit/debit sign.
type CreateTransaction struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	SessionID string
}

var _ IAction = (*CreateTransaction)(nil)

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		ID:        t.ID,
		Title:     t.Title,
		Amount:    t.Amount,
		SessionID: t.SessionID,
	})
}
