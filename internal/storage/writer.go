package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/session-ledger/internal/storage/sqlconfig"
)

// Writer scopes table access to one database transaction.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionTable
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
