package operator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/session-ledger/internal/operator"
	"github.com/carson-networks/session-ledger/internal/operator/actions"
	"github.com/carson-networks/session-ledger/internal/storage"
	"github.com/carson-networks/session-ledger/internal/storage/sqlconfig"
	"github.com/carson-networks/session-ledger/internal/storage/storagetest"
)

type failAfterInsert struct {
	actions.CreateTransaction
}

func (f *failAfterInsert) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := f.CreateTransaction.Perform(ctx, writer); err != nil {
		return err
	}
	return errors.New("abort")
}

func TestOperator_CommitsAndRollsBack(t *testing.T) {
	store := storagetest.NewStorage(t)
	delegator := operator.NewOperatorDelegator(store, 2)
	delegator.Start()
	defer delegator.Stop()

	ctx := context.Background()
	sessionID := uuid.Must(uuid.NewV4()).String()

	committed := &actions.CreateTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Salary",
		Amount:    decimal.RequireFromString("5000"),
		SessionID: sessionID,
	}
	require.NoError(t, delegator.Process(ctx, committed))

	aborted := &failAfterInsert{CreateTransaction: actions.CreateTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		Title:     "Never stored",
		Amount:    decimal.RequireFromString("1"),
		SessionID: sessionID,
	}}
	assert.EqualError(t, delegator.Process(ctx, aborted), "abort")

	rows, err := store.Transactions.List(ctx, &sqlconfig.TransactionFilter{SessionID: sessionID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, committed.ID, rows[0].ID)
}
