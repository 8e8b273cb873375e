package service

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/session-ledger/internal/operator/actions"
	"github.com/carson-networks/session-ledger/internal/storage"
	"github.com/carson-networks/session-ledger/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic. Every read is
// scoped to the caller's session id.
type TransactionService struct {
	storage  *storage.Storage
	operator processor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op processor) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// CreateTransaction stores a new transaction for the session and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, sessionID string, create TransactionCreate) (uuid.UUID, error) {
	if !create.Type.Valid() {
		return uuid.Nil, fmt.Errorf("unknown transaction type %q", create.Type)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate transaction id: %w", err)
	}

	action := &actions.CreateTransaction{
		ID:        id,
		Title:     create.Title,
		Amount:    create.Type.SignedAmount(create.Amount),
		SessionID: sessionID,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// ListTransactions returns all of the session's transactions in insertion order.
func (s *TransactionService) ListTransactions(ctx context.Context, sessionID string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = transactionFromStorage(row)
	}

	return convertedTransactions, nil
}

// SummarizeTransactions returns the session's balance, zero for a session
// without transactions.
func (s *TransactionService) SummarizeTransactions(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	return s.storage.Transactions.SumAmount(ctx, &sqlconfig.TransactionFilter{SessionID: sessionID})
}

// GetTransaction returns the transaction with id when it belongs to the
// session, and ErrTransactionNotFound otherwise.
func (s *TransactionService) GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindOne(ctx, &sqlconfig.TransactionFilter{
		SessionID: sessionID,
		ID:        omit.From(id),
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrTransactionNotFound
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		Title:     row.Title,
		Amount:    row.Amount,
		SessionID: row.SessionID,
		CreatedAt: row.CreatedAt,
	}
}
