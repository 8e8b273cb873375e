package service

import (
	"context"

	"github.com/carson-networks/session-ledger/internal/operator/actions"
	"github.com/carson-networks/session-ledger/internal/storage"
)

// processor runs write actions; implemented by operator.OperatorDelegator.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage and write path.
func NewService(store *storage.Storage, op processor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op),
	}
}
