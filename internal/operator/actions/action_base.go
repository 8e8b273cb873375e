package actions

import (
	"context"

	"github.com/carson-networks/session-ledger/internal/storage"
)

// IAction is one unit of write work. It runs inside a single database
// transaction that the operator commits when Perform returns nil.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
