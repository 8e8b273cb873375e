package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transactions row.
type Transaction struct {
	ID        uuid.UUID       `db:"id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	SessionID string          `db:"session_id"`
	CreatedAt time.Time       `db:"created_at"`
}

// TransactionCreate is the input for inserting a transaction. Amount is
// stored as given; the caller has already applied the credit/debit sign.
type TransactionCreate struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	SessionID string
}

// TransactionFilter restricts reads to one session and, optionally, one id.
// The predicates are ANDed.
type TransactionFilter struct {
	SessionID string
	ID        omit.Val[uuid.UUID]
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	// FindOne returns the matching row, or nil when none matches.
	FindOne(ctx context.Context, filter *TransactionFilter) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	// SumAmount returns the sum of amount over the matching rows, zero when none match.
	SumAmount(ctx context.Context, filter *TransactionFilter) (decimal.Decimal, error)
}
