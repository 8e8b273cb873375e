package service

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrTransactionNotFound is returned when no transaction matches both the id
// and the caller's session.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionType classifies a new transaction. It only decides the sign of
// the stored amount and is not persisted.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// SignedAmount returns amount for credits and its negation for debits.
func (t TransactionType) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeDebit {
		return amount.Neg()
	}
	return amount
}

func (t TransactionType) Valid() bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	SessionID string
	CreatedAt time.Time
}

// TransactionCreate is a validated create request.
type TransactionCreate struct {
	Title  string
	Amount decimal.Decimal
	Type   TransactionType
}
