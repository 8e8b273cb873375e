package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var transactionColumns = []any{
	psql.Quote("id"),
	psql.Quote("title"),
	psql.Quote("amount"),
	psql.Quote("session_id"),
	psql.Quote("created_at"),
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a bob.DB or a bob.Tx.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindOne retrieves the transaction matching the filter, or nil.
func (t *TransactionsTable) FindOne(ctx context.Context, filter *TransactionFilter) (*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTable)),
		sm.Where(filterExpression(filter)),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new transaction row. created_at is set by the database.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) error {
	query := psql.Insert(
		im.Into(psql.Quote(transactionsTable), "id", "title", "amount", "session_id"),
		im.Values(
			psql.Arg(create.ID),
			psql.Arg(create.Title),
			psql.Arg(create.Amount),
			psql.Arg(create.SessionID),
		),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// List returns the session's transactions in insertion order.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTable)),
		sm.Where(filterExpression(filter)),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SumAmount adds up amount over the filtered rows. SUM over zero rows is
// NULL in SQL, so it is coalesced to 0.
func (t *TransactionsTable) SumAmount(ctx context.Context, filter *TransactionFilter) (decimal.Decimal, error) {
	query := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0)")),
		sm.From(psql.Quote(transactionsTable)),
		sm.Where(filterExpression(filter)),
	)
	sum, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func filterExpression(filter *TransactionFilter) bob.Expression {
	sessionMatches := psql.Quote("session_id").EQ(psql.Arg(filter.SessionID))
	if id, ok := filter.ID.Get(); ok {
		return psql.And(
			psql.Quote("id").EQ(psql.Arg(id)),
			sessionMatches,
		)
	}
	return sessionMatches
}
