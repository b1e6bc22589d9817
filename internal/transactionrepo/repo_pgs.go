// Package transactionrepo manages repository layer of ledger transactions.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/dbpkg"
	"github.com/friendbank/friendbank/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const recordQuery = `
INSERT INTO
    transactions (sender_id, recipient_id, amount)
VALUES
    ($1, $2, $3)
RETURNING id, sender_id, recipient_id, amount, created_at
`

const incrementCountQuery = `
UPDATE transaction_count
SET count = count + 1
`

// Record appends one immutable transaction row and increments the global
// transaction counter. Both statements run on the caller's unit of work.
func (r *RepoPGS) Record(ctx context.Context, senderID int32, recipientID *int32, amount string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, recordQuery, senderID, recipientID, amount)

	var (
		t         domain.Transaction
		recipient sql.NullInt32
	)

	err := row.Scan(
		&t.ID,
		&t.SenderID,
		&recipient,
		&t.Amount,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_sender_id_fkey", "transactions_recipient_id_fkey":
				return t, domain.ErrUserNotFound
			case "transactions_amount_check":
				return t, domain.ErrNegativeAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	if recipient.Valid {
		t.RecipientID = &recipient.Int32
	}

	if _, err := r.db.ExecContext(ctx, incrementCountQuery); err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const countQuery = `
SELECT count FROM transaction_count
`

// Count returns the total number of completed ledger operations.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const listQuery = `
SELECT
	id, sender_id, recipient_id, amount, created_at
FROM transactions
WHERE
    sender_id = $1 OR recipient_id = $1
ORDER BY id DESC
LIMIT $2 OFFSET $3
`

// List returns the transactions the given user participated in.
func (r *RepoPGS) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, userID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var (
			t         domain.Transaction
			recipient sql.NullInt32
		)

		if err := rows.Scan(
			&t.ID,
			&t.SenderID,
			&recipient,
			&t.Amount,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if recipient.Valid {
			id := recipient.Int32
			t.RecipientID = &id
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
