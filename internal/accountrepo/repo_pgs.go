// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/dbpkg"
	"github.com/friendbank/friendbank/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (user_id, balance)
VALUES
    ($1, $2)
RETURNING id, user_id, balance, created_at
`

// Create creates the account for the given user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, userID int32, balance string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, balance)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Balance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_user_id_fkey":
				return a, domain.ErrUserNotFound
			case "accounts_user_id_key":
				return a, domain.ErrAccountAlreadyExists
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByUserIDQuery = `
SELECT
	id, user_id, balance, created_at
FROM accounts
WHERE user_id = $1
`

// GetByUserID returns the account owned by the given user id.
func (r *RepoPGS) GetByUserID(ctx context.Context, userID int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByUserIDQuery, userID)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Balance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByUsernameQuery = `
SELECT
	a.id, a.user_id, a.balance, a.created_at
FROM users u
LEFT JOIN accounts a ON a.user_id = u.id
WHERE u.username = $1
`

// GetByUsername resolves the username to its account. It distinguishes an
// unknown username from a user without an account.
func (r *RepoPGS) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByUsernameQuery, username)

	var (
		a         domain.Account
		id        sql.NullInt32
		userID    sql.NullInt32
		balance   sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&id,
		&userID,
		&balance,
		&createdAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrUserNotFound
		}

		return a, errorspkg.ErrInternal
	}

	if !id.Valid {
		return a, domain.ErrAccountNotFound
	}

	a = domain.Account{
		ID:        id.Int32,
		UserID:    userID.Int32,
		Balance:   balance.String,
		CreatedAt: createdAt.Time,
	}

	return a, nil
}

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = $2
RETURNING id, user_id, balance, created_at
`

// AddBalance changes the account's balance and returns the changed account.
//
// The UPDATE takes the row lock and the accounts_balance_check constraint
// rejects a result below zero, so concurrent operations on the same account
// cannot jointly overdraw it.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Balance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}
