// Package ledgerrepo owns the atomic units of work of the ledger engine.
//
// Each exported method runs begin -> validate -> mutate -> commit against
// Postgres; any failure rolls the whole unit back so no balance, supply,
// transaction or audit row ever reflects a partial operation.
package ledgerrepo

import (
	"context"
	"database/sql"

	"github.com/friendbank/friendbank/internal/accountrepo"
	"github.com/friendbank/friendbank/internal/auditrepo"
	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/internal/supplyrepo"
	"github.com/friendbank/friendbank/internal/transactionrepo"
	"github.com/friendbank/friendbank/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates ledger transaction repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{conn: db}
}

// repos bundles the repositories bound to one transaction.
type repos struct {
	accounts     *accountrepo.RepoPGS
	transactions *transactionrepo.RepoPGS
	audit        *auditrepo.RepoPGS
	supply       *supplyrepo.RepoPGS
}

// execTx executes fn within a database transaction.
func (r *RepoPGS) execTx(ctx context.Context, fn func(q repos) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	q := repos{
		accounts:     accountrepo.NewRepoPGS(tx),
		transactions: transactionrepo.NewRepoPGS(tx),
		audit:        auditrepo.NewRepoPGS(tx),
		supply:       supplyrepo.NewRepoPGS(tx),
	}

	if err := fn(q); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// DepositTx injects money into the target user's account.
//
// Within one unit of work it adds to the balance, records the transaction,
// grows the total supply and writes the audit entry.
func (r *RepoPGS) DepositTx(ctx context.Context, arg domain.DepositParams) (domain.DepositTxResult, error) {
	var result domain.DepositTxResult

	err := r.execTx(ctx, func(q repos) error {
		account, err := q.accounts.GetByUsername(ctx, arg.TargetUsername)
		if err != nil {
			return err
		}

		result.Account, err = q.accounts.AddBalance(ctx, arg.Amount, account.ID)
		if err != nil {
			return err
		}

		recipientID := account.UserID

		result.Transaction, err = q.transactions.Record(ctx, arg.AccountantID, &recipientID, arg.Amount)
		if err != nil {
			return err
		}

		result.TotalSupply, err = q.supply.Adjust(ctx, arg.Amount)
		if err != nil {
			return err
		}

		result.AuditEntry, err = q.audit.Create(ctx, arg.Amount, domain.AuditDeposit, arg.AccountantID)

		return err
	})

	return result, err
}

// WithdrawTx removes money from the target user's account.
//
// It fails with domain.ErrInsufficientBalance before mutating anything when
// the account cannot cover the amount; the accounts_balance_check constraint
// backstops the same invariant against concurrent withdrawals.
func (r *RepoPGS) WithdrawTx(ctx context.Context, arg domain.WithdrawParams) (domain.WithdrawTxResult, error) {
	var result domain.WithdrawTxResult

	err := r.execTx(ctx, func(q repos) error {
		account, err := q.accounts.GetByUsername(ctx, arg.TargetUsername)
		if err != nil {
			return err
		}

		if err := checkBalanceCovers(account.Balance, arg.Amount); err != nil {
			return err
		}

		debit, err := negated(arg.Amount)
		if err != nil {
			return err
		}

		result.Account, err = q.accounts.AddBalance(ctx, debit, account.ID)
		if err != nil {
			return err
		}

		accountantID := arg.AccountantID

		result.Transaction, err = q.transactions.Record(ctx, account.UserID, &accountantID, arg.Amount)
		if err != nil {
			return err
		}

		result.TotalSupply, err = q.supply.Adjust(ctx, debit)
		if err != nil {
			return err
		}

		result.AuditEntry, err = q.audit.Create(ctx, arg.Amount, domain.AuditWithdrawal, arg.AccountantID)

		return err
	})

	return result, err
}

// TransferTx moves money between two users' accounts.
//
// The transfer never touches the total supply and writes no audit entry;
// conservation is local to the two balances.
func (r *RepoPGS) TransferTx(ctx context.Context, arg domain.TransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	err := r.execTx(ctx, func(q repos) error {
		sender, err := q.accounts.GetByUserID(ctx, arg.SenderUserID)
		if err != nil {
			// An authenticated user without an account means the signup
			// invariant is broken; do not leak it as a not found error.
			if err == domain.ErrAccountNotFound {
				l.Error().Int32("sender_user_id", arg.SenderUserID).Msg("authenticated user has no account")
				return errorspkg.ErrInternal
			}

			return err
		}

		recipient, err := q.accounts.GetByUsername(ctx, arg.RecipientUsername)
		if err != nil {
			return err
		}

		if sender.ID == recipient.ID {
			return domain.ErrSelfTransfer
		}

		if err := checkBalanceCovers(sender.Balance, arg.Amount); err != nil {
			return err
		}

		debit, err := negated(arg.Amount)
		if err != nil {
			return err
		}

		// To avoid deadlocks execute balance updates in consistent id order.
		if sender.ID < recipient.ID {
			result.SenderAccount, result.RecipientAccount, err = addBalances(ctx, q.accounts,
				sender.ID, debit,
				recipient.ID, arg.Amount,
			)
		} else {
			result.RecipientAccount, result.SenderAccount, err = addBalances(ctx, q.accounts,
				recipient.ID, arg.Amount,
				sender.ID, debit,
			)
		}

		if err != nil {
			return err
		}

		recipientID := recipient.UserID

		result.Transaction, err = q.transactions.Record(ctx, sender.UserID, &recipientID, arg.Amount)

		return err
	})

	return result, err
}

func addBalances(ctx context.Context, r *accountrepo.RepoPGS,
	account1ID int32, amount1 string,
	account2ID int32, amount2 string,
) (domain.Account, domain.Account, error) {
	account1, err := r.AddBalance(ctx, amount1, account1ID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	account2, err := r.AddBalance(ctx, amount2, account2ID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	return account1, account2, nil
}

// negated returns the debit form of amount normalized through decimal, so a
// signed spelling like "+50" can never produce invalid numeric input.
func negated(amount string) (string, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return "", domain.ErrInvalidAmount
	}

	return d.Neg().String(), nil
}

// checkBalanceCovers reports domain.ErrInsufficientBalance when balance < amount.
// Both values arrive as exact decimal strings.
func checkBalanceCovers(balance, amount string) error {
	balanceDecimal, err := decimal.NewFromString(balance)
	if err != nil {
		return errorspkg.ErrInternal
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.ErrInvalidAmount
	}

	if balanceDecimal.LessThan(amountDecimal) {
		return domain.ErrInsufficientBalance
	}

	return nil
}
