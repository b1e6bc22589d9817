// Package ledgerservice manages business logic layer of ledger operations.
package ledgerservice

import (
	"context"

	"github.com/friendbank/friendbank/internal/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	DepositTx(ctx context.Context, arg domain.DepositParams) (domain.DepositTxResult, error)
	WithdrawTx(ctx context.Context, arg domain.WithdrawParams) (domain.WithdrawTxResult, error)
	TransferTx(ctx context.Context, arg domain.TransferParams) (domain.TransferTxResult, error)
}

// Service facilitates ledger service layer logic.
//
// The service performs no automatic retries: a failed unit of work leaves no
// effects, but a retried successful one would double apply, so retry policy
// is left to the caller.
type Service struct {
	repo Repo
}

// New returns ledger service struct to manage ledger business logic.
func New(lr Repo) *Service {
	return &Service{
		repo: lr,
	}
}

// requireAccountant is the single authorization predicate shared by the
// supply changing operations.
func requireAccountant(role domain.Role) error {
	if role != domain.RoleAccountant {
		return domain.ErrAccountantRequired
	}

	return nil
}

// validAmount checks that amount parses as an exact positive decimal and
// returns its canonical form, so spellings like "+50" never reach SQL or
// the stored records.
func validAmount(ctx context.Context, amount string) (string, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return "", domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return "", domain.ErrNegativeAmount
	}

	return amountDecimal.String(), nil
}

// Deposit injects the amount into the target user's account.
// Only the accountant may call it.
func (s *Service) Deposit(ctx context.Context, actorID int32, actorRole domain.Role, targetUsername, amount string) (domain.DepositTxResult, error) {
	if err := requireAccountant(actorRole); err != nil {
		return domain.DepositTxResult{}, err
	}

	amount, err := validAmount(ctx, amount)
	if err != nil {
		return domain.DepositTxResult{}, err
	}

	arg := domain.DepositParams{
		AccountantID:   actorID,
		TargetUsername: targetUsername,
		Amount:         amount,
	}

	return s.repo.DepositTx(ctx, arg)
}

// Withdraw removes the amount from the target user's account.
// Only the accountant may call it.
func (s *Service) Withdraw(ctx context.Context, actorID int32, actorRole domain.Role, targetUsername, amount string) (domain.WithdrawTxResult, error) {
	if err := requireAccountant(actorRole); err != nil {
		return domain.WithdrawTxResult{}, err
	}

	amount, err := validAmount(ctx, amount)
	if err != nil {
		return domain.WithdrawTxResult{}, err
	}

	arg := domain.WithdrawParams{
		AccountantID:   actorID,
		TargetUsername: targetUsername,
		Amount:         amount,
	}

	return s.repo.WithdrawTx(ctx, arg)
}

// Transfer moves the amount from the sender to the recipient.
func (s *Service) Transfer(ctx context.Context, senderUserID int32, recipientUsername, amount string) (domain.TransferTxResult, error) {
	amount, err := validAmount(ctx, amount)
	if err != nil {
		return domain.TransferTxResult{}, err
	}

	arg := domain.TransferParams{
		SenderUserID:      senderUserID,
		RecipientUsername: recipientUsername,
		Amount:            amount,
	}

	return s.repo.TransferTx(ctx, arg)
}
