package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates an amount that does not parse as an exact decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates a zero or negative amount.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrSelfTransfer indicates a transfer where sender and recipient are the same user.
	ErrSelfTransfer = errors.New("transfer to self")
)

// Transaction is one immutable ledger entry.
//
// Direction is implied by the participants: a transfer records both users,
// a deposit records the accountant as sender, a withdrawal records the
// accountant as recipient. Amount is always positive.
type Transaction struct {
	ID          int64     `json:"id"`
	SenderID    int32     `json:"sender_id"`
	RecipientID *int32    `json:"recipient_id"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuditKind enumerates the privileged operations recorded in the audit log.
type AuditKind string

// Audit log entry kinds.
const (
	AuditDeposit    AuditKind = "deposit"
	AuditWithdrawal AuditKind = "withdrawal"
)

// AuditLogEntry is one immutable record of a privileged supply-changing operation.
type AuditLogEntry struct {
	ID               int64     `json:"id"`
	Amount           string    `json:"amount"`
	Kind             AuditKind `json:"type"`
	AccountantUserID int32     `json:"accountant_user_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// DepositParams is the input data for the deposit transaction.
type DepositParams struct {
	AccountantID   int32  `json:"accountant_id"`
	TargetUsername string `json:"target_username"`
	Amount         string `json:"amount"`
}

// DepositTxResult is the result of the deposit transaction.
type DepositTxResult struct {
	Account     Account       `json:"account"`
	Transaction Transaction   `json:"transaction"`
	AuditEntry  AuditLogEntry `json:"audit_entry"`
	TotalSupply string        `json:"total_supply"`
}

// WithdrawParams is the input data for the withdrawal transaction.
type WithdrawParams struct {
	AccountantID   int32  `json:"accountant_id"`
	TargetUsername string `json:"target_username"`
	Amount         string `json:"amount"`
}

// WithdrawTxResult is the result of the withdrawal transaction.
type WithdrawTxResult struct {
	Account     Account       `json:"account"`
	Transaction Transaction   `json:"transaction"`
	AuditEntry  AuditLogEntry `json:"audit_entry"`
	TotalSupply string        `json:"total_supply"`
}

// TransferParams is the input data for the transfer transaction.
type TransferParams struct {
	SenderUserID      int32  `json:"sender_user_id"`
	RecipientUsername string `json:"recipient_username"`
	Amount            string `json:"amount"`
}

// TransferTxResult is the result of the transfer transaction.
type TransferTxResult struct {
	Transaction      Transaction `json:"transaction"`
	SenderAccount    Account     `json:"sender_account"`
	RecipientAccount Account     `json:"recipient_account"`
}

// SupplyStats reports the total money in circulation and the number of
// ledger transactions recorded so far.
type SupplyStats struct {
	TotalSupply      string `json:"total_supply"`
	TransactionCount int64  `json:"transaction_count"`
}
