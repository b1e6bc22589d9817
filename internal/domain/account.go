package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the user already has an account.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account holds the balance of a single user.
//
// Balance is an exact decimal carried as a string; it is never represented
// as a binary float anywhere in the app. Committed balances are never negative.
type Account struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
