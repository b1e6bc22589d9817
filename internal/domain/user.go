// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrUsernameAlreadyExists indicates that the user with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword indicates the wrong password for the given user.
	ErrWrongPassword = errors.New("wrong password")
	// ErrAccountantRequired indicates that the caller lacks the accountant role.
	ErrAccountantRequired = errors.New("accountant role required")
)

// Role enumerates user roles.
type Role string

// All supported user roles. Only the accountant may change the money supply.
const (
	RoleRegular    Role = "regular"
	RoleAccountant Role = "accountant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleRegular || r == RoleAccountant
}

// User holds user identity and credential data.
type User struct {
	ID             int32     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"hashed_password"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
	Role           Role   `json:"role"`
}

// UserWithoutPassword is User data excluding credential data.
type UserWithoutPassword struct {
	ID        int32     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
