// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/friendbank/friendbank/internal/accountrepo"
	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/internal/userrepo"
	"github.com/friendbank/friendbank/pkg/dbpkg"
	"github.com/friendbank/friendbank/pkg/passpkg"
	"github.com/friendbank/friendbank/pkg/randompkg"
)

// SeedUser creates a random regular user inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	return SeedUserWithRole(t, tx, domain.RoleRegular)
}

// SeedAccountant creates a random accountant user inside a test transaction.
func SeedAccountant(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	return SeedUserWithRole(t, tx, domain.RoleAccountant)
}

// SeedUserWithRole creates a random user with the given role inside a test transaction.
func SeedUserWithRole(t *testing.T, tx dbpkg.SQLInterface, role domain.Role) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		Role:           role,
	}

	userRepo := userrepo.NewTxRepoPGS(tx)
	user, err := userRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedAccount creates an account with the given balance inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, userID int32, balance string) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), userID, balance)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %v, %v) returned error: %v",
			userID, balance, err)
	}

	return account
}

// SeedUserWithAccount creates a random regular user with an account holding
// the given balance inside a test transaction.
func SeedUserWithAccount(t *testing.T, tx dbpkg.SQLInterface, balance string) (domain.User, domain.Account) {
	t.Helper()

	user := SeedUser(t, tx)
	account := SeedAccount(t, tx, user.ID, balance)

	return user, account
}
