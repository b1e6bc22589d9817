//go:build integration

package accountrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/friendbank/friendbank/internal/accountrepo"
	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/internal/test"
	"github.com/friendbank/friendbank/pkg/configpkg"
	"github.com/friendbank/friendbank/pkg/dbpkg"
	"github.com/friendbank/friendbank/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name        string
		wantAccount func(tx *sql.Tx) domain.Account
		wantErr     error
	}{
		{
			name: "OK",
			wantAccount: func(tx *sql.Tx) domain.Account {
				user := test.SeedUser(t, tx)
				return domain.Account{UserID: user.ID, Balance: "0"}
			},
		},
		{
			name: "ConstraintViolation:accounts_user_id_fkey",
			wantAccount: func(tx *sql.Tx) domain.Account {
				return domain.Account{UserID: -100500, Balance: "0"}
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "ConstraintViolation:accounts_user_id_key",
			wantAccount: func(tx *sql.Tx) domain.Account {
				user, _ := test.SeedUserWithAccount(t, tx, "100")
				return domain.Account{UserID: user.ID, Balance: "0"}
			},
			wantErr: domain.ErrAccountAlreadyExists,
		},
		{
			name: "ConstraintViolation:accounts_balance_check",
			wantAccount: func(tx *sql.Tx) domain.Account {
				user := test.SeedUser(t, tx)
				return domain.Account{UserID: user.ID, Balance: "-10"}
			},
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := dbpkg.SetupTX(t, dbDriver, dbSource)
			want := tc.wantAccount(tx)
			accountRepo := accountrepo.NewRepoPGS(tx)

			got, err := accountRepo.Create(context.Background(), want.UserID, want.Balance)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf(`accountRepo.Create(context.Background(), %v, %v) returned error: %v`,
					want.UserID, want.Balance, err)
			}

			ignoreFields := cmpopts.IgnoreFields(domain.Account{}, "ID", "CreatedAt")
			if diff := cmp.Diff(want, got, ignoreFields); diff != "" {
				t.Errorf(`accountRepo.Create(context.Background(), %v, %v) returned unexpected difference (-want +got):\n%s`,
					want.UserID, want.Balance, diff)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}
		})
	}
}

func TestGetByUserID(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	_, want := test.SeedUserWithAccount(t, tx, "1000")
	accountRepo := accountrepo.NewRepoPGS(tx)

	got, err := accountRepo.GetByUserID(context.Background(), want.UserID)
	if err != nil {
		t.Fatalf(`accountRepo.GetByUserID(context.Background(), %v) returned error: %v`, want.UserID, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf(`accountRepo.GetByUserID(context.Background(), %v) returned unexpected difference (-want +got):\n%s`,
			want.UserID, diff)
	}

	if _, err = accountRepo.GetByUserID(context.Background(), -100500); err != domain.ErrAccountNotFound {
		t.Errorf(`accountRepo.GetByUserID(context.Background(), -100500) returned error %v, want %v`,
			err, domain.ErrAccountNotFound)
	}
}

func TestGetByUsername(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	user, want := test.SeedUserWithAccount(t, tx, "1000")
	accountRepo := accountrepo.NewRepoPGS(tx)

	got, err := accountRepo.GetByUsername(context.Background(), user.Username)
	if err != nil {
		t.Fatalf(`accountRepo.GetByUsername(context.Background(), %v) returned error: %v`, user.Username, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf(`accountRepo.GetByUsername(context.Background(), %v) returned unexpected difference (-want +got):\n%s`,
			user.Username, diff)
	}

	if _, err = accountRepo.GetByUsername(context.Background(), "nobody"); err != domain.ErrUserNotFound {
		t.Errorf(`accountRepo.GetByUsername(context.Background(), "nobody") returned error %v, want %v`,
			err, domain.ErrUserNotFound)
	}

	// A user that exists but has no account is a different failure.
	orphan := test.SeedUser(t, tx)

	if _, err = accountRepo.GetByUsername(context.Background(), orphan.Username); err != domain.ErrAccountNotFound {
		t.Errorf(`accountRepo.GetByUsername(context.Background(), %v) returned error %v, want %v`,
			orphan.Username, err, domain.ErrAccountNotFound)
	}
}

func TestAddBalance(t *testing.T) {
	testCases := []struct {
		name    string
		balance string
		amount  string
		wantErr error
	}{
		{name: "Add", balance: "1000", amount: randompkg.MoneyAmountBetween(1, 100)},
		{name: "Subtract", balance: "1000", amount: "-999.99"},
		{name: "SubtractAll", balance: "1000", amount: "-1000"},
		{name: "Overdraw", balance: "1000", amount: "-1000.01", wantErr: domain.ErrInsufficientBalance},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := dbpkg.SetupTX(t, dbDriver, dbSource)
			_, account := test.SeedUserWithAccount(t, tx, tc.balance)
			accountRepo := accountrepo.NewRepoPGS(tx)

			got, err := accountRepo.AddBalance(context.Background(), tc.amount, account.ID)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf(`accountRepo.AddBalance(context.Background(), %v, %v) returned error: %v`,
					tc.amount, account.ID, err)
			}

			balance := decimal.RequireFromString(tc.balance)
			amount := decimal.RequireFromString(tc.amount)
			want := balance.Add(amount)

			if !want.Equal(decimal.RequireFromString(got.Balance)) {
				t.Errorf("got.Balance = %v, want %v", got.Balance, want)
			}
		})
	}
}
