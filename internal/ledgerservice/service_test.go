package ledgerservice

import (
	"context"
	"testing"
	"time"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/errorspkg"
	"github.com/friendbank/friendbank/pkg/randompkg"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func testAccount(id, userID int32, balance string) domain.Account {
	return domain.Account{
		ID:        id,
		UserID:    userID,
		Balance:   balance,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestDeposit(t *testing.T) {
	accountantID := int32(1)
	targetUsername := randompkg.Username()
	amount := "50.00"

	// The canonical form handed to the repo.
	normalized := "50"

	target := testAccount(2, 2, "150.00")
	recipientID := target.UserID

	wantResult := domain.DepositTxResult{
		Account: target,
		Transaction: domain.Transaction{
			SenderID:    accountantID,
			RecipientID: &recipientID,
			Amount:      amount,
		},
		AuditEntry: domain.AuditLogEntry{
			Amount:           amount,
			Kind:             domain.AuditDeposit,
			AccountantUserID: accountantID,
		},
		TotalSupply: "150.00",
	}

	type input struct {
		actorID        int32
		actorRole      domain.Role
		targetUsername string
		amount         string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.DepositTxResult, err error)
	}{
		{
			name:  "NotAccountant",
			input: input{5, domain.RoleRegular, targetUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().DepositTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountantRequired.Error())
			},
		},
		{
			name:  "InvalidAmount",
			input: input{accountantID, domain.RoleAccountant, targetUsername, "!@#$"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().DepositTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:  "NegativeAmount",
			input: input{accountantID, domain.RoleAccountant, targetUsername, "-50"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().DepositTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name:  "ZeroAmount",
			input: input{accountantID, domain.RoleAccountant, targetUsername, "0"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().DepositTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name:  "TargetNotFound",
			input: input{accountantID, domain.RoleAccountant, targetUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					DepositTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.DepositTxResult{}, domain.ErrUserNotFound)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrUserNotFound.Error())
			},
		},
		{
			name:  "OK",
			input: input{accountantID, domain.RoleAccountant, targetUsername, amount},
			buildStubs: func(repo *MockRepo) {
				arg := domain.DepositParams{
					AccountantID:   accountantID,
					TargetUsername: targetUsername,
					Amount:         normalized,
				}

				repo.EXPECT().
					DepositTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(wantResult, nil)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, wantResult, res)
			},
		},
		{
			name:  "LeadingPlusAmountNormalized",
			input: input{accountantID, domain.RoleAccountant, targetUsername, "+50.00"},
			buildStubs: func(repo *MockRepo) {
				arg := domain.DepositParams{
					AccountantID:   accountantID,
					TargetUsername: targetUsername,
					Amount:         normalized,
				}

				repo.EXPECT().
					DepositTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(wantResult, nil)
			},
			checkResponse: func(res domain.DepositTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, wantResult, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			res, err := service.Deposit(context.Background(),
				tc.input.actorID, tc.input.actorRole, tc.input.targetUsername, tc.input.amount)

			tc.checkResponse(res, err)
		})
	}
}

func TestWithdraw(t *testing.T) {
	accountantID := int32(1)
	targetUsername := randompkg.Username()
	amount := "200.00"

	type input struct {
		actorID        int32
		actorRole      domain.Role
		targetUsername string
		amount         string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.WithdrawTxResult, err error)
	}{
		{
			name:  "NotAccountant",
			input: input{5, domain.RoleRegular, targetUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().WithdrawTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.WithdrawTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrAccountantRequired.Error())
			},
		},
		{
			name:  "InvalidAmount",
			input: input{accountantID, domain.RoleAccountant, targetUsername, "12,5"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().WithdrawTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.WithdrawTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:  "InsufficientBalance",
			input: input{accountantID, domain.RoleAccountant, targetUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					WithdrawTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.WithdrawTxResult{}, domain.ErrInsufficientBalance)
			},
			checkResponse: func(res domain.WithdrawTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInsufficientBalance.Error())
			},
		},
		{
			name:  "OK",
			input: input{accountantID, domain.RoleAccountant, targetUsername, amount},
			buildStubs: func(repo *MockRepo) {
				arg := domain.WithdrawParams{
					AccountantID:   accountantID,
					TargetUsername: targetUsername,
					Amount:         "200",
				}

				repo.EXPECT().
					WithdrawTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.WithdrawTxResult{TotalSupply: "0"}, nil)
			},
			checkResponse: func(res domain.WithdrawTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, "0", res.TotalSupply)
			},
		},
		{
			name:  "LeadingPlusAmountNormalized",
			input: input{accountantID, domain.RoleAccountant, targetUsername, "+200"},
			buildStubs: func(repo *MockRepo) {
				arg := domain.WithdrawParams{
					AccountantID:   accountantID,
					TargetUsername: targetUsername,
					Amount:         "200",
				}

				repo.EXPECT().
					WithdrawTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(domain.WithdrawTxResult{TotalSupply: "0"}, nil)
			},
			checkResponse: func(res domain.WithdrawTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, "0", res.TotalSupply)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			res, err := service.Withdraw(context.Background(),
				tc.input.actorID, tc.input.actorRole, tc.input.targetUsername, tc.input.amount)

			tc.checkResponse(res, err)
		})
	}
}

func TestTransfer(t *testing.T) {
	senderUserID := int32(3)
	recipientUsername := randompkg.Username()
	amount := "40.00"

	sender := testAccount(3, senderUserID, "60.00")
	recipient := testAccount(4, 4, "50.00")
	recipientID := recipient.UserID

	wantResult := domain.TransferTxResult{
		Transaction: domain.Transaction{
			SenderID:    sender.UserID,
			RecipientID: &recipientID,
			Amount:      amount,
		},
		SenderAccount:    sender,
		RecipientAccount: recipient,
	}

	type input struct {
		senderUserID      int32
		recipientUsername string
		amount            string
	}

	testCases := []struct {
		name          string
		input         input
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.TransferTxResult, err error)
	}{
		{
			name:  "InvalidAmount",
			input: input{senderUserID, recipientUsername, "ten"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().TransferTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name:  "NegativeAmount",
			input: input{senderUserID, recipientUsername, "-40"},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().TransferTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name:  "SelfTransfer",
			input: input{senderUserID, recipientUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					TransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrSelfTransfer)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrSelfTransfer.Error())
			},
		},
		{
			name:  "RecipientNotFound",
			input: input{senderUserID, recipientUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					TransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrUserNotFound)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrUserNotFound.Error())
			},
		},
		{
			name:  "RepoInternalError",
			input: input{senderUserID, recipientUsername, amount},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					TransferTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:  "OK",
			input: input{senderUserID, recipientUsername, amount},
			buildStubs: func(repo *MockRepo) {
				arg := domain.TransferParams{
					SenderUserID:      senderUserID,
					RecipientUsername: recipientUsername,
					Amount:            "40",
				}

				repo.EXPECT().
					TransferTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(wantResult, nil)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, wantResult, res)
			},
		},
		{
			name:  "LeadingPlusAmountNormalized",
			input: input{senderUserID, recipientUsername, "+40.00"},
			buildStubs: func(repo *MockRepo) {
				arg := domain.TransferParams{
					SenderUserID:      senderUserID,
					RecipientUsername: recipientUsername,
					Amount:            "40",
				}

				repo.EXPECT().
					TransferTx(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(wantResult, nil)
			},
			checkResponse: func(res domain.TransferTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, wantResult, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			service := New(repo)

			res, err := service.Transfer(context.Background(),
				tc.input.senderUserID, tc.input.recipientUsername, tc.input.amount)

			tc.checkResponse(res, err)
		})
	}
}
