// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/friendbank/friendbank/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	GetByUserID(ctx context.Context, userID int32) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Get returns the account owned by the given user.
func (s *Service) Get(ctx context.Context, userID int32) (domain.Account, error) {
	account, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return account, err
	}

	return account, nil
}
