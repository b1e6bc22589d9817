// Package transactionservice manages business logic layer of transaction history.
package transactionservice

import (
	"context"

	"github.com/friendbank/friendbank/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Transaction, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction history logic.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// List returns the ledger entries the given user participated in.
func (s *Service) List(ctx context.Context, userID int32, pageSize, pageID int32) ([]domain.Transaction, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	transactions, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
