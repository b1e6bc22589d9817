// Package auditservice manages business logic layer of supply oversight.
package auditservice

import (
	"context"

	"github.com/friendbank/friendbank/internal/domain"
)

// AuditRepo provides data access layer interface needed to read the audit log.
//
//go:generate mockgen -source service.go -destination service_mock.go -package auditservice
type AuditRepo interface {
	List(ctx context.Context, limit, offset int32) ([]domain.AuditLogEntry, error)
}

// SupplyRepo provides data access layer interface needed to read the money supply.
type SupplyRepo interface {
	Get(ctx context.Context) (string, error)
}

// TransactionCounter reports the number of recorded ledger transactions.
type TransactionCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Service facilitates supply oversight logic for accountants.
type Service struct {
	auditRepo    AuditRepo
	supplyRepo   SupplyRepo
	transactions TransactionCounter
}

// New returns audit service struct to manage supply oversight logic.
func New(ar AuditRepo, sr SupplyRepo, tc TransactionCounter) *Service {
	return &Service{auditRepo: ar, supplyRepo: sr, transactions: tc}
}

// Supply returns the current total money supply together with the
// number of transactions recorded so far.
func (s *Service) Supply(ctx context.Context) (domain.SupplyStats, error) {
	total, err := s.supplyRepo.Get(ctx)
	if err != nil {
		return domain.SupplyStats{}, err
	}

	count, err := s.transactions.Count(ctx)
	if err != nil {
		return domain.SupplyStats{}, err
	}

	return domain.SupplyStats{TotalSupply: total, TransactionCount: count}, nil
}

// ListLog returns a page of the privileged operations audit log.
func (s *Service) ListLog(ctx context.Context, pageSize, pageID int32) ([]domain.AuditLogEntry, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	entries, err := s.auditRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
