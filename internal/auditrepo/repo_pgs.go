// Package auditrepo manages repository layer of the audit log.
package auditrepo

import (
	"context"

	"github.com/friendbank/friendbank/internal/domain"
	"github.com/friendbank/friendbank/pkg/dbpkg"
	"github.com/friendbank/friendbank/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates audit log repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns audit log RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    audit_log (amount, type, accountant_user_id)
VALUES
    ($1, $2, $3)
RETURNING id, amount, type, accountant_user_id, created_at
`

// Create appends one immutable audit entry for a privileged operation.
// Any error aborts the enclosing unit of work.
func (r *RepoPGS) Create(ctx context.Context, amount string, kind domain.AuditKind, accountantUserID int32) (domain.AuditLogEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, amount, kind, accountantUserID)

	var e domain.AuditLogEntry

	err := row.Scan(
		&e.ID,
		&e.Amount,
		&e.Kind,
		&e.AccountantUserID,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const listQuery = `
SELECT
	id, amount, type, accountant_user_id, created_at
FROM audit_log
ORDER BY id DESC
LIMIT $1 OFFSET $2
`

// List returns the most recent audit entries.
func (r *RepoPGS) List(ctx context.Context, limit, offset int32) ([]domain.AuditLogEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.AuditLogEntry{}

	for rows.Next() {
		var e domain.AuditLogEntry

		if err := rows.Scan(
			&e.ID,
			&e.Amount,
			&e.Kind,
			&e.AccountantUserID,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
