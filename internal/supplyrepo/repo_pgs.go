// Package supplyrepo manages repository layer of the money supply singleton.
package supplyrepo

import (
	"context"

	"github.com/friendbank/friendbank/pkg/dbpkg"
	"github.com/friendbank/friendbank/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates total supply repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns total supply RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const adjustQuery = `
UPDATE total_supply
SET total_amount = total_amount + $1
RETURNING total_amount
`

// Adjust applies the delta to the single total_supply row and returns the
// new total. The row lock taken by the UPDATE serializes concurrent
// adjustments, so no increment can be lost.
func (r *RepoPGS) Adjust(ctx context.Context, delta string) (string, error) {
	l := zerolog.Ctx(ctx)

	var total string

	err := r.db.QueryRowContext(ctx, adjustQuery, delta).Scan(&total)
	if err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return total, nil
}

const getQuery = `
SELECT total_amount FROM total_supply
`

// Get returns the current money in circulation.
func (r *RepoPGS) Get(ctx context.Context) (string, error) {
	l := zerolog.Ctx(ctx)

	var total string

	if err := r.db.QueryRowContext(ctx, getQuery).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return total, nil
}
