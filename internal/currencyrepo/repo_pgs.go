// Package currencyrepo manages repository layer of supported currencies.
package currencyrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/dbpkg"
	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

// RepoPGS facilitates supported currency repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns currency RepoPGS bound to an existing transaction or connection.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns currency RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

// ExecTx runs fn in a transaction, or directly when the repo can not start one.
func (r *RepoPGS) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.conn == nil {
		return fn(ctx)
	}

	return dbpkg.ExecTx(ctx, r.conn, fn)
}

const upsertQuery = `
INSERT INTO
	supported_currencies (code, is_crypto)
VALUES
	($1, $2)
ON CONFLICT (code) DO UPDATE SET is_crypto = EXCLUDED.is_crypto
`

// Seed inserts the given currencies in one transaction, updating the kind of already known codes.
func (r *RepoPGS) Seed(ctx context.Context, currencies []domain.SupportedCurrency) error {
	l := zerolog.Ctx(ctx)

	err := r.ExecTx(ctx, func(ctx context.Context) error {
		db := dbpkg.Conn(ctx, r.db)

		for _, c := range currencies {
			if _, err := db.ExecContext(ctx, upsertQuery, c.Code, c.IsCrypto); err != nil {
				l.Error().Err(err).Str("code", c.Code).Send()
				return errorspkg.ErrInternal
			}
		}

		return nil
	})
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const listQuery = `
SELECT
	code, is_crypto
FROM supported_currencies
ORDER BY code
`

// List returns all supported currencies ordered by code.
func (r *RepoPGS) List(ctx context.Context) ([]domain.SupportedCurrency, error) {
	l := zerolog.Ctx(ctx)

	rows, err := dbpkg.Conn(ctx, r.db).QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.SupportedCurrency{}

	for rows.Next() {
		var c domain.SupportedCurrency
		if err := rows.Scan(&c.Code, &c.IsCrypto); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
