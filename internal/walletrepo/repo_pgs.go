// Package walletrepo manages repository layer of wallets and their balances.
package walletrepo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/dbpkg"
	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

// RepoPGS facilitates wallet repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns wallet RepoPGS bound to an existing transaction or connection.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns wallet RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

// ExecTx runs fn in a read committed transaction carried by the context passed to fn.
//
// A repo created with NewTxRepoPGS runs fn directly within its own transaction.
func (r *RepoPGS) ExecTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.conn == nil {
		return fn(ctx)
	}

	return dbpkg.ExecTx(ctx, r.conn, fn)
}

func mapWalletErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrWalletNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Constraint {
		case "wallets_name_key":
			return domain.ErrNameAlreadyExists
		case "balances_amount_check":
			return domain.ErrInsufficientBalance
		case "balances_wallet_id_fkey":
			return domain.ErrWalletNotFound
		case "balances_currency_code_fkey":
			return domain.ErrUnsupportedCurrency
		}
	}

	return errorspkg.ErrInternal
}

const createQuery = `
INSERT INTO
	wallets (name)
VALUES
	($1)
RETURNING id, name, created_at
`

// Create creates the wallet without balances and then returns it.
func (r *RepoPGS) Create(ctx context.Context, name string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := dbpkg.Conn(ctx, r.db).QueryRowContext(ctx, createQuery, name)

	w := domain.Wallet{Balances: []domain.Balance{}}

	if err := row.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %q)", name)
		return domain.Wallet{}, mapWalletErr(err)
	}

	return w, nil
}

const getQuery = `
SELECT
	id, name, created_at
FROM wallets
WHERE id = $1
`

// Get returns the wallet with the given id and its balances.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Wallet, error) {
	return r.getOne(ctx, getQuery, id)
}

// GetForUpdate returns the wallet with the given id and locks its row until the transaction ends.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int64) (domain.Wallet, error) {
	return r.getOne(ctx, getQuery+"FOR UPDATE", id)
}

const getByNameQuery = `
SELECT
	id, name, created_at
FROM wallets
WHERE name = $1
`

// GetByName returns the wallet with the given name and its balances.
func (r *RepoPGS) GetByName(ctx context.Context, name string) (domain.Wallet, error) {
	return r.getOne(ctx, getByNameQuery, name)
}

func (r *RepoPGS) getOne(ctx context.Context, query string, arg interface{}) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := dbpkg.Conn(ctx, r.db).QueryRowContext(ctx, query, arg)

	var w domain.Wallet

	if err := row.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return w, domain.ErrWalletNotFound
		}

		l.Error().Err(err).Send()

		return w, errorspkg.ErrInternal
	}

	balances, err := r.balances(ctx, []int64{w.ID})
	if err != nil {
		return domain.Wallet{}, err
	}

	w.Balances = balancesOf(balances, w.ID)

	return w, nil
}

const updateNameQuery = `
UPDATE wallets
SET name = $2
WHERE id = $1
RETURNING id, name, created_at
`

// UpdateName renames the wallet and returns it with its balances.
func (r *RepoPGS) UpdateName(ctx context.Context, id int64, name string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := dbpkg.Conn(ctx, r.db).QueryRowContext(ctx, updateNameQuery, id, name)

	var w domain.Wallet

	if err := row.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
		l.Error().Err(err).Msgf("UpdateName(ctx, %d, %q)", id, name)
		return domain.Wallet{}, mapWalletErr(err)
	}

	balances, err := r.balances(ctx, []int64{w.ID})
	if err != nil {
		return domain.Wallet{}, err
	}

	w.Balances = balancesOf(balances, w.ID)

	return w, nil
}

const deleteQuery = `
DELETE FROM wallets
WHERE id = $1
`

// Delete removes the wallet with the given id together with its balances.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	res, err := dbpkg.Conn(ctx, r.db).ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrWalletNotFound
	}

	return nil
}

var orderColumns = map[domain.WalletSortKey]string{
	domain.WalletSortID:   "id",
	domain.WalletSortName: "name",
}

var orderDirections = map[domain.Direction]string{
	domain.Asc:  "ASC",
	domain.Desc: "DESC",
}

// orderBy builds the ORDER BY clause from fixed fragments only.
func orderBy(orders []domain.WalletOrder) string {
	parts := make([]string, 0, len(orders)+1)
	hasID := false

	for _, o := range orders {
		col, ok := orderColumns[o.Key]
		if !ok {
			continue
		}

		if o.Key == domain.WalletSortID {
			hasID = true
		}

		parts = append(parts, col+" "+orderDirections[o.Direction])
	}

	// id keeps the order total for equal keys.
	if !hasID {
		parts = append(parts, "id ASC")
	}

	return "ORDER BY " + strings.Join(parts, ", ")
}

const listQuery = `
SELECT
	id, name, created_at
FROM wallets
`

// List returns the specified number of wallets with their balances in the given order.
func (r *RepoPGS) List(ctx context.Context, limit, offset int64, orders []domain.WalletOrder) ([]domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	query := listQuery + orderBy(orders) + "\nLIMIT $1 OFFSET $2"

	rows, err := dbpkg.Conn(ctx, r.db).QueryContext(ctx, query, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Wallet{}

	for rows.Next() {
		var w domain.Wallet
		if err := rows.Scan(&w.ID, &w.Name, &w.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if len(items) == 0 {
		return items, nil
	}

	ids := make([]int64, len(items))
	for i, w := range items {
		ids[i] = w.ID
	}

	balances, err := r.balances(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Balances = balancesOf(balances, items[i].ID)
	}

	return items, nil
}

const countQuery = `
SELECT count(*) FROM wallets
`

// Count returns the total number of wallets.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64
	if err := dbpkg.Conn(ctx, r.db).QueryRowContext(ctx, countQuery).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}

const addBalanceQuery = `
INSERT INTO
	balances (wallet_id, currency_code, amount)
VALUES
	($1, $2, $3)
ON CONFLICT (wallet_id, currency_code) DO UPDATE SET amount = balances.amount + EXCLUDED.amount
RETURNING currency_code, amount
`

// AddBalance adds delta to the wallet balance in the currency, creating the balance when absent.
//
// A result below zero fails with domain.ErrInsufficientBalance.
func (r *RepoPGS) AddBalance(ctx context.Context, walletID int64, code string, delta decimal.Decimal) (domain.Balance, error) {
	l := zerolog.Ctx(ctx)

	row := dbpkg.Conn(ctx, r.db).QueryRowContext(ctx, addBalanceQuery, walletID, code, delta)

	var b domain.Balance

	if err := row.Scan(&b.Code, &b.Amount); err != nil {
		l.Error().Err(err).Msgf("AddBalance(ctx, %d, %q, %s)", walletID, code, delta)
		return domain.Balance{}, mapWalletErr(err)
	}

	return b, nil
}

const balancesQuery = `
SELECT
	wallet_id, currency_code, amount
FROM balances
WHERE wallet_id = ANY($1)
ORDER BY wallet_id, currency_code
`

type walletBalance struct {
	walletID int64
	balance  domain.Balance
}

func (r *RepoPGS) balances(ctx context.Context, ids []int64) ([]walletBalance, error) {
	l := zerolog.Ctx(ctx)

	rows, err := dbpkg.Conn(ctx, r.db).QueryContext(ctx, balancesQuery, pq.Array(ids))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var items []walletBalance

	for rows.Next() {
		var wb walletBalance
		if err := rows.Scan(&wb.walletID, &wb.balance.Code, &wb.balance.Amount); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, wb)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func balancesOf(items []walletBalance, walletID int64) []domain.Balance {
	balances := []domain.Balance{}

	for _, wb := range items {
		if wb.walletID == walletID {
			balances = append(balances, wb.balance)
		}
	}

	return balances
}
