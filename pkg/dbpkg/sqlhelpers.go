// Package dbpkg provides helpers to make db initialization, transactions and testing easier.
package dbpkg

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLInterface provides neccessary db methods to perform queries.
type SQLInterface interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Setup sets up connection with database.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

type txKey struct{}

// TxFromContext returns the transaction started by ExecTx, if any.
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// Conn returns the transaction carried by ctx or the fallback when there is none.
func Conn(ctx context.Context, fallback SQLInterface) SQLInterface {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}

	return fallback
}

// ExecTx executes fn within a read committed database transaction.
//
// The transaction travels in the context handed to fn, so every repository
// call made with that context joins it. Nested calls reuse the outer transaction.
// The transaction is committed when fn returns nil and rolled back when fn
// returns an error or panics.
func ExecTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	err = fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}

		return err
	}

	return tx.Commit()
}
