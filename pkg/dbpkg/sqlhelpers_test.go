package dbpkg

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
)

// txCounter is an in-memory driver that only counts transaction outcomes.
type txCounter struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (c *txCounter) Connect(context.Context) (driver.Conn, error) { return countingConn{c}, nil }
func (c *txCounter) Open(string) (driver.Conn, error)              { return countingConn{c}, nil }
func (c *txCounter) Driver() driver.Driver                         { return c }

func (c *txCounter) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.commits, c.rollbacks
}

type countingConn struct{ c *txCounter }

func (cc countingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("statements are not supported")
}
func (cc countingConn) Close() error              { return nil }
func (cc countingConn) Begin() (driver.Tx, error) { return countingTx(cc), nil }

func (cc countingConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return countingTx(cc), nil
}

type countingTx struct{ c *txCounter }

func (t countingTx) Commit() error {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	t.c.commits++

	return nil
}

func (t countingTx) Rollback() error {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	t.c.rollbacks++

	return nil
}

func newCountingDB(t *testing.T) (*sql.DB, *txCounter) {
	t.Helper()

	counter := &txCounter{}
	db := sql.OpenDB(counter)

	t.Cleanup(func() { _ = db.Close() })

	return db, counter
}

func TestConnWithoutTx(t *testing.T) {
	fallback := &sql.DB{}

	if got := Conn(context.Background(), fallback); got != fallback {
		t.Errorf("Conn(ctx, fallback)=%v, want fallback", got)
	}
}

func TestConnWithTx(t *testing.T) {
	tx := &sql.Tx{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	got := Conn(ctx, &sql.DB{})
	if got != tx {
		t.Errorf("Conn(ctx, fallback)=%v, want tx from context", got)
	}
}

func TestExecTxReusesOuterTx(t *testing.T) {
	tx := &sql.Tx{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	called := false

	// db is nil: a nested call must never try to begin a new transaction.
	err := ExecTx(ctx, nil, func(ctx context.Context) error {
		called = true

		got, ok := TxFromContext(ctx)
		if !ok || got != tx {
			t.Errorf("TxFromContext(ctx)=%v, %v, want outer tx", got, ok)
		}

		return nil
	})
	if err != nil {
		t.Fatalf("ExecTx returned error: %v", err)
	}

	if !called {
		t.Error("fn was not called")
	}
}

func TestExecTxOutcome(t *testing.T) {
	errFn := errors.New("fn failed")

	testCases := []struct {
		name          string
		fn            func(ctx context.Context) error
		wantErr       error
		wantPanic     bool
		wantCommits   int
		wantRollbacks int
	}{
		{
			name: "Commit",
			fn: func(ctx context.Context) error {
				if _, ok := TxFromContext(ctx); !ok {
					t.Error("fn ctx carries no transaction")
				}
				return nil
			},
			wantCommits: 1,
		},
		{
			name:          "RollbackOnError",
			fn:            func(context.Context) error { return errFn },
			wantErr:       errFn,
			wantRollbacks: 1,
		},
		{
			name:          "RollbackOnPanic",
			fn:            func(context.Context) error { panic("boom") },
			wantPanic:     true,
			wantRollbacks: 1,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			db, counter := newCountingDB(t)

			var (
				err       error
				recovered any
			)

			func() {
				defer func() { recovered = recover() }()
				err = ExecTx(context.Background(), db, tc.fn)
			}()

			if tc.wantPanic != (recovered != nil) {
				t.Fatalf("recovered=%v, want panic %v", recovered, tc.wantPanic)
			}

			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ExecTx returned error %v, want %v", err, tc.wantErr)
			}

			commits, rollbacks := counter.counts()
			if commits != tc.wantCommits || rollbacks != tc.wantRollbacks {
				t.Errorf("commits=%d rollbacks=%d, want %d and %d",
					commits, rollbacks, tc.wantCommits, tc.wantRollbacks)
			}
		})
	}
}
