// Package integrationtest provides db, cache and pricing API helpers used in integration tests.
package integrationtest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/cmd/httpserver"
	"github.com/go-petr/crypto-wallet/internal/middleware"
	"github.com/go-petr/crypto-wallet/pkg/configpkg"
	"github.com/go-petr/crypto-wallet/pkg/dbpkg"

	_ "github.com/lib/pq"
)

// Prices maps base currency to target currency to price.
type Prices map[string]map[string]decimal.Decimal

// SetupPriceAPI starts a fake pricing API answering from prices and points config at it.
func SetupPriceAPI(t *testing.T, config *configpkg.Config, prices Prices) {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/data/price", func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("fsym")

		res := map[string]decimal.Decimal{}
		for _, to := range strings.Split(r.URL.Query().Get("tsyms"), ",") {
			if p, ok := prices[from][to]; ok {
				res[to] = p
			}
		}

		if len(res) == 0 {
			writeJSON(w, map[string]string{"Response": "Error", "Message": "no pair"})
			return
		}

		writeJSON(w, res)
	})

	mux.HandleFunc("/data/pricemulti", func(w http.ResponseWriter, r *http.Request) {
		res := map[string]map[string]decimal.Decimal{}

		for _, from := range strings.Split(r.URL.Query().Get("fsyms"), ",") {
			for _, to := range strings.Split(r.URL.Query().Get("tsyms"), ",") {
				p, ok := prices[from][to]
				if !ok {
					continue
				}

				if res[from] == nil {
					res[from] = map[string]decimal.Decimal{}
				}

				res[from][to] = p
			}
		}

		writeJSON(w, res)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	config.RateSingleURL = srv.URL + "/data/price"
	config.RateMultiURL = srv.URL + "/data/pricemulti"
	config.RateTimeout = time.Second
}

// SetupServer returns test server backed by the test database, an in-memory redis
// and a fake pricing API. The supported currencies are seeded and the database is
// cleaned up after the test.
func SetupServer(t *testing.T, prices Prices) *httpserver.Server {
	t.Helper()

	config, err := configpkg.Load("../../../configs")
	if err != nil {
		t.Fatalf(`configpkg.Load("../../../configs") returned error: %v`, err)
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)
	cache := SetupCache(t)

	SetupPriceAPI(t, &config, prices)

	gin.SetMode(gin.ReleaseMode)

	server := httpserver.New(db, cache, logger, config)

	ctx := logger.WithContext(context.Background())
	if err := server.Currencies.Seed(ctx, config.FiatCurrencies, config.CryptoCurrencies); err != nil {
		t.Fatalf("server.Currencies.Seed returned error: %v", err)
	}

	return server
}

// SetupCache returns a redis client connected to an in-memory server.
func SetupCache(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return client
}

// Flush flushes all db tables without droping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public' AND table_name <> 'schema_migrations';`

	row := db.QueryRow(query)

	err := row.Scan(&tables)
	if err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// SetupDB sets up connection with database for testing and then cleans it.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SetupTX sets up a database transaction to be used in tests.
//
// Once the tests are done it will rollback the transaction.
func SetupTX(t *testing.T, driver, source string) *sql.Tx {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("db.Begin() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Fatalf("tx.Rollback() failed: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("db.Close() failed: %v", err)
		}
	})

	return tx
}
