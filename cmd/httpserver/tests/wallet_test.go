//go:build integration

package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/internal/integrationtest"
	"github.com/go-petr/crypto-wallet/pkg/web"
)

func TestWalletLifecycleAPI(t *testing.T) {
	server := integrationtest.SetupServer(t, prices)

	// create
	w := do(t, server, http.MethodPost, "/wallet", map[string]string{"name": "  savings  "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Wallet
	decode(t, w, &created)
	require.Equal(t, "savings", created.Name)
	require.Empty(t, created.Balances)
	require.Equal(t, fmt.Sprintf("/wallet/%d", created.ID), w.Header().Get("Location"))

	// duplicate name
	w = do(t, server, http.MethodPost, "/wallet", map[string]string{"name": "savings"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var apiErr web.APIError
	decode(t, w, &apiErr)
	require.Equal(t, domain.ErrNameAlreadyExists.Error(), apiErr.Message)
	require.Equal(t, "OperationNotAllowed", apiErr.Exception)

	// empty name
	w = do(t, server, http.MethodPost, "/wallet", map[string]string{"name": " "})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	url := fmt.Sprintf("/wallet/%d", created.ID)

	// rename
	w = do(t, server, http.MethodPut, url, map[string]string{"name": "holidays"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var renamed domain.Wallet
	decode(t, w, &renamed)
	require.Equal(t, "holidays", renamed.Name)

	// same name
	w = do(t, server, http.MethodPut, url, map[string]string{"name": "holidays"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	decode(t, w, &apiErr)
	require.Equal(t, domain.ErrSameName.Error(), apiErr.Message)

	// get
	w = do(t, server, http.MethodGet, url, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Wallet
	decode(t, w, &got)
	require.Equal(t, renamed.ID, got.ID)
	require.Equal(t, "holidays", got.Name)

	// delete returns the deleted wallet
	w = do(t, server, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted domain.Wallet
	decode(t, w, &deleted)
	require.Equal(t, got.ID, deleted.ID)

	w = do(t, server, http.MethodGet, url, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	decode(t, w, &apiErr)
	require.Equal(t, "404 NOT_FOUND", apiErr.Status)
	require.Equal(t, domain.ErrWalletNotFound.Error(), apiErr.Message)

	w = do(t, server, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWalletBadID(t *testing.T) {
	server := integrationtest.SetupServer(t, prices)

	for _, id := range []string{"abc", "0", "-1"} {
		w := do(t, server, http.MethodGet, "/wallet/"+id, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestListWalletsAPI(t *testing.T) {
	server := integrationtest.SetupServer(t, prices)

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		w := do(t, server, http.MethodPost, "/wallet", map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	testCases := []struct {
		name      string
		query     string
		wantCode  int
		wantNames []string
		wantTotal int64
		wantPages int
	}{
		{
			name:      "Default",
			query:     "",
			wantCode:  http.StatusOK,
			wantNames: []string{"charlie", "alpha", "bravo"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "SortByName",
			query:     "?sort=name,asc",
			wantCode:  http.StatusOK,
			wantNames: []string{"alpha", "bravo", "charlie"},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:      "SecondPage",
			query:     "?sort=name,desc&page=1&size=2",
			wantCode:  http.StatusOK,
			wantNames: []string{"alpha"},
			wantTotal: 3,
			wantPages: 2,
		},
		{
			name:      "PastTheEnd",
			query:     "?page=5&size=2",
			wantCode:  http.StatusOK,
			wantNames: []string{},
			wantTotal: 3,
			wantPages: 2,
		},
		{
			name:      "OffsetBeyondInt32",
			query:     "?page=107374183&size=20",
			wantCode:  http.StatusOK,
			wantNames: []string{},
			wantTotal: 3,
			wantPages: 1,
		},
		{
			name:     "UnknownSortField",
			query:    "?sort=balance",
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "SizeTooLarge",
			query:    "?size=1000",
			wantCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			w := do(t, server, http.MethodGet, "/wallet"+tc.query, nil)
			require.Equal(t, tc.wantCode, w.Code, w.Body.String())

			if tc.wantCode != http.StatusOK {
				return
			}

			var page domain.Page[domain.Wallet]
			decode(t, w, &page)

			names := make([]string, 0, len(page.Content))
			for _, wallet := range page.Content {
				names = append(names, wallet.Name)
			}

			if diff := cmp.Diff(tc.wantNames, names); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}

			require.Equal(t, tc.wantTotal, page.TotalElements)
			require.Equal(t, tc.wantPages, page.TotalPages)
		})
	}
}

func TestAddAndTransferAPI(t *testing.T) {
	server := integrationtest.SetupServer(t, prices)

	var src, dst domain.Wallet

	w := do(t, server, http.MethodPost, "/wallet", map[string]string{"name": "source"})
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &src)

	w = do(t, server, http.MethodPost, "/wallet", map[string]string{"name": "destination"})
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &dst)

	srcURL := fmt.Sprintf("/wallet/%d", src.ID)

	balance := func(w domain.Wallet, code string) decimal.Decimal {
		b, ok := w.Balance(code)
		if !ok {
			return decimal.Zero
		}

		return b.Amount
	}

	// 1000 USD at 0.00005 is 0.05 BTC
	w = do(t, server, http.MethodPost, srcURL+"/add", map[string]any{
		"fiatCurrencyFrom": "usd",
		"cryptoCurrencyTo": "BTC",
		"amount":           "1000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got domain.Wallet
	decode(t, w, &got)
	require.True(t, balance(got, "BTC").Equal(decimal.RequireFromString("0.05")), balance(got, "BTC"))

	// legacy field names
	w = do(t, server, http.MethodPost, srcURL+"/add", map[string]any{
		"currencyFrom": "EUR",
		"currencyTo":   "BTC",
		"amount":       "500",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &got)
	require.True(t, balance(got, "BTC").Equal(decimal.RequireFromString("0.08")), balance(got, "BTC"))

	addErrCases := []struct {
		name     string
		url      string
		body     map[string]any
		wantCode int
	}{
		{
			name:     "CryptoSource",
			url:      srcURL + "/add",
			body:     map[string]any{"fiatCurrencyFrom": "BTC", "cryptoCurrencyTo": "ETH", "amount": "1"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "FiatTarget",
			url:      srcURL + "/add",
			body:     map[string]any{"fiatCurrencyFrom": "USD", "cryptoCurrencyTo": "EUR", "amount": "1"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "ZeroAmount",
			url:      srcURL + "/add",
			body:     map[string]any{"fiatCurrencyFrom": "USD", "cryptoCurrencyTo": "BTC", "amount": "0"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "MissingAmount",
			url:      srcURL + "/add",
			body:     map[string]any{"fiatCurrencyFrom": "USD", "cryptoCurrencyTo": "BTC"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "NoRate",
			url:      srcURL + "/add",
			body:     map[string]any{"fiatCurrencyFrom": "JPY", "cryptoCurrencyTo": "BTC", "amount": "1"},
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "UnknownWallet",
			url:      "/wallet/999999/add",
			body:     map[string]any{"fiatCurrencyFrom": "USD", "cryptoCurrencyTo": "BTC", "amount": "1"},
			wantCode: http.StatusNotFound,
		},
	}

	for i := range addErrCases {
		tc := addErrCases[i]

		t.Run("Add"+tc.name, func(t *testing.T) {
			w := do(t, server, http.MethodPost, tc.url, tc.body)
			require.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}

	// 0.03 BTC at 10 is 0.3 ETH on the destination
	w = do(t, server, http.MethodPost, srcURL+"/transfer", map[string]any{
		"cryptoCurrencyFrom":  "BTC",
		"cryptoCurrencyTo":    "ETH",
		"amount":              "0.03",
		"destinationWalletId": dst.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &got)
	require.Equal(t, src.ID, got.ID)
	require.True(t, balance(got, "BTC").Equal(decimal.RequireFromString("0.05")), balance(got, "BTC"))

	w = do(t, server, http.MethodGet, fmt.Sprintf("/wallet/%d", dst.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dstGot domain.Wallet
	decode(t, w, &dstGot)
	require.True(t, balance(dstGot, "ETH").Equal(decimal.RequireFromString("0.3")), balance(dstGot, "ETH"))

	transferErrCases := []struct {
		name     string
		body     map[string]any
		wantCode int
		wantMsg  string
	}{
		{
			name: "InsufficientBalance",
			body: map[string]any{
				"cryptoCurrencyFrom": "BTC", "cryptoCurrencyTo": "BTC",
				"amount": "1", "destinationWalletId": dst.ID,
			},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  domain.ErrInsufficientBalance.Error(),
		},
		{
			name: "CurrencyNotInWallet",
			body: map[string]any{
				"cryptoCurrencyFrom": "ETH", "cryptoCurrencyTo": "BTC",
				"amount": "1", "destinationWalletId": dst.ID,
			},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  domain.ErrCurrencyNotInWallet.Error(),
		},
		{
			name: "UnknownDestination",
			body: map[string]any{
				"cryptoCurrencyFrom": "BTC", "cryptoCurrencyTo": "BTC",
				"amount": "0.01", "destinationWalletId": 999999,
			},
			wantCode: http.StatusNotFound,
			wantMsg:  domain.ErrWalletNotFound.Error(),
		},
		{
			name: "MissingDestination",
			body: map[string]any{
				"cryptoCurrencyFrom": "BTC", "cryptoCurrencyTo": "BTC", "amount": "0.01",
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for i := range transferErrCases {
		tc := transferErrCases[i]

		t.Run("Transfer"+tc.name, func(t *testing.T) {
			w := do(t, server, http.MethodPost, srcURL+"/transfer", tc.body)
			require.Equal(t, tc.wantCode, w.Code, w.Body.String())

			if tc.wantMsg == "" {
				return
			}

			var apiErr web.APIError
			decode(t, w, &apiErr)
			require.Equal(t, tc.wantMsg, apiErr.Message)
		})
	}

	// failed transfers leave the balance untouched
	w = do(t, server, http.MethodGet, srcURL, nil)
	decode(t, w, &got)
	require.True(t, balance(got, "BTC").Equal(decimal.RequireFromString("0.05")), balance(got, "BTC"))

	// moving the whole balance leaves exactly zero behind
	w = do(t, server, http.MethodPost, srcURL+"/transfer", map[string]any{
		"cryptoCurrencyFrom":  "BTC",
		"cryptoCurrencyTo":    "BTC",
		"amount":              "0.05",
		"destinationWalletId": dst.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &got)
	require.True(t, balance(got, "BTC").IsZero(), balance(got, "BTC"))

	w = do(t, server, http.MethodGet, fmt.Sprintf("/wallet/%d", dst.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &dstGot)
	require.True(t, balance(dstGot, "BTC").Equal(decimal.RequireFromString("0.05")), balance(dstGot, "BTC"))
}
