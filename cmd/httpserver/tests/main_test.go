//go:build integration

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/crypto-wallet/cmd/httpserver"
	"github.com/go-petr/crypto-wallet/internal/integrationtest"
)

var prices = integrationtest.Prices{
	"USD": {"BTC": decimal.RequireFromString("0.00005"), "ETH": decimal.RequireFromString("0.0005")},
	"EUR": {"BTC": decimal.RequireFromString("0.00006")},
	"BTC": {
		"BTC": decimal.RequireFromString("1"),
		"ETH": decimal.RequireFromString("10"),
		"USD": decimal.RequireFromString("20000"),
	},
	"ETH": {"BTC": decimal.RequireFromString("0.1"), "USD": decimal.RequireFromString("2000")},
}

// do sends the request with an optional json body and returns the recorded response.
func do(t *testing.T, server *httpserver.Server, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	return w
}

// decode unmarshals the recorded response body into v.
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
