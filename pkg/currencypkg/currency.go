// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import "strings"

// Constants for the default supported crypto currencies.
const (
	BTC  = "BTC"
	ETH  = "ETH"
	LTC  = "LTC"
	ADA  = "ADA"
	DOT  = "DOT"
	BCH  = "BCH"
	XLM  = "XLM"
	BNB  = "BNB"
	USDT = "USDT"
	XMR  = "XMR"
)

// Constants for the default supported fiat currencies.
const (
	USD = "USD"
	EUR = "EUR"
	AUD = "AUD"
	CZK = "CZK"
	JPY = "JPY"
	RUB = "RUB"
	CNY = "CNY"
	HRK = "HRK"
	PLN = "PLN"
	CHF = "CHF"
)

// DefaultCrypto holds the crypto currencies seeded when nothing else is configured.
var DefaultCrypto = []string{BTC, ETH, LTC, ADA, DOT, BCH, XLM, BNB, USDT, XMR}

// DefaultFiat holds the fiat currencies seeded when nothing else is configured.
var DefaultFiat = []string{USD, EUR, AUD, CZK, JPY, RUB, CNY, HRK, PLN, CHF}

// Normalize returns the canonical form of a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeAll normalizes every code and drops empty and duplicated ones.
func NormalizeAll(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))

	for _, c := range codes {
		c = Normalize(c)
		if c == "" {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
