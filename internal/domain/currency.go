package domain

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

// ErrRateUnavailable indicates that the pricing API could not provide a rate.
var ErrRateUnavailable = errorspkg.New(errorspkg.RateUnavailable, "rate unavailable")

// SupportedCurrency is a currency code the system recognizes.
type SupportedCurrency struct {
	Code     string `json:"code"`
	IsCrypto bool   `json:"isCrypto"`
}

// Codes returns the codes of the given currencies in order.
func Codes(currencies []SupportedCurrency) []string {
	codes := make([]string, len(currencies))
	for i, c := range currencies {
		codes[i] = c.Code
	}

	return codes
}

// Rate holds the prices of one base currency in the target currencies.
type Rate struct {
	Name  string                     `json:"name"`
	Rates map[string]decimal.Decimal `json:"rates"`
}
