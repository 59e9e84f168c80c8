// Package domain provides defenitions of all entities.
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

var (
	// ErrWalletNotFound indicates that the wallet is not found.
	ErrWalletNotFound = errorspkg.New(errorspkg.NotFound, "Wallet with given ID does not exist.")
	// ErrEmptyName indicates that the wallet name is missing.
	ErrEmptyName = errorspkg.New(errorspkg.InvalidRequest, "Provided name was null or empty string.")
	// ErrNameAlreadyExists indicates that another wallet already uses the name.
	ErrNameAlreadyExists = errorspkg.New(errorspkg.OperationNotAllowed, "Wallet name already exist.")
	// ErrSameName indicates that the new wallet name equals the current one.
	ErrSameName = errorspkg.New(errorspkg.InvalidRequest, "Provided name is the same as it was.")
	// ErrInvalidAmount indicates a non positive amount.
	ErrInvalidAmount = errorspkg.New(errorspkg.InvalidRequest, "Amount must be positive.")
	// ErrCurrencyNotInWallet indicates that the wallet holds no balance in the currency.
	ErrCurrencyNotInWallet = errorspkg.New(errorspkg.OperationNotAllowed, "Wallet does not have specified currency.")
	// ErrInsufficientBalance indicates that the balance is lower than the requested amount.
	ErrInsufficientBalance = errorspkg.New(errorspkg.OperationNotAllowed,
		"Wallet does not have enough amount in specified currency.")
	// ErrUnsupportedCurrency indicates that a currency code is not in the registry.
	ErrUnsupportedCurrency = errorspkg.New(errorspkg.OperationNotAllowed, "Currency is not supported.")
)

// UnsupportedCurrencyError returns ErrUnsupportedCurrency detailed with the rejected code.
func UnsupportedCurrencyError(code string) error {
	msg := fmt.Sprintf("Currency [%s] is not supported.", code)
	return errorspkg.Wrap(errorspkg.OperationNotAllowed, ErrUnsupportedCurrency, msg)
}

// Balance holds the amount of one currency within a wallet.
type Balance struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"` // never negative
}

// Wallet is a named container of per-currency balances.
type Wallet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Balances  []Balance `json:"balances"`
	CreatedAt time.Time `json:"createdAt"`
}

// Balance returns the wallet balance for the code.
func (w Wallet) Balance(code string) (Balance, bool) {
	for _, b := range w.Balances {
		if b.Code == code {
			return b, true
		}
	}

	return Balance{}, false
}

// AddParams is the input data to convert an amount into a wallet balance.
type AddParams struct {
	CurrencyFrom string
	CurrencyTo   string
	Amount       decimal.Decimal
}

// TransferParams is the input data to move an amount between wallet balances.
type TransferParams struct {
	CurrencyFrom        string
	CurrencyTo          string
	Amount              decimal.Decimal
	DestinationWalletID int64
}
