// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/internal/currencyrepo"
	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/internal/walletrepo"
	"github.com/go-petr/crypto-wallet/pkg/currencypkg"
	"github.com/go-petr/crypto-wallet/pkg/dbpkg"
	"github.com/go-petr/crypto-wallet/pkg/randompkg"
)

// SeedCurrencies registers the default fiat and crypto currencies inside a test transaction.
func SeedCurrencies(t *testing.T, tx dbpkg.SQLInterface) []domain.SupportedCurrency {
	t.Helper()

	items := make([]domain.SupportedCurrency, 0, len(currencypkg.DefaultFiat)+len(currencypkg.DefaultCrypto))

	for _, c := range currencypkg.DefaultFiat {
		items = append(items, domain.SupportedCurrency{Code: c})
	}

	for _, c := range currencypkg.DefaultCrypto {
		items = append(items, domain.SupportedCurrency{Code: c, IsCrypto: true})
	}

	if err := currencyrepo.NewTxRepoPGS(tx).Seed(context.Background(), items); err != nil {
		t.Fatalf("currencyRepo.Seed(context.Background(), %v) returned error: %v", items, err)
	}

	return items
}

// SeedWallet creates an empty wallet with a random name inside a test transaction.
func SeedWallet(t *testing.T, tx dbpkg.SQLInterface) domain.Wallet {
	t.Helper()

	name := randompkg.WalletName()

	wallet, err := walletrepo.NewTxRepoPGS(tx).Create(context.Background(), name)
	if err != nil {
		t.Fatalf("walletRepo.Create(context.Background(), %q) returned error: %v", name, err)
	}

	return wallet
}

// SeedBalance credits amount of currency to the wallet inside a test transaction.
//
// The currency must already be registered.
func SeedBalance(t *testing.T, tx dbpkg.SQLInterface, walletID int64, currency string, amount decimal.Decimal) domain.Balance {
	t.Helper()

	balance, err := walletrepo.NewTxRepoPGS(tx).AddBalance(context.Background(), walletID, currency, amount)
	if err != nil {
		t.Fatalf("walletRepo.AddBalance(context.Background(), %d, %q, %s) returned error: %v",
			walletID, currency, amount, err)
	}

	return balance
}

// SeedWalletWith1000 creates a wallet holding 1000 of every given currency.
func SeedWalletWith1000(t *testing.T, tx dbpkg.SQLInterface, currencies ...string) domain.Wallet {
	t.Helper()

	wallet := SeedWallet(t, tx)

	for _, c := range currencies {
		wallet.Balances = append(wallet.Balances, SeedBalance(t, tx, wallet.ID, c, decimal.NewFromInt(1000)))
	}

	return wallet
}
