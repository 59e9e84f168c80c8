// Package randompkg generates random wallet names and amounts for tests.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn returns a random integer in [0, max) using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 returns a random float in [0, 1).
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// FloatBetween generates a random number between min and max rounded down to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(alphabet[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// WalletName generates a random wallet name.
func WalletName() string {
	return "wallet-" + String(10)
}

// AmountBetween generates a random positive amount between min and max.
func AmountBetween(min, max float64) decimal.Decimal {
	amount := decimal.NewFromFloat(FloatBetween(min, max))
	if !amount.IsPositive() {
		return decimal.New(1, -4)
	}

	return amount
}
