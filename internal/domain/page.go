package domain

import (
	"fmt"
	"strings"

	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

// ErrInvalidSort indicates an unknown sort field or direction.
var ErrInvalidSort = errorspkg.New(errorspkg.InvalidRequest, "Invalid sort parameter.")

// Page is one slice of an ordered collection.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage builds a page and computes the number of pages for total elements.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// PageBounds returns the [start, end) slice bounds of page for n elements.
//
// A page past the end yields an empty range.
func PageBounds(page, size, n int) (int, int) {
	if size <= 0 || page < 0 || page > n/size {
		return n, n
	}

	start := page * size

	end := n
	if size < n-start {
		end = start + size
	}

	return start, end
}

// Direction is the sort direction.
type Direction int

// Sort directions.
const (
	Asc Direction = iota
	Desc
)

// ParseDirection parses "asc" or "desc", case insensitive. Empty means Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, errorspkg.Wrap(errorspkg.InvalidRequest, ErrInvalidSort,
			fmt.Sprintf("Invalid sort direction [%s].", s))
	}
}

// WalletSortKey enumerates the fields wallets can be ordered by.
type WalletSortKey int

// Wallet sort keys.
const (
	WalletSortID WalletSortKey = iota
	WalletSortName
)

// WalletOrder is one wallet ordering criterion.
type WalletOrder struct {
	Key       WalletSortKey
	Direction Direction
}

var walletSortKeys = map[string]WalletSortKey{
	"id":   WalletSortID,
	"name": WalletSortName,
}

// ParseWalletOrder parses a wallet sort field and direction.
func ParseWalletOrder(field, direction string) (WalletOrder, error) {
	key, ok := walletSortKeys[strings.TrimSpace(field)]
	if !ok {
		return WalletOrder{}, errorspkg.Wrap(errorspkg.InvalidRequest, ErrInvalidSort,
			fmt.Sprintf("Wallets can not be sorted by [%s].", field))
	}

	dir, err := ParseDirection(direction)
	if err != nil {
		return WalletOrder{}, err
	}

	return WalletOrder{Key: key, Direction: dir}, nil
}

// RateSortKey enumerates the fields rate entries can be ordered by.
type RateSortKey int

// Rate sort keys.
const (
	RateSortName RateSortKey = iota
	// RateSortRates orders by the rates mapping, which has no total order,
	// so sorting by it leaves the order unchanged.
	RateSortRates
)

// RateOrder is one rate ordering criterion.
type RateOrder struct {
	Key       RateSortKey
	Direction Direction
}

var rateSortKeys = map[string]RateSortKey{
	"name":          RateSortName,
	"rates":         RateSortRates,
	"currencyRates": RateSortRates,
}

// ParseRateOrder parses a rate sort field and direction.
func ParseRateOrder(field, direction string) (RateOrder, error) {
	key, ok := rateSortKeys[strings.TrimSpace(field)]
	if !ok {
		return RateOrder{}, errorspkg.Wrap(errorspkg.InvalidRequest, ErrInvalidSort,
			fmt.Sprintf("Rates can not be sorted by [%s].", field))
	}

	dir, err := ParseDirection(direction)
	if err != nil {
		return RateOrder{}, err
	}

	return RateOrder{Key: key, Direction: dir}, nil
}
