// Package rateservice lists live exchange rates of the supported crypto currencies.
package rateservice

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/internal/domain"
)

// CurrencyService provides the supported currency lists.
//
//go:generate mockgen -source service.go -destination service_mock.go -package rateservice
type CurrencyService interface {
	ListFiat(ctx context.Context) ([]domain.SupportedCurrency, error)
	ListCrypto(ctx context.Context) ([]domain.SupportedCurrency, error)
}

// Gateway provides live price snapshots.
type Gateway interface {
	FetchRates(ctx context.Context, bases, targets []string) (map[string]map[string]decimal.Decimal, error)
}

// Service facilitates rate listing logic.
type Service struct {
	currencies CurrencyService
	gateway    Gateway
}

// New returns rate service.
func New(currencies CurrencyService, gateway Gateway) *Service {
	return &Service{
		currencies: currencies,
		gateway:    gateway,
	}
}

// List returns the requested page of rates, one entry per supported crypto currency
// priced in every supported fiat currency.
func (s *Service) List(ctx context.Context, page, size int, orders []domain.RateOrder) (domain.Page[domain.Rate], error) {
	crypto, err := s.currencies.ListCrypto(ctx)
	if err != nil {
		return domain.Page[domain.Rate]{}, err
	}

	fiat, err := s.currencies.ListFiat(ctx)
	if err != nil {
		return domain.Page[domain.Rate]{}, err
	}

	bases := domain.Codes(crypto)

	snapshot, err := s.gateway.FetchRates(ctx, bases, domain.Codes(fiat))
	if err != nil {
		return domain.Page[domain.Rate]{}, err
	}

	rates := make([]domain.Rate, 0, len(bases))

	for _, base := range bases {
		if prices, ok := snapshot[base]; ok {
			rates = append(rates, domain.Rate{Name: base, Rates: prices})
		}
	}

	for _, o := range orders {
		sortRates(rates, o)
	}

	start, end := domain.PageBounds(page, size, len(rates))

	return domain.NewPage(rates[start:end], page, size, int64(len(rates))), nil
}

func sortRates(rates []domain.Rate, o domain.RateOrder) {
	if o.Key != domain.RateSortName {
		return
	}

	sort.SliceStable(rates, func(i, j int) bool {
		if o.Direction == domain.Desc {
			return rates[i].Name > rates[j].Name
		}

		return rates[i].Name < rates[j].Name
	})
}
