package rateservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

var (
	testCrypto = []domain.SupportedCurrency{
		{Code: "ETH", IsCrypto: true},
		{Code: "BTC", IsCrypto: true},
		{Code: "XMR", IsCrypto: true},
	}
	testFiat = []domain.SupportedCurrency{
		{Code: "USD"},
		{Code: "EUR"},
	}
	testSnapshot = map[string]map[string]decimal.Decimal{
		"BTC": {"USD": decimal.NewFromInt(30000), "EUR": decimal.NewFromInt(27000)},
		"ETH": {"USD": decimal.NewFromInt(1800), "EUR": decimal.NewFromInt(1650)},
	}
)

func names(rates []domain.Rate) []string {
	out := make([]string, len(rates))
	for i, r := range rates {
		out[i] = r.Name
	}

	return out
}

func TestList(t *testing.T) {
	testCases := []struct {
		name          string
		page, size    int
		orders        []domain.RateOrder
		buildStubs    func(c *MockCurrencyService, g *MockGateway)
		checkResponse func(t *testing.T, res domain.Page[domain.Rate], err error)
	}{
		{
			name: "RegistryOrder",
			page: 0, size: 20,
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(testCrypto, nil)
				c.EXPECT().ListFiat(gomock.Any()).Times(1).Return(testFiat, nil)
				g.EXPECT().FetchRates(gomock.Any(), []string{"ETH", "BTC", "XMR"}, []string{"USD", "EUR"}).
					Times(1).Return(testSnapshot, nil)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.NoError(t, err)
				// XMR is not priced and is left out.
				require.Equal(t, []string{"ETH", "BTC"}, names(res.Content))
				require.Equal(t, int64(2), res.TotalElements)
				require.Equal(t, 1, res.TotalPages)
				require.True(t, res.Content[1].Rates["EUR"].Equal(decimal.NewFromInt(27000)))
			},
		},
		{
			name: "SortByName",
			page: 0, size: 20,
			orders: []domain.RateOrder{{Key: domain.RateSortName, Direction: domain.Asc}},
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(testCrypto, nil)
				c.EXPECT().ListFiat(gomock.Any()).Times(1).Return(testFiat, nil)
				g.EXPECT().FetchRates(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(testSnapshot, nil)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"BTC", "ETH"}, names(res.Content))
			},
		},
		{
			name: "SortByRatesKeepsOrder",
			page: 0, size: 20,
			orders: []domain.RateOrder{{Key: domain.RateSortRates, Direction: domain.Desc}},
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(testCrypto, nil)
				c.EXPECT().ListFiat(gomock.Any()).Times(1).Return(testFiat, nil)
				g.EXPECT().FetchRates(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(testSnapshot, nil)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"ETH", "BTC"}, names(res.Content))
			},
		},
		{
			name: "SecondPage",
			page: 1, size: 1,
			orders: []domain.RateOrder{{Key: domain.RateSortName, Direction: domain.Desc}},
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(testCrypto, nil)
				c.EXPECT().ListFiat(gomock.Any()).Times(1).Return(testFiat, nil)
				g.EXPECT().FetchRates(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(testSnapshot, nil)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"BTC"}, names(res.Content))
				require.Equal(t, 2, res.TotalPages)
			},
		},
		{
			name: "PastTheEnd",
			page: 5, size: 20,
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(testCrypto, nil)
				c.EXPECT().ListFiat(gomock.Any()).Times(1).Return(testFiat, nil)
				g.EXPECT().FetchRates(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(testSnapshot, nil)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.NoError(t, err)
				require.NotNil(t, res.Content)
				require.Empty(t, res.Content)
				require.Equal(t, int64(2), res.TotalElements)
			},
		},
		{
			name: "RateUnavailable",
			page: 0, size: 20,
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(testCrypto, nil)
				c.EXPECT().ListFiat(gomock.Any()).Times(1).Return(testFiat, nil)
				g.EXPECT().FetchRates(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).Return(nil, domain.ErrRateUnavailable)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.Equal(t, errorspkg.RateUnavailable, errorspkg.KindOf(err))
			},
		},
		{
			name: "RegistryErr",
			page: 0, size: 20,
			buildStubs: func(c *MockCurrencyService, g *MockGateway) {
				c.EXPECT().ListCrypto(gomock.Any()).Times(1).Return(nil, errorspkg.ErrInternal)
				g.EXPECT().FetchRates(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.Page[domain.Rate], err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			currencies := NewMockCurrencyService(ctrl)
			gateway := NewMockGateway(ctrl)
			tc.buildStubs(currencies, gateway)

			res, err := New(currencies, gateway).List(context.Background(), tc.page, tc.size, tc.orders)
			tc.checkResponse(t, res, err)
		})
	}
}
