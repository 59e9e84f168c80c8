// Package rategateway fetches live crypto exchange rates from the CryptoCompare price API.
package rategateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/configpkg"
	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

const maxBodySize = 1 << 20

// Client queries the single and multi symbol price endpoints.
type Client struct {
	singleURL string
	multiURL  string
	apiKey    string
	client    *http.Client
}

// New returns rate Client configured from config.
func New(config configpkg.Config) *Client {
	return &Client{
		singleURL: config.RateSingleURL,
		multiURL:  config.RateMultiURL,
		apiKey:    config.RateAPIKey,
		client: &http.Client{
			Timeout: config.RateTimeout,
		},
	}
}

func unavailable(err error) error {
	return errorspkg.Wrap(errorspkg.RateUnavailable, err, domain.ErrRateUnavailable.Error())
}

// FetchRate returns the price of one unit of from expressed in to.
func (c *Client) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	q := url.Values{}
	q.Set("fsym", from)
	q.Set("tsyms", to)

	body, err := c.get(ctx, c.singleURL, q)
	if err != nil {
		l.Error().Err(err).Str("from", from).Str("to", to).Msg("rate fetch failed")
		return decimal.Decimal{}, err
	}

	var prices map[string]decimal.Decimal
	if err := json.Unmarshal(body, &prices); err != nil {
		l.Error().Err(err).Send()
		return decimal.Decimal{}, unavailable(err)
	}

	price, ok := prices[to]
	if !ok {
		err := fmt.Errorf("no price for %s/%s", from, to)
		l.Error().Err(err).Send()

		return decimal.Decimal{}, unavailable(err)
	}

	return price, nil
}

// FetchRates returns a snapshot of prices for every base in every target, keyed by base then target.
//
// Pairs the upstream does not price are absent from the result.
func (c *Client) FetchRates(ctx context.Context, bases, targets []string) (map[string]map[string]decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	if len(bases) == 0 || len(targets) == 0 {
		return map[string]map[string]decimal.Decimal{}, nil
	}

	q := url.Values{}
	q.Set("fsyms", strings.Join(bases, ","))
	q.Set("tsyms", strings.Join(targets, ","))

	body, err := c.get(ctx, c.multiURL, q)
	if err != nil {
		l.Error().Err(err).Msg("rates fetch failed")
		return nil, err
	}

	var prices map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &prices); err != nil {
		l.Error().Err(err).Send()
		return nil, unavailable(err)
	}

	return prices, nil
}

type upstreamError struct {
	Response string `json:"Response"`
	Message  string `json:"Message"`
}

func (c *Client) get(ctx context.Context, rawURL string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, unavailable(err)
	}

	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set("authorization", "Apikey "+c.apiKey)
	}

	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	zerolog.Ctx(ctx).Debug().
		Str("url", rawURL).
		Int("status_code", resp.StatusCode).
		Str("latency", time.Since(start).String()).
		Msg("rate api call")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, unavailable(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var ue upstreamError
	if json.Unmarshal(body, &ue) == nil && ue.Response == "Error" {
		return nil, unavailable(fmt.Errorf("upstream error: %s", ue.Message))
	}

	return body, nil
}
