// Package currencyservice manages the registry of supported currencies.
package currencyservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/crypto-wallet/internal/currencycache"
	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/currencypkg"
)

// Repo provides data access layer interface needed by currency service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package currencyservice
type Repo interface {
	Seed(ctx context.Context, currencies []domain.SupportedCurrency) error
	List(ctx context.Context) ([]domain.SupportedCurrency, error)
}

// Cache stores currency lists between registry reads.
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.SupportedCurrency, bool, error)
	Set(ctx context.Context, key string, items []domain.SupportedCurrency, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service facilitates supported currency service layer logic.
type Service struct {
	repo  Repo
	cache Cache
	ttl   time.Duration
}

// New returns currency service. Cached lists expire after ttl.
func New(repo Repo, cache Cache, ttl time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// Seed stores the configured fiat and crypto codes in the registry and drops cached lists.
//
// A code listed as both fiat and crypto is registered as crypto.
func (s *Service) Seed(ctx context.Context, fiat, crypto []string) error {
	cryptoCodes := currencypkg.NormalizeAll(crypto)

	isCrypto := make(map[string]bool, len(cryptoCodes))
	for _, c := range cryptoCodes {
		isCrypto[c] = true
	}

	items := make([]domain.SupportedCurrency, 0, len(fiat)+len(cryptoCodes))

	for _, c := range currencypkg.NormalizeAll(fiat) {
		if isCrypto[c] {
			continue
		}

		items = append(items, domain.SupportedCurrency{Code: c})
	}

	for _, c := range cryptoCodes {
		items = append(items, domain.SupportedCurrency{Code: c, IsCrypto: true})
	}

	if err := s.repo.Seed(ctx, items); err != nil {
		return err
	}

	s.Flush(ctx)

	return nil
}

// ListFiat returns the supported fiat currencies.
func (s *Service) ListFiat(ctx context.Context) ([]domain.SupportedCurrency, error) {
	return s.list(ctx, currencycache.FiatKey, false)
}

// ListCrypto returns the supported crypto currencies.
func (s *Service) ListCrypto(ctx context.Context) ([]domain.SupportedCurrency, error) {
	return s.list(ctx, currencycache.CryptoKey, true)
}

func (s *Service) list(ctx context.Context, key string, crypto bool) ([]domain.SupportedCurrency, error) {
	l := zerolog.Ctx(ctx)

	items, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		l.Warn().Err(err).Str("key", key).Msg("currency cache read failed")
	}

	if ok {
		return items, nil
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items = make([]domain.SupportedCurrency, 0, len(all))

	for _, c := range all {
		if c.IsCrypto == crypto {
			items = append(items, c)
		}
	}

	if err := s.cache.Set(ctx, key, items, s.ttl); err != nil {
		l.Warn().Err(err).Str("key", key).Msg("currency cache write failed")
	}

	return items, nil
}

// Flush evicts the cached currency lists.
func (s *Service) Flush(ctx context.Context) {
	if err := s.cache.Delete(ctx, currencycache.FiatKey, currencycache.CryptoKey); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("currency cache flush failed")
	}
}

// RunFlusher flushes the cached lists every period until ctx is done.
func (s *Service) RunFlusher(ctx context.Context, period time.Duration) {
	if period <= 0 {
		zerolog.Ctx(ctx).Warn().Dur("period", period).Msg("currency cache flusher disabled")
		return
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Flush(ctx)
			zerolog.Ctx(ctx).Debug().Msg("currency cache flushed")
		}
	}
}
