// Package currencycache caches supported currency lists in redis.
package currencycache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/go-petr/crypto-wallet/internal/domain"
)

// Cache keys of the supported currency lists.
const (
	FiatKey   = "currencies:fiat"
	CryptoKey = "currencies:crypto"
)

// Redis stores supported currency lists as JSON values.
type Redis struct {
	client *redis.Client
}

// NewRedis returns a currency cache backed by the client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get returns the cached list under key. The bool is false on a cache miss.
func (r *Redis) Get(ctx context.Context, key string) ([]domain.SupportedCurrency, bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	var items []domain.SupportedCurrency
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, err
	}

	return items, true, nil
}

// Set caches items under key for ttl.
func (r *Redis) Set(ctx context.Context, key string, items []domain.SupportedCurrency, ttl time.Duration) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, raw, ttl).Err()
}

// Delete evicts the given keys.
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
