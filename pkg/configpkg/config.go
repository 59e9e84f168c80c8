// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/go-petr/crypto-wallet/pkg/currencypkg"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver         string        `mapstructure:"DB_DRIVER"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	RedisAddress     string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	RateSingleURL    string        `mapstructure:"RATE_SINGLE_URL"`
	RateMultiURL     string        `mapstructure:"RATE_MULTI_URL"`
	RateAPIKey       string        `mapstructure:"RATE_API_KEY"`
	RateTimeout      time.Duration `mapstructure:"RATE_TIMEOUT"`
	CurrencyCacheTTL time.Duration `mapstructure:"CURRENCY_CACHE_TTL"`
	FiatCurrencies   []string      `mapstructure:"FIAT_CURRENCIES"`
	CryptoCurrencies []string      `mapstructure:"CRYPTO_CURRENCIES"`
	Environment      string        `mapstructure:"GO_ENV"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_SINGLE_URL", "https://min-api.cryptocompare.com/data/price")
	v.SetDefault("RATE_MULTI_URL", "https://min-api.cryptocompare.com/data/pricemulti")
	v.SetDefault("RATE_TIMEOUT", 10*time.Second)
	v.SetDefault("CURRENCY_CACHE_TTL", 24*time.Hour)
	v.SetDefault("FIAT_CURRENCIES", currencypkg.DefaultFiat)
	v.SetDefault("CRYPTO_CURRENCIES", currencypkg.DefaultCrypto)
	v.SetDefault("GO_ENV", "production")
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	c.FiatCurrencies = currencypkg.NormalizeAll(c.FiatCurrencies)
	c.CryptoCurrencies = currencypkg.NormalizeAll(c.CryptoCurrencies)

	if c.CurrencyCacheTTL <= 0 {
		return c, fmt.Errorf("CURRENCY_CACHE_TTL must be positive, got %s", c.CurrencyCacheTTL)
	}

	if c.RateTimeout <= 0 {
		return c, fmt.Errorf("RATE_TIMEOUT must be positive, got %s", c.RateTimeout)
	}

	return c, nil
}
