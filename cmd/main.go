// Package main runs the crypto wallet API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/crypto-wallet/cmd/httpserver"
	"github.com/go-petr/crypto-wallet/internal/middleware"
	"github.com/go-petr/crypto-wallet/pkg/configpkg"
	"github.com/go-petr/crypto-wallet/pkg/dbpkg"
	"github.com/go-petr/crypto-wallet/pkg/redispkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithContext(ctx)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	cache, err := redispkg.Setup(ctx, config.RedisAddress, config.RedisPassword, config.RedisDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to redis")
	}

	if config.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := httpserver.New(db, cache, logger, config)

	if err := server.Currencies.Seed(ctx, config.FiatCurrencies, config.CryptoCurrencies); err != nil {
		logger.Fatal().Err(err).Msg("cannot seed supported currencies")
	}

	go server.Currencies.RunFlusher(ctx, config.CurrencyCacheTTL)

	httpServer := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logger.Info().Str("address", config.ServerAddress).Msg("CRYPTO WALLET API SERVER HAS STARTED")

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("cannot start server")
	}

	<-stopped

	_ = cache.Close()
	_ = db.Close()

	logger.Info().Msg("server stopped")
}
