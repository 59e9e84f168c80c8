// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/go-petr/crypto-wallet/internal/currencycache"
	"github.com/go-petr/crypto-wallet/internal/currencydelivery"
	"github.com/go-petr/crypto-wallet/internal/currencyrepo"
	"github.com/go-petr/crypto-wallet/internal/currencyservice"
	"github.com/go-petr/crypto-wallet/internal/middleware"
	"github.com/go-petr/crypto-wallet/internal/ratedelivery"
	"github.com/go-petr/crypto-wallet/internal/rategateway"
	"github.com/go-petr/crypto-wallet/internal/rateservice"
	"github.com/go-petr/crypto-wallet/internal/walletdelivery"
	"github.com/go-petr/crypto-wallet/internal/walletrepo"
	"github.com/go-petr/crypto-wallet/internal/walletservice"
	"github.com/go-petr/crypto-wallet/pkg/configpkg"
)

// Server holds db and cache connections, handlers router and configuration.
type Server struct {
	DB         *sql.DB
	Cache      *redis.Client
	Engine     *gin.Engine
	Config     configpkg.Config
	Currencies *currencyservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, cache *redis.Client, logger zerolog.Logger, config configpkg.Config) *Server {
	currencyRepo := currencyrepo.NewRepoPGS(conn)
	walletRepo := walletrepo.NewRepoPGS(conn)
	rateGateway := rategateway.New(config)

	currencyService := currencyservice.New(currencyRepo, currencycache.NewRedis(cache), config.CurrencyCacheTTL)
	walletService := walletservice.New(walletRepo, currencyService, rateGateway)
	rateService := rateservice.New(currencyService, rateGateway)

	currencyHandler := currencydelivery.NewHandler(currencyService)
	walletHandler := walletdelivery.NewHandler(walletService)
	rateHandler := ratedelivery.NewHandler(rateService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	walletHandler.Register(engine)
	rateHandler.Register(engine)
	currencyHandler.Register(engine)

	return &Server{
		DB:         conn,
		Cache:      cache,
		Engine:     engine,
		Config:     config,
		Currencies: currencyService,
	}
}
