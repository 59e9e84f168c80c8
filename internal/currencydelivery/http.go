// Package currencydelivery exposes the supported currency lists over http.
package currencydelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/web"
)

// Service provides service layer interface needed by currency delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package currencydelivery
type Service interface {
	ListFiat(ctx context.Context) ([]domain.SupportedCurrency, error)
	ListCrypto(ctx context.Context) ([]domain.SupportedCurrency, error)
}

// Handler facilitates currency delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns currency handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the currency routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/currency")
	g.GET("/fiat", h.ListFiat)
	g.GET("/crypto", h.ListCrypto)
}

// ListFiat handles http request to list supported fiat currencies.
func (h *Handler) ListFiat(gctx *gin.Context) {
	h.respond(gctx, h.service.ListFiat)
}

// ListCrypto handles http request to list supported crypto currencies.
func (h *Handler) ListCrypto(gctx *gin.Context) {
	h.respond(gctx, h.service.ListCrypto)
}

func (h *Handler) respond(gctx *gin.Context, list func(ctx context.Context) ([]domain.SupportedCurrency, error)) {
	currencies, err := list(gctx.Request.Context())
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, currencies)
}
