// Package ratedelivery manages delivery layer of exchange rates.
package ratedelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/web"
)

// Service provides service layer interface needed by rate delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ratedelivery
type Service interface {
	List(ctx context.Context, page, size int, orders []domain.RateOrder) (domain.Page[domain.Rate], error)
}

// Handler facilitates rate delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns rate handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the rate routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/rate", h.List)
}

// List handles http request to list crypto exchange rates page by page.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var q web.PageQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	sorts := web.ParseSort(q.Sort)
	orders := make([]domain.RateOrder, 0, len(sorts))

	for _, s := range sorts {
		o, err := domain.ParseRateOrder(s.Field, s.Direction)
		if err != nil {
			web.RespondError(gctx, err)
			return
		}

		orders = append(orders, o)
	}

	page, err := h.service.List(ctx, q.Page, q.PageSize(), orders)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, page)
}
