// Package walletdelivery manages delivery layer of wallets.
package walletdelivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/go-petr/crypto-wallet/internal/domain"
	"github.com/go-petr/crypto-wallet/pkg/web"
)

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	Create(ctx context.Context, name string) (domain.Wallet, error)
	Update(ctx context.Context, id int64, name string) (domain.Wallet, error)
	Get(ctx context.Context, id int64) (domain.Wallet, error)
	List(ctx context.Context, page, size int, orders []domain.WalletOrder) (domain.Page[domain.Wallet], error)
	Delete(ctx context.Context, id int64) (domain.Wallet, error)
	Add(ctx context.Context, id int64, arg domain.AddParams) (domain.Wallet, error)
	Transfer(ctx context.Context, id int64, arg domain.TransferParams) (domain.Wallet, error)
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

// Register mounts the wallet routes on r.
func (h *Handler) Register(r gin.IRouter) {
	g := r.Group("/wallet")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/add", h.Add)
	g.POST("/:id/transfer", h.Transfer)
}

type nameRequest struct {
	Name string `json:"name"`
}

type idRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Create handles http request to create wallet.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req nameRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	wallet, err := h.service.Create(ctx, req.Name)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.Header("Location", fmt.Sprintf("/wallet/%d", wallet.ID))
	gctx.JSON(http.StatusCreated, wallet)
}

// Update handles http request to rename wallet.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	var req nameRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	wallet, err := h.service.Update(ctx, uri.ID, req.Name)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, wallet)
}

// Get handles http request to get wallet.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	wallet, err := h.service.Get(ctx, uri.ID)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, wallet)
}

// List handles http request to list wallets page by page.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var q web.PageQuery
	if err := gctx.ShouldBindQuery(&q); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	sorts := web.ParseSort(q.Sort)
	orders := make([]domain.WalletOrder, 0, len(sorts))

	for _, s := range sorts {
		o, err := domain.ParseWalletOrder(s.Field, s.Direction)
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

// Delete handles http request to delete wallet.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	wallet, err := h.service.Delete(ctx, uri.ID)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, wallet)
}

type addRequest struct {
	FiatCurrencyFrom string           `json:"fiatCurrencyFrom" binding:"required_without=CurrencyFrom"`
	CurrencyFrom     string           `json:"currencyFrom"`
	CryptoCurrencyTo string           `json:"cryptoCurrencyTo" binding:"required_without=CurrencyTo"`
	CurrencyTo       string           `json:"currencyTo"`
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// Add handles http request to convert a fiat amount into a wallet crypto balance.
func (h *Handler) Add(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	var req addRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	arg := domain.AddParams{
		CurrencyFrom: firstNonEmpty(req.FiatCurrencyFrom, req.CurrencyFrom),
		CurrencyTo:   firstNonEmpty(req.CryptoCurrencyTo, req.CurrencyTo),
		Amount:       *req.Amount,
	}

	wallet, err := h.service.Add(ctx, uri.ID, arg)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, wallet)
}

type transferRequest struct {
	CryptoCurrencyFrom  string           `json:"cryptoCurrencyFrom" binding:"required_without=CurrencyFrom"`
	CurrencyFrom        string           `json:"currencyFrom"`
	CryptoCurrencyTo    string           `json:"cryptoCurrencyTo" binding:"required_without=CurrencyTo"`
	CurrencyTo          string           `json:"currencyTo"`
	Amount              *decimal.Decimal `json:"amount" binding:"required"`
	DestinationWalletID int64            `json:"destinationWalletId" binding:"required,min=1"`
}

// Transfer handles http request to move crypto between wallet balances.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.RespondBindingError(gctx, err)
		return
	}

	arg := domain.TransferParams{
		CurrencyFrom:        firstNonEmpty(req.CryptoCurrencyFrom, req.CurrencyFrom),
		CurrencyTo:          firstNonEmpty(req.CryptoCurrencyTo, req.CurrencyTo),
		Amount:              *req.Amount,
		DestinationWalletID: req.DestinationWalletID,
	}

	wallet, err := h.service.Transfer(ctx, uri.ID, arg)
	if err != nil {
		web.RespondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, wallet)
}
