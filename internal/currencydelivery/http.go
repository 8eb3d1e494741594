// Package currencydelivery manages delivery layer of currency conversion.
package currencydelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Service provides service layer interface needed by currency delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package currencydelivery
type Service interface {
	Rates(ctx context.Context, tenantID string) ([]domain.CurrencyRate, error)
	Convert(ctx context.Context, tenantID string, amount decimal.Decimal, from, to string) (domain.Conversion, error)
	Format(ctx context.Context, tenantID string, amount decimal.Decimal, code string) (string, error)
	PutRate(ctx context.Context, tenantID string, c domain.CurrencyRate, position int) error
}

// Handler facilitates currency delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns currency handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

func respondError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCurrency), errors.Is(err, domain.ErrInvalidAmount):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrNoBaseCurrency),
		errors.Is(err, domain.ErrMultipleBaseCurrencies),
		errors.Is(err, domain.ErrInvalidRate):
		gctx.JSON(http.StatusUnprocessableEntity, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type ratesData struct {
	Currencies []domain.CurrencyRate `json:"currencies"`
}

// Rates handles http request to list the tenant's currency table.
func (h *Handler) Rates(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rates, err := h.service.Rates(ctx, middleware.Payload(gctx).TenantID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: ratesData{rates}})
}

type convertRequest struct {
	Amount string `json:"amount" binding:"required"`
	From   string `json:"from" binding:"required,currency"`
	To     string `json:"to" binding:"required,currency"`
}

type convertData struct {
	Conversion domain.Conversion `json:"conversion"`
}

// Convert handles http request to convert an amount between two currencies.
func (h *Handler) Convert(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req convertRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondError(gctx, domain.ErrInvalidAmount)
		return
	}

	conv, err := h.service.Convert(ctx, middleware.Payload(gctx).TenantID, amount, req.From, req.To)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: convertData{conv}})
}

type formatRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

type formatData struct {
	Formatted string `json:"formatted"`
}

// Format handles http request to render an amount in a currency.
func (h *Handler) Format(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req formatRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondError(gctx, domain.ErrInvalidAmount)
		return
	}

	formatted, err := h.service.Format(ctx, middleware.Payload(gctx).TenantID, amount, req.Currency)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: formatData{formatted}})
}

type putRateURI struct {
	Code string `uri:"code" binding:"required,currency"`
}

type putRateRequest struct {
	Symbol             string `json:"symbol" binding:"required"`
	ExchangeRateToBase string `json:"exchange_rate_to_base" binding:"required"`
	IsBase             bool   `json:"is_base"`
	Position           int    `json:"position" binding:"min=0"`
}

type rateData struct {
	Currency domain.CurrencyRate `json:"currency"`
}

// PutRate handles http request to import one rate into the tenant's table.
func (h *Handler) PutRate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri putRateURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	var req putRateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	value, err := decimal.NewFromString(req.ExchangeRateToBase)
	if err != nil {
		respondError(gctx, domain.ErrInvalidRate)
		return
	}

	c := domain.CurrencyRate{
		Code:               uri.Code,
		Symbol:             req.Symbol,
		ExchangeRateToBase: value,
		IsBase:             req.IsBase,
	}

	if err := h.service.PutRate(ctx, middleware.Payload(gctx).TenantID, c, req.Position); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: rateData{c}})
}
