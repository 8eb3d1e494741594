// Package stockdelivery manages delivery layer of inventory replenishment.
package stockdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Service provides service layer interface needed by stock delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package stockdelivery
type Service interface {
	LowStock(ctx context.Context, tenantID string) ([]domain.LowStockItem, error)
}

// Handler facilitates stock delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns stock handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type data struct {
	Items []domain.LowStockItem `json:"items"`
}

// LowStock handles http request to list items at or below their reorder level.
func (h *Handler) LowStock(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	items, err := h.service.LowStock(ctx, middleware.Payload(gctx).TenantID)
	if err != nil {
		var dqErr *domain.DataQualityError
		if errors.As(err, &dqErr) {
			gctx.JSON(http.StatusUnprocessableEntity, web.ErrorWithDetails(domain.ErrDataQuality, dqErr.Issues))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{items}})
}
