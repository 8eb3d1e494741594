// Package recondelivery manages delivery layer of bank reconciliation.
package recondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/exportpkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Service provides service layer interface needed by reconciliation delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package recondelivery
type Service interface {
	Get(ctx context.Context, tenantID string) (domain.Reconciliation, error)
	Toggle(ctx context.Context, tenantID string, id int64) (domain.Reconciliation, error)
	AutoMatch(ctx context.Context, tenantID string) (domain.Reconciliation, []int64, error)
}

// Handler facilitates reconciliation delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns reconciliation handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type data struct {
	Reconciliation domain.Reconciliation `json:"reconciliation"`
	MatchedIDs     []int64               `json:"matched_ids,omitempty"`
}

// Get handles http request to list the reconciliation set with its summary.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rec, err := h.service.Get(ctx, middleware.Payload(gctx).TenantID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{Reconciliation: rec}})
}

// Export handles http request to download the reconciliation set as CSV.
func (h *Handler) Export(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rec, err := h.service.Get(ctx, middleware.Payload(gctx).TenantID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.Header("Content-Disposition", `attachment; filename="reconciliation.csv"`)
	gctx.Header("Content-Type", "text/csv")
	gctx.Status(http.StatusOK)

	if err := exportpkg.WriteReconCSV(gctx.Writer, rec); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
	}
}

type toggleRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Toggle handles http request to flip the matched flag of a transaction.
func (h *Handler) Toggle(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req toggleRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	rec, err := h.service.Toggle(ctx, middleware.Payload(gctx).TenantID, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{Reconciliation: rec}})
}

// AutoMatch handles http request to match every transaction whose bank and book amounts agree.
func (h *Handler) AutoMatch(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	rec, ids, err := h.service.AutoMatch(ctx, middleware.Payload(gctx).TenantID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{Reconciliation: rec, MatchedIDs: ids}})
}
