// Package agingdelivery manages delivery layer of receivables aging.
package agingdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/agingservice"
	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/exportpkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Service provides service layer interface needed by aging delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package agingdelivery
type Service interface {
	Report(ctx context.Context, tenantID string, asOf time.Time) (domain.AgingReport, error)
}

// Handler facilitates aging delivery layer logic.
type Handler struct {
	service Service
	now     func() time.Time
}

// NewHandler returns aging handler.
func NewHandler(as Service) Handler {
	return Handler{service: as, now: time.Now}
}

type data struct {
	Aging domain.AgingReport `json:"aging"`
}

type reportRequest struct {
	AsOf string `form:"as_of"`
}

// respondError writes err with its matching status code.
func respondError(gctx *gin.Context, err error) {
	var dqErr *domain.DataQualityError

	switch {
	case errors.As(err, &dqErr):
		gctx.JSON(http.StatusUnprocessableEntity, web.ErrorWithDetails(domain.ErrDataQuality, dqErr.Issues))
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidAmount):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

func (h *Handler) report(gctx *gin.Context) (domain.AgingReport, bool) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req reportRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return domain.AgingReport{}, false
	}

	asOf, err := domain.ParseAsOf(req.AsOf, h.now())
	if err != nil {
		l.Info().Err(err).Str("as_of", req.AsOf).Send()
		respondError(gctx, err)

		return domain.AgingReport{}, false
	}

	report, err := h.service.Report(ctx, middleware.Payload(gctx).TenantID, asOf)
	if err != nil {
		respondError(gctx, err)
		return domain.AgingReport{}, false
	}

	return report, true
}

// Get handles http request to age the tenant's open invoices.
func (h *Handler) Get(gctx *gin.Context) {
	report, ok := h.report(gctx)
	if !ok {
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{report}})
}

// Export handles http request to download the aging report as CSV.
func (h *Handler) Export(gctx *gin.Context) {
	report, ok := h.report(gctx)
	if !ok {
		return
	}

	filename := "aging-" + report.AsOf.Format(domain.DateLayout) + ".csv"

	gctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	gctx.Header("Content-Type", "text/csv")
	gctx.Status(http.StatusOK)

	if err := exportpkg.WriteAgingCSV(gctx.Writer, report); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
	}
}

type bucketRequest struct {
	AsOf     string                 `json:"as_of"`
	Invoices []domain.InvoiceParams `json:"invoices" binding:"dive"`
}

// Bucket handles http request to age posted invoices.
func (h *Handler) Bucket(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req bucketRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	asOf, err := domain.ParseAsOf(req.AsOf, h.now())
	if err != nil {
		respondError(gctx, err)
		return
	}

	invoices := make([]domain.Invoice, 0, len(req.Invoices))

	for _, p := range req.Invoices {
		inv, err := p.Invoice()
		if err != nil {
			l.Info().Err(err).Str("invoice_id", p.ID).Send()
			respondError(gctx, err)

			return
		}

		invoices = append(invoices, inv)
	}

	report, err := agingservice.Bucket(invoices, asOf)
	if err != nil {
		l.Info().Err(err).Send()
		respondError(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{report}})
}
