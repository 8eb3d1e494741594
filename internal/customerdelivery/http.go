// Package customerdelivery manages delivery layer of customer statements.
package customerdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Service provides service layer interface needed by customer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	Statement(ctx context.Context, tenantID, customerID string, asOf time.Time) (domain.CustomerStatement, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
	now     func() time.Time
}

// NewHandler returns customer handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs, now: time.Now}
}

type data struct {
	Statement domain.CustomerStatement `json:"statement"`
}

type statementURI struct {
	ID string `uri:"id" binding:"required"`
}

type statementQuery struct {
	AsOf string `form:"as_of"`
}

// Statement handles http request to get the credit and aging position of a customer.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var (
		uri   statementURI
		query statementQuery
	)

	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	if err := gctx.ShouldBindQuery(&query); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	asOf, err := domain.ParseAsOf(query.AsOf, h.now())
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	st, err := h.service.Statement(ctx, middleware.Payload(gctx).TenantID, uri.ID, asOf)
	if err != nil {
		var dqErr *domain.DataQualityError

		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.As(err, &dqErr):
			gctx.JSON(http.StatusUnprocessableEntity, web.ErrorWithDetails(domain.ErrDataQuality, dqErr.Issues))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{st}})
}
