// Package creditdelivery manages delivery layer of customer credit.
package creditdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/creditservice"
	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Service provides service layer interface needed by credit delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package creditdelivery
type Service interface {
	EvaluateCustomer(ctx context.Context, tenantID, customerID string) (domain.CreditEvaluation, error)
}

// Handler facilitates credit delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns credit handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

type data struct {
	Credit domain.CreditEvaluation `json:"credit"`
}

type getRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Get handles http request to evaluate a stored customer's credit.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	authPayload := middleware.Payload(gctx)

	eval, err := h.service.EvaluateCustomer(ctx, authPayload.TenantID, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{eval}})
}

// Evaluate handles http request to evaluate a posted credit profile.
func (h *Handler) Evaluate(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req domain.CreditProfileParams
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.BindErrorMsg(err)})

		return
	}

	profile, err := req.Profile()
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{creditservice.Evaluate(profile)}})
}
