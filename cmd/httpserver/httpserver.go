// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/internal/agingdelivery"
	"github.com/go-petr/pet-books/internal/agingservice"
	"github.com/go-petr/pet-books/internal/creditdelivery"
	"github.com/go-petr/pet-books/internal/creditrepo"
	"github.com/go-petr/pet-books/internal/creditservice"
	"github.com/go-petr/pet-books/internal/currencydelivery"
	"github.com/go-petr/pet-books/internal/currencyrepo"
	"github.com/go-petr/pet-books/internal/currencyservice"
	"github.com/go-petr/pet-books/internal/customerdelivery"
	"github.com/go-petr/pet-books/internal/customerservice"
	"github.com/go-petr/pet-books/internal/invoicerepo"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/internal/recondelivery"
	"github.com/go-petr/pet-books/internal/reconrepo"
	"github.com/go-petr/pet-books/internal/reconservice"
	"github.com/go-petr/pet-books/internal/stockdelivery"
	"github.com/go-petr/pet-books/internal/stockrepo"
	"github.com/go-petr/pet-books/internal/stockservice"
	"github.com/go-petr/pet-books/pkg/configpkg"
	"github.com/go-petr/pet-books/pkg/currencypkg"
	"github.com/go-petr/pet-books/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB         *sql.DB
	Engine     *gin.Engine
	Config     configpkg.Config
	TokenMaker tokenpkg.Maker
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// Rate tables are cached in redis when rdb is not nil.
func New(conn *sql.DB, rdb redis.Cmdable, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	tokenMaker, err := tokenpkg.NewMaker(config.TokenKind, config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	var ratesRepo currencyservice.Repo = currencyrepo.NewRepoPGS(conn)
	if rdb != nil {
		ratesRepo = currencyrepo.NewCachedRepo(ratesRepo, rdb, config.RateCacheTTL)
	}

	creditService := creditservice.New(creditrepo.NewRepoPGS(conn))
	agingService := agingservice.New(invoicerepo.NewRepoPGS(conn))
	reconService := reconservice.New(reconrepo.NewRepoPGS(conn))
	stockService := stockservice.New(stockrepo.NewRepoPGS(conn))
	currencyService := currencyservice.New(ratesRepo, currencyservice.NewFormatter(config.DefaultLocale, config.ISOMinorUnits))
	customerService := customerservice.New(creditService, agingService)

	creditHandler := creditdelivery.NewHandler(creditService)
	agingHandler := agingdelivery.NewHandler(agingService)
	reconHandler := recondelivery.NewHandler(reconService)
	stockHandler := stockdelivery.NewHandler(stockService)
	currencyHandler := currencydelivery.NewHandler(currencyService)
	customerHandler := customerdelivery.NewHandler(customerService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())
	engine.Use(middleware.SecureHeaders(config.IsProduction()))

	exportLimit := gin.HandlerFunc(func(gctx *gin.Context) { gctx.Next() })
	if config.ExportRateLimit > 0 {
		exportLimit = middleware.RateLimit(config.ExportRateLimit, config.ExportRateWindow)
	}

	authRoutes := engine.Group("/", middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/customers/:id/credit", creditHandler.Get)
	authRoutes.GET("/customers/:id/statement", customerHandler.Statement)
	authRoutes.POST("/credit/evaluate", creditHandler.Evaluate)

	authRoutes.GET("/aging", agingHandler.Get)
	authRoutes.GET("/aging/export", exportLimit, agingHandler.Export)
	authRoutes.POST("/aging", agingHandler.Bucket)

	authRoutes.GET("/reconciliation", reconHandler.Get)
	authRoutes.GET("/reconciliation/export", exportLimit, reconHandler.Export)

	adminRoutes := authRoutes.Group("/", middleware.RequireRole(tokenpkg.RoleAdmin))
	adminRoutes.POST("/reconciliation/transactions/:id/toggle", reconHandler.Toggle)
	adminRoutes.POST("/reconciliation/auto-match", reconHandler.AutoMatch)
	adminRoutes.PUT("/currencies/:code", currencyHandler.PutRate)

	authRoutes.GET("/inventory/low-stock", stockHandler.LowStock)

	authRoutes.GET("/currencies", currencyHandler.Rates)
	authRoutes.POST("/currencies/convert", currencyHandler.Convert)
	authRoutes.POST("/currencies/format", currencyHandler.Format)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", currencypkg.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	server := &Server{
		DB:         conn,
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
	}

	return server, nil
}
