// Package middleware provides gin middlewares shared by all routes.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-books/pkg/tokenpkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// Authorization header values and the gin context key of the verified payload.
const (
	AuthHeaderKey  = "authorization"
	AuthTypeBearer = "bearer"
	AuthPayloadKey = "authorization_payload"
)

// Authorization errors.
var (
	ErrAuthHeaderNotFound  = errors.New("authorization header is not provided")
	ErrBadAuthHeaderFormat = errors.New("invalid authorization header format")
	ErrUnsupportedAuthType = errors.New("unsupported authorization type")
	ErrForbidden           = errors.New("insufficient role")
)

// AddAuthorization issues a token for the subject and sets it on the request.
func AddAuthorization(
	request *http.Request,
	tokenMaker tokenpkg.Maker,
	authType string,
	subject tokenpkg.Subject,
	duration time.Duration,
) error {
	token, _, err := tokenMaker.CreateToken(subject, duration)
	if err != nil {
		return err
	}

	authHeader := fmt.Sprintf("%s %s", authType, token)
	request.Header.Set(AuthHeaderKey, authHeader)

	return nil
}

// AuthMiddleware verifies the bearer token and stores its payload in the gin context.
func AuthMiddleware(tokenMaker tokenpkg.Maker) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		l := zerolog.Ctx(gctx.Request.Context())

		authHeader := gctx.GetHeader(AuthHeaderKey)
		if len(authHeader) == 0 {
			l.Info().Err(ErrAuthHeaderNotFound).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrAuthHeaderNotFound))

			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			l.Info().Err(ErrBadAuthHeaderFormat).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrBadAuthHeaderFormat))

			return
		}

		authType := strings.ToLower(fields[0])
		if authType != AuthTypeBearer {
			l.Info().Err(ErrUnsupportedAuthType).Str("type", authType).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(ErrUnsupportedAuthType))

			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			l.Info().Err(err).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		gctx.Set(AuthPayloadKey, payload)
		gctx.Next()
	}
}

// RequireRole lets through only bearers with one of the given roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		payload := Payload(gctx)

		for _, r := range roles {
			if payload != nil && payload.Role == r {
				gctx.Next()
				return
			}
		}

		zerolog.Ctx(gctx.Request.Context()).Warn().Err(ErrForbidden).Send()
		gctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(ErrForbidden))
	}
}

// Payload returns the verified token payload of the request, or nil.
func Payload(gctx *gin.Context) *tokenpkg.Payload {
	v, ok := gctx.Get(AuthPayloadKey)
	if !ok {
		return nil
	}

	p, _ := v.(*tokenpkg.Payload)

	return p
}
