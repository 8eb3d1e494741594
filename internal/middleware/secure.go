package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
	"github.com/unrolled/secure"

	"github.com/go-petr/pet-books/pkg/tokenpkg"
	"github.com/go-petr/pet-books/pkg/web"
)

// ErrTooManyRequests is returned when a client exceeds its request quota.
var ErrTooManyRequests = errors.New("too many requests")

type payloadCtxKey struct{}

// SecureHeaders sets the security response headers of an API.
// In production plain http requests are redirected to https.
func SecureHeaders(production bool) gin.HandlerFunc {
	s := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'",
		SSLRedirect:           production,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	return func(gctx *gin.Context) {
		if err := s.Process(gctx.Writer, gctx.Request); err != nil {
			zerolog.Ctx(gctx.Request.Context()).Warn().Err(err).Msg("secure headers blocked request")
			gctx.Abort()

			return
		}

		// Redirected to https.
		if status := gctx.Writer.Status(); status > 300 && status < 399 {
			gctx.Abort()
		}
	}
}

// RateLimit allows requests per window for each user, falling back to the
// client ip for requests without a token payload.
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := httprate.Limit(requests, window,
		httprate.WithKeyFuncs(rateLimitKey),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			zerolog.Ctx(r.Context()).Info().Err(ErrTooManyRequests).Send()

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(web.Error(ErrTooManyRequests))
		}),
	)

	return func(gctx *gin.Context) {
		req := gctx.Request
		if p := Payload(gctx); p != nil {
			req = req.WithContext(context.WithValue(req.Context(), payloadCtxKey{}, p))
		}

		passed := false

		limiter(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			passed = true
		})).ServeHTTP(gctx.Writer, req)

		if !passed {
			gctx.Abort()
			return
		}

		gctx.Next()
	}
}

func rateLimitKey(r *http.Request) (string, error) {
	if p, ok := r.Context().Value(payloadCtxKey{}).(*tokenpkg.Payload); ok {
		return "user:" + p.TenantID + "/" + p.Username, nil
	}

	key, err := httprate.KeyByIP(r)
	if err != nil {
		return "", err
	}

	return "ip:" + key, nil
}
