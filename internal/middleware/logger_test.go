package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-books/pkg/configpkg"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	server := gin.New()
	server.Use(RequestLogger(logger))
	server.GET("/ping", func(gctx *gin.Context) {
		zerolog.Ctx(gctx.Request.Context()).Info().Msg("inside")
		gctx.Status(http.StatusNoContent)
	})

	t.Run("GeneratesRequestID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		server.ServeHTTP(recorder, request)

		requestID := recorder.Header().Get(RequestIDHeader)
		require.NotEmpty(t, requestID)

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		for _, line := range lines {
			var entry map[string]any
			require.NoError(t, json.Unmarshal(line, &entry))
			require.Equal(t, requestID, entry["request_id"])
		}

		var last map[string]any
		require.NoError(t, json.Unmarshal(lines[1], &last))
		require.EqualValues(t, http.StatusNoContent, last["status_code"])
		require.Equal(t, "/ping", last["path"])
	})

	t.Run("KeepsIncomingRequestID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		request.Header.Set(RequestIDHeader, "req-42")
		server.ServeHTTP(recorder, request)

		require.Equal(t, "req-42", recorder.Header().Get(RequestIDHeader))
		require.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}

func TestCreateLogger(t *testing.T) {
	prod := CreateLogger(configpkg.Config{Environment: "production"})
	require.Equal(t, zerolog.InfoLevel, prod.GetLevel())

	dev := CreateLogger(configpkg.Config{Environment: "development"})
	require.Equal(t, zerolog.TraceLevel, dev.GetLevel())
}
