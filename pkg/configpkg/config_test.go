package configpkg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	return dir
}

func TestLoad(t *testing.T) {
	dir := writeEnv(t, `DB_DRIVER=postgres
DB_SOURCE=postgresql://localhost/books
SERVER_ADDRESS=0.0.0.0:8080
TOKEN_SYMMETRIC_KEY=12345678901234567890123456789012
TOKEN_KIND=jwt
GO_ENV=test
REDIS_ADDRESS=localhost:6379
RATE_CACHE_TTL=90s
ISO_MINOR_UNITS=true
DEFAULT_LOCALE=de-DE
EXPORT_RATE_LIMIT=5
`)

	c, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "postgres", c.DBDriver)
	require.Equal(t, "jwt", c.TokenKind)
	require.Equal(t, 90*time.Second, c.RateCacheTTL)
	require.True(t, c.ISOMinorUnits)
	require.Equal(t, "de-DE", c.DefaultLocale)
	require.Equal(t, 15*time.Minute, c.AccessTokenDuration)
	require.Equal(t, 5, c.ExportRateLimit)
	require.False(t, c.IsProduction())
}

func TestLoadDefaults(t *testing.T) {
	dir := writeEnv(t, "DB_DRIVER=postgres\n")

	c, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "paseto", c.TokenKind)
	require.Equal(t, 5*time.Minute, c.RateCacheTTL)
	require.False(t, c.ISOMinorUnits)
	require.Equal(t, "en-US", c.DefaultLocale)
	require.Equal(t, 10, c.ExportRateLimit)
	require.Equal(t, time.Minute, c.ExportRateWindow)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}
