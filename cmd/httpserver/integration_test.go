//go:build integration

package httpserver_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-books/cmd/httpserver"
	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/integrationtest"
	"github.com/go-petr/pet-books/internal/integrationtest/helpers"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/randompkg"
	"github.com/go-petr/pet-books/pkg/tokenpkg"
)

func do(t *testing.T, server *httpserver.Server, method, path, body string, subject tokenpkg.Subject) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	err := middleware.AddAuthorization(req, server.TokenMaker, middleware.AuthTypeBearer, subject, time.Minute)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var resp struct {
		Data T `json:"data"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), recorder.Body.String())

	return resp.Data
}

func TestCustomerStatement(t *testing.T) {
	server := integrationtest.SetupServer(t)
	tenantID := randompkg.TenantID()
	client := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleClient, TenantID: tenantID}

	profile := helpers.SeedCreditProfile(t, server.DB, tenantID)
	current := helpers.SeedInvoice(t, server.DB, tenantID, profile.CustomerID, 0)
	late := helpers.SeedInvoice(t, server.DB, tenantID, profile.CustomerID, 45)

	recorder := do(t, server, http.MethodGet, "/customers/"+profile.CustomerID+"/statement", "", client)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got := decode[struct {
		Statement domain.CustomerStatement `json:"statement"`
	}](t, recorder).Statement

	require.Equal(t, profile.CustomerID, got.CustomerID)
	require.True(t, got.Credit.AvailableCredit.Equal(profile.CreditLimit.Sub(profile.CurrentBalance)))
	require.True(t, got.Aging.Current.Equal(current.Amount))
	require.True(t, got.Aging.D60.Equal(late.Amount))
	require.True(t, got.Aging.TotalDue.Equal(current.Amount.Add(late.Amount)))

	// Another tenant cannot see the customer.
	other := tokenpkg.Subject{Username: client.Username, Role: tokenpkg.RoleClient, TenantID: randompkg.TenantID()}
	recorder = do(t, server, http.MethodGet, "/customers/"+profile.CustomerID+"/statement", "", other)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAgingExport(t *testing.T) {
	server := integrationtest.SetupServer(t)
	tenantID := randompkg.TenantID()
	client := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleClient, TenantID: tenantID}

	helpers.SeedInvoices(t, server.DB, tenantID, randompkg.CustomerID(), 4)
	helpers.SeedInvoices(t, server.DB, tenantID, randompkg.CustomerID(), 2)

	recorder := do(t, server, http.MethodGet, "/aging/export", "", client)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	require.Contains(t, recorder.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[3], "TOTAL,"))
}

func TestReconciliationToggle(t *testing.T) {
	server := integrationtest.SetupServer(t)
	tenantID := randompkg.TenantID()
	admin := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleAdmin, TenantID: tenantID}
	client := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleClient, TenantID: tenantID}

	matched := helpers.SeedReconTransaction(t, server.DB, tenantID, true)
	helpers.SeedReconTransaction(t, server.DB, tenantID, false)

	path := fmt.Sprintf("/reconciliation/transactions/%d/toggle", matched.ID)

	recorder := do(t, server, http.MethodPost, path, "", client)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = do(t, server, http.MethodPost, path, "", admin)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got := decode[struct {
		Reconciliation domain.Reconciliation `json:"reconciliation"`
	}](t, recorder).Reconciliation

	require.Equal(t, 0, got.Summary.MatchedCount)
	require.Equal(t, 2, got.Summary.UnmatchedCount)

	recorder = do(t, server, http.MethodPost, "/reconciliation/transactions/999999999/toggle", "", admin)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCurrenciesCached(t *testing.T) {
	server := integrationtest.SetupServer(t)
	tenantID := randompkg.TenantID()
	client := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleClient, TenantID: tenantID}

	helpers.SeedRateTable(t, server.DB, tenantID)

	recorder := do(t, server, http.MethodPost, "/currencies/convert", `{"amount":"100","from":"USD","to":"EUR"}`, client)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got := decode[struct {
		Conversion domain.Conversion `json:"conversion"`
	}](t, recorder).Conversion
	require.True(t, got.Result.Equal(decimal.RequireFromString("92.36")), "result = %v", got.Result)

	// The rate table is served from the cache until it expires.
	_, err := server.DB.Exec(`UPDATE currency_rates SET exchange_rate_to_base = 2 WHERE tenant_id = $1 AND code = 'EUR'`, tenantID)
	require.NoError(t, err)

	recorder = do(t, server, http.MethodPost, "/currencies/convert", `{"amount":"100","from":"USD","to":"EUR"}`, client)
	require.Equal(t, http.StatusOK, recorder.Code)

	got = decode[struct {
		Conversion domain.Conversion `json:"conversion"`
	}](t, recorder).Conversion
	require.True(t, got.Result.Equal(decimal.RequireFromString("92.36")), "result = %v", got.Result)
}

func TestCurrencyImportInvalidatesCache(t *testing.T) {
	server := integrationtest.SetupServer(t)
	tenantID := randompkg.TenantID()
	client := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleClient, TenantID: tenantID}
	admin := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleAdmin, TenantID: tenantID}

	helpers.SeedRateTable(t, server.DB, tenantID)

	convert := func() decimal.Decimal {
		t.Helper()

		recorder := do(t, server, http.MethodPost, "/currencies/convert", `{"amount":"100","from":"USD","to":"EUR"}`, client)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		return decode[struct {
			Conversion domain.Conversion `json:"conversion"`
		}](t, recorder).Conversion.Result
	}

	// Warm the cache.
	got := convert()
	require.True(t, got.Equal(decimal.RequireFromString("92.36")), "result = %v", got)

	body := `{"symbol":"€","exchange_rate_to_base":"0.5","position":1}`

	recorder := do(t, server, http.MethodPut, "/currencies/EUR", body, client)
	require.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = do(t, server, http.MethodPut, "/currencies/EUR", body, admin)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got = convert()
	require.True(t, got.Equal(decimal.RequireFromString("50")), "result = %v", got)
}
