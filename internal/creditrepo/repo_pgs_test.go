//go:build integration

package creditrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/creditrepo"
	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/integrationtest"
	"github.com/go-petr/pet-books/internal/integrationtest/helpers"
	"github.com/go-petr/pet-books/pkg/configpkg"
	"github.com/go-petr/pet-books/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestGetProfile(t *testing.T) {
	tenantID := randompkg.TenantID()

	testCases := []struct {
		name        string
		tenantID    string
		wantProfile func(tx *sql.Tx) domain.CreditProfile
		wantErr     error
	}{
		{
			name:     "OK",
			tenantID: tenantID,
			wantProfile: func(tx *sql.Tx) domain.CreditProfile {
				return helpers.SeedCreditProfile(t, tx, tenantID)
			},
		},
		{
			name:     "OtherTenant",
			tenantID: randompkg.TenantID(),
			wantProfile: func(tx *sql.Tx) domain.CreditProfile {
				return helpers.SeedCreditProfile(t, tx, tenantID)
			},
			wantErr: domain.ErrCustomerNotFound,
		},
		{
			name:     "ErrCustomerNotFound",
			tenantID: tenantID,
			wantProfile: func(tx *sql.Tx) domain.CreditProfile {
				return domain.CreditProfile{CustomerID: randompkg.CustomerID()}
			},
			wantErr: domain.ErrCustomerNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			want := tc.wantProfile(tx)
			creditRepo := creditrepo.NewRepoPGS(tx)

			got, err := creditRepo.GetProfile(context.Background(), tc.tenantID, want.CustomerID)
			if err != tc.wantErr {
				t.Fatalf(`creditRepo.GetProfile(context.Background(), %v, %v) returned error: %v, want %v`,
					tc.tenantID, want.CustomerID, err, tc.wantErr)
			}

			if tc.wantErr != nil {
				return
			}

			if diff := cmp.Diff(want, got, helpers.EquateDecimal()); diff != "" {
				t.Errorf(`creditRepo.GetProfile(context.Background(), %v, %v) returned unexpected difference (-want +got):\n%s`,
					tc.tenantID, want.CustomerID, diff)
			}
		})
	}
}

func TestUpsert(t *testing.T) {
	tenantID := randompkg.TenantID()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	creditRepo := creditrepo.NewRepoPGS(tx)

	first := helpers.SeedCreditProfile(t, tx, tenantID)

	want := domain.CreditProfile{
		CustomerID:     first.CustomerID,
		CreditLimit:    decimal.NewFromInt(500),
		CurrentBalance: decimal.RequireFromString("750.25"),
	}

	got, err := creditRepo.Upsert(context.Background(), tenantID, want)
	if err != nil {
		t.Fatalf(`creditRepo.Upsert(context.Background(), %v, %+v) returned error: %v`, tenantID, want, err)
	}

	if diff := cmp.Diff(want, got, helpers.EquateDecimal()); diff != "" {
		t.Errorf(`creditRepo.Upsert returned unexpected difference (-want +got):\n%s`, diff)
	}

	stored, err := creditRepo.GetProfile(context.Background(), tenantID, want.CustomerID)
	if err != nil {
		t.Fatalf(`creditRepo.GetProfile(context.Background(), %v, %v) returned error: %v`, tenantID, want.CustomerID, err)
	}

	if diff := cmp.Diff(want, stored, helpers.EquateDecimal()); diff != "" {
		t.Errorf(`creditRepo.GetProfile after upsert returned unexpected difference (-want +got):\n%s`, diff)
	}
}
