package creditservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/randompkg"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name          string
		limit         string
		balance       string
		wantAvailable string
		wantWithin    bool
		wantUtil      string
	}{
		{
			name:          "OverLimit",
			limit:         "5000",
			balance:       "5300",
			wantAvailable: "-300",
			wantWithin:    false,
			wantUtil:      "106",
		},
		{
			name:          "AtLimit",
			limit:         "1000",
			balance:       "1000",
			wantAvailable: "0",
			wantWithin:    true,
			wantUtil:      "100",
		},
		{
			name:          "UnderLimit",
			limit:         "3000",
			balance:       "1000",
			wantAvailable: "2000",
			wantWithin:    true,
			wantUtil:      "33.33",
		},
		{
			name:          "NegativeLimit",
			limit:         "-100",
			balance:       "0",
			wantAvailable: "-100",
			wantWithin:    false,
			wantUtil:      "0",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := domain.CreditProfile{
				CustomerID:     randompkg.CustomerID(),
				CreditLimit:    decimal.RequireFromString(tc.limit),
				CurrentBalance: decimal.RequireFromString(tc.balance),
			}

			got := Evaluate(p)

			require.Equal(t, p.CustomerID, got.CustomerID)
			require.True(t, got.AvailableCredit.Equal(decimal.RequireFromString(tc.wantAvailable)),
				"available credit = %v, want %v", got.AvailableCredit, tc.wantAvailable)
			require.Equal(t, tc.wantWithin, got.WithinLimit)
			require.True(t, got.UtilizationPct.Equal(decimal.RequireFromString(tc.wantUtil)),
				"utilization = %v, want %v", got.UtilizationPct, tc.wantUtil)
		})
	}
}

func TestEvaluateIdentity(t *testing.T) {
	for i := 0; i < 50; i++ {
		p := domain.CreditProfile{
			CustomerID:     randompkg.CustomerID(),
			CreditLimit:    randompkg.Decimal(0, 10_000),
			CurrentBalance: randompkg.Decimal(0, 15_000),
		}

		got := Evaluate(p)

		require.True(t, got.AvailableCredit.Add(got.CurrentBalance).Equal(p.CreditLimit),
			"available %v + balance %v != limit %v", got.AvailableCredit, got.CurrentBalance, p.CreditLimit)
	}
}

func TestEvaluateCustomer(t *testing.T) {
	tenantID := randompkg.TenantID()
	profile := domain.CreditProfile{
		CustomerID:     randompkg.CustomerID(),
		CreditLimit:    decimal.NewFromInt(5000),
		CurrentBalance: decimal.NewFromInt(5300),
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.CreditEvaluation, err error)
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetProfile(gomock.Any(), gomock.Eq(tenantID), gomock.Eq(profile.CustomerID)).
					Times(1).
					Return(profile, nil)
			},
			checkResponse: func(got domain.CreditEvaluation, err error) {
				require.NoError(t, err)
				require.Equal(t, Evaluate(profile), got)
			},
		},
		{
			name: "NotFound",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetProfile(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.CreditProfile{}, domain.ErrCustomerNotFound)
			},
			checkResponse: func(got domain.CreditEvaluation, err error) {
				require.ErrorIs(t, err, domain.ErrCustomerNotFound)
				require.Empty(t, got)
			},
		},
		{
			name: "InternalError",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetProfile(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.CreditProfile{}, errorspkg.ErrInternal)
			},
			checkResponse: func(got domain.CreditEvaluation, err error) {
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo)
			got, err := s.EvaluateCustomer(context.Background(), tenantID, profile.CustomerID)
			tc.checkResponse(got, err)
		})
	}
}
