package creditdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-books/internal/domain"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/errorspkg"
	"github.com/go-petr/pet-books/pkg/randompkg"
	"github.com/go-petr/pet-books/pkg/tokenpkg"
	"github.com/go-petr/pet-books/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupServer(t *testing.T, service Service) (*gin.Engine, tokenpkg.Maker) {
	t.Helper()

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker returned error: %v", err)
	}

	handler := NewHandler(service)

	server := gin.New()
	server.Use(middleware.AuthMiddleware(tokenMaker))
	server.GET("/customers/:id/credit", handler.Get)
	server.POST("/credit/evaluate", handler.Evaluate)

	return server, tokenMaker
}

func TestGet(t *testing.T) {
	subject := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleAdmin, TenantID: randompkg.TenantID()}
	customerID := randompkg.CustomerID()

	eval := domain.CreditEvaluation{
		CustomerID:      customerID,
		CreditLimit:     decimal.NewFromInt(5000),
		CurrentBalance:  decimal.NewFromInt(5300),
		AvailableCredit: decimal.NewFromInt(-300),
		WithinLimit:     false,
		UtilizationPct:  decimal.NewFromInt(106),
	}

	testCases := []struct {
		name           string
		withAuth       bool
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:     "OK",
			withAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					EvaluateCustomer(gomock.Any(), gomock.Eq(subject.TenantID), gomock.Eq(customerID)).
					Times(1).
					Return(eval, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:     "NoAuthorization",
			withAuth: false,
			buildStubs: func(service *MockService) {
				service.EXPECT().EvaluateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:     "NotFound",
			withAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					EvaluateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.CreditEvaluation{}, domain.ErrCustomerNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrCustomerNotFound.Error(),
		},
		{
			name:     "InternalServerError",
			withAuth: true,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					EvaluateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.CreditEvaluation{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server, tokenMaker := setupServer(t, service)

			req, err := http.NewRequest(http.MethodGet, "/customers/"+customerID+"/credit", nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if tc.withAuth {
				if err := middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, subject, time.Minute); err != nil {
					t.Fatalf("middleware.AddAuthorization returned error: %v", err)
				}
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &data{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got := res.Data.(*data).Credit
			if !got.AvailableCredit.Equal(eval.AvailableCredit) || got.WithinLimit != eval.WithinLimit {
				t.Errorf("res.Data.Credit = %+v, want %+v", got, eval)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	subject := tokenpkg.Subject{Username: randompkg.Owner(), Role: tokenpkg.RoleClient, TenantID: randompkg.TenantID()}

	testCases := []struct {
		name           string
		body           any
		wantStatusCode int
		wantError      string
		wantAvailable  string
		wantWithin     bool
	}{
		{
			name:           "WithinLimit",
			body:           domain.CreditProfileParams{CustomerID: "c1", CreditLimit: "5000", CurrentBalance: "1200.50"},
			wantStatusCode: http.StatusOK,
			wantAvailable:  "3799.5",
			wantWithin:     true,
		},
		{
			name:           "OverLimit",
			body:           domain.CreditProfileParams{CustomerID: "c2", CreditLimit: "5000", CurrentBalance: "5300"},
			wantStatusCode: http.StatusOK,
			wantAvailable:  "-300",
			wantWithin:     false,
		},
		{
			name:           "MissingLimit",
			body:           map[string]string{"current_balance": "10"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "CreditLimit field is required",
		},
		{
			name:           "InvalidAmount",
			body:           domain.CreditProfileParams{CreditLimit: "lots", CurrentBalance: "1"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server, tokenMaker := setupServer(t, NewMockService(ctrl))

			body, err := json.Marshal(tc.body)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/credit/evaluate", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err := middleware.AddAuthorization(req, tokenMaker, middleware.AuthTypeBearer, subject, time.Minute); err != nil {
				t.Fatalf("middleware.AddAuthorization returned error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &data{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got := res.Data.(*data).Credit
			if !got.AvailableCredit.Equal(decimal.RequireFromString(tc.wantAvailable)) {
				t.Errorf("AvailableCredit = %v, want %v", got.AvailableCredit, tc.wantAvailable)
			}

			if got.WithinLimit != tc.wantWithin {
				t.Errorf("WithinLimit = %v, want %v", got.WithinLimit, tc.wantWithin)
			}
		})
	}
}
