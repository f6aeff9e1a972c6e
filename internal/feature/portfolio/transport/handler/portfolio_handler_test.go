package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/portfolio/domain/entity"
	"stock_dashboard/internal/feature/portfolio/usecase"
	"stock_dashboard/internal/platform/externalapi/a1pro"
	"stock_dashboard/internal/platform/http/apierror"
	"stock_dashboard/internal/shared/confirm"
)

// mockPortfolioUsecase はPortfolioUsecaseインターフェースのモック実装です。
type mockPortfolioUsecase struct {
	LoadFunc   func(ctx context.Context) (*usecase.PortfolioView, error)
	AddFunc    func(ctx context.Context, in entity.PortfolioCreate) (*usecase.PortfolioView, error)
	UpdateFunc func(ctx context.Context, id int64, in entity.PortfolioUpdate) (*usecase.PortfolioView, error)
	DeleteFunc func(ctx context.Context, id int64, c confirm.Confirmer) (*usecase.PortfolioView, error)
}

func (m *mockPortfolioUsecase) Load(ctx context.Context) (*usecase.PortfolioView, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
}

func (m *mockPortfolioUsecase) Add(ctx context.Context, in entity.PortfolioCreate) (*usecase.PortfolioView, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, in)
	}
	return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
}

func (m *mockPortfolioUsecase) Update(ctx context.Context, id int64, in entity.PortfolioUpdate) (*usecase.PortfolioView, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
}

func (m *mockPortfolioUsecase) Delete(ctx context.Context, id int64, c confirm.Confirmer) (*usecase.PortfolioView, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, c)
	}
	return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
}

func setupPortfolioRouter(uc PortfolioUsecase) *gin.Engine {
	h := NewPortfolioHandler(uc)
	r := gin.New()
	r.GET("/api/portfolio", h.List)
	r.POST("/api/portfolio", h.Create)
	r.PUT("/api/portfolio/:id", h.Update)
	r.DELETE("/api/portfolio/:id", h.Delete)
	return r
}

// deleteHonoringConfirm はConfirmerの回答に従うDeleteFuncです。
func deleteHonoringConfirm(ctx context.Context, id int64, c confirm.Confirmer) (*usecase.PortfolioView, error) {
	ok, err := c.Confirm(ctx, usecase.DeletePrompt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, usecase.ErrDeleteCancelled
	}
	return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
}

func TestPortfolioHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		mock           *mockPortfolioUsecase
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "list",
			method:         http.MethodGet,
			url:            "/api/portfolio",
			mock:           &mockPortfolioUsecase{},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list backend failure",
			method: http.MethodGet,
			url:    "/api/portfolio",
			mock: &mockPortfolioUsecase{LoadFunc: func(ctx context.Context) (*usecase.PortfolioView, error) {
				return nil, &a1pro.HTTPError{StatusCode: 500}
			}},
			expectedStatus: http.StatusBadGateway,
			expectedError:  MsgLoadFailed,
		},
		{
			name:   "create",
			method: http.MethodPost,
			url:    "/api/portfolio",
			body:   `{"asset_type":"jp_stock","symbol":"7203","purchase_date":"2024-01-04","purchase_price":2500,"quantity":100}`,
			mock: &mockPortfolioUsecase{AddFunc: func(ctx context.Context, in entity.PortfolioCreate) (*usecase.PortfolioView, error) {
				if in.Symbol != "7203" || in.Quantity != 100 {
					return nil, errors.New("unexpected input")
				}
				return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
			}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create missing field",
			method:         http.MethodPost,
			url:            "/api/portfolio",
			body:           `{"asset_type":"jp_stock"}`,
			mock:           &mockPortfolioUsecase{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:   "update",
			method: http.MethodPut,
			url:    "/api/portfolio/3",
			body:   `{"quantity":200}`,
			mock: &mockPortfolioUsecase{UpdateFunc: func(ctx context.Context, id int64, in entity.PortfolioUpdate) (*usecase.PortfolioView, error) {
				if id != 3 || in.Quantity == nil || *in.Quantity != 200 || in.PurchaseDate != nil {
					return nil, errors.New("unexpected input")
				}
				return usecase.BuildView(nil, entity.PortfolioPerformance{}), nil
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update invalid id",
			method:         http.MethodPut,
			url:            "/api/portfolio/abc",
			body:           `{"quantity":200}`,
			mock:           &mockPortfolioUsecase{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid id",
		},
		{
			name:           "delete confirmed",
			method:         http.MethodDelete,
			url:            "/api/portfolio/3?confirm=true",
			mock:           &mockPortfolioUsecase{DeleteFunc: deleteHonoringConfirm},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "delete without confirmation",
			method:         http.MethodDelete,
			url:            "/api/portfolio/3",
			mock:           &mockPortfolioUsecase{DeleteFunc: deleteHonoringConfirm},
			expectedStatus: http.StatusConflict,
			expectedError:  apierror.MsgCancelled,
		},
		{
			name:   "delete not found",
			method: http.MethodDelete,
			url:    "/api/portfolio/99?confirm=true",
			mock: &mockPortfolioUsecase{DeleteFunc: func(ctx context.Context, id int64, c confirm.Confirmer) (*usecase.PortfolioView, error) {
				return nil, &a1pro.HTTPError{StatusCode: 404, Detail: "Portfolio item not found"}
			}},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Portfolio item not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := setupPortfolioRouter(tt.mock)
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"summary"`)
			}
		})
	}
}
