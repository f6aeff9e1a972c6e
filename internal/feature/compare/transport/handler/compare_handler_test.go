package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/feature/compare/usecase"
	"stock_dashboard/internal/platform/externalapi/a1pro"
	"stock_dashboard/internal/shared/validation"
)

// mockCompareUsecase はCompareUsecaseインターフェースのモック実装です。
type mockCompareUsecase struct {
	CompareFunc func(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error)
}

func (m *mockCompareUsecase) Compare(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, assets, period, startDate)
	}
	return &usecase.ComparisonView{}, nil
}

func TestCompareHandler_Compare(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			body: `{"assets":[{"symbol":"7203","asset_type":"jp_stock"},{"symbol":"BTC","asset_type":"crypto"}],"period":"3mo"}`,
			mockFunc: func(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error) {
				if len(assets) != 2 || assets[1].AssetType != entity.AssetTypeCrypto || period != entity.Period3Months {
					return nil, validation.New("unexpected input")
				}
				return usecase.BuildView(period, entity.CompareResponse{
					Assets: []entity.AssetPerformance{
						{Symbol: "7203", AssetType: entity.AssetTypeJPStock, Data: []entity.DataPoint{{Date: "2024-01-04", NormalizedValue: 100}}},
					},
				}), nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed json",
			body:           `{"assets":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name: "validation error from usecase",
			body: `{"assets":[]}`,
			mockFunc: func(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error) {
				return nil, validation.New(usecase.MsgAssetRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  usecase.MsgAssetRequired,
		},
		{
			name: "backend detail surfaced",
			body: `{"assets":[{"symbol":"ZZZZ","asset_type":"us_stock"}]}`,
			mockFunc: func(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error) {
				return nil, &a1pro.HTTPError{StatusCode: 400, Detail: "No data for ZZZZ"}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No data for ZZZZ",
		},
		{
			name: "backend down uses fallback",
			body: `{"assets":[{"symbol":"7203","asset_type":"jp_stock"}]}`,
			mockFunc: func(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error) {
				return nil, &a1pro.HTTPError{StatusCode: 503}
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  MsgCompareFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewCompareHandler(&mockCompareUsecase{CompareFunc: tt.mockFunc})
			router := gin.New()
			router.POST("/api/compare", h.Compare)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/api/compare", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, w.Body.String())
				return
			}
			var got map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, "3mo", got["period"])
			rows, ok := got["rows"].([]any)
			require.True(t, ok)
			require.Len(t, rows, 1)
			assert.Equal(t, map[string]any{"date": "2024-01-04", "7203": 100.0}, rows[0])
		})
	}
}
