package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/shared/format"
	"stock_dashboard/internal/shared/validation"
)

// mockCompareBackend はCompareBackendインターフェースのモック実装です。
type mockCompareBackend struct {
	CompareFunc func(ctx context.Context, req entity.CompareRequest) (*entity.CompareResponse, error)
	calls       int
}

func (m *mockCompareBackend) Compare(ctx context.Context, req entity.CompareRequest) (*entity.CompareResponse, error) {
	m.calls++
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, req)
	}
	return &entity.CompareResponse{}, nil
}

func TestCompareUsecase_Compare(t *testing.T) {
	t.Parallel()

	var got entity.CompareRequest
	backend := &mockCompareBackend{CompareFunc: func(ctx context.Context, req entity.CompareRequest) (*entity.CompareResponse, error) {
		got = req
		return &entity.CompareResponse{
			StartDate: "2024-01-04",
			EndDate:   "2025-01-04",
			Assets: []entity.AssetPerformance{
				{Symbol: "7203", AssetType: entity.AssetTypeJPStock, Name: "トヨタ自動車", Data: points("2024-01-04", 100.0, "2024-01-05", 101.0), TotalReturn: 12.5},
				{Symbol: "BTC", AssetType: entity.AssetTypeCrypto, Data: points("2024-01-04", 100.0, "2024-01-06", 98.0), TotalReturn: -3.2, Volatility: format.Float(55.1)},
			},
			Ranking: []entity.RankingItem{
				{Rank: 1, Symbol: "7203", Name: "トヨタ自動車", AssetType: entity.AssetTypeJPStock, TotalReturn: 12.5},
				{Rank: 2, Symbol: "BTC", Name: "BTC", AssetType: entity.AssetTypeCrypto, TotalReturn: -3.2, Volatility: format.Float(55.1)},
			},
		}, nil
	}}
	uc := NewCompareUsecase(backend)

	view, err := uc.Compare(context.Background(), []entity.AssetSymbol{
		{Symbol: "7203", AssetType: entity.AssetTypeJPStock},
		{Symbol: " BTC ", AssetType: entity.AssetTypeCrypto},
	}, "", "")
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultPeriod, got.Period)
	assert.Equal(t, "BTC", got.Assets[1].Symbol)

	assert.Equal(t, entity.Period1Year, view.Period)
	assert.Equal(t, "2024-01-04", view.StartDate)
	assert.Equal(t, "2025-01-04", view.EndDate)
	assert.Len(t, view.Rows, 3)

	require.Len(t, view.Series, 2)
	assert.Equal(t, "トヨタ自動車", view.Series[0].Name)
	assert.Equal(t, Palette[0], view.Series[0].Color)
	assert.Equal(t, "BTC", view.Series[1].Name)
	assert.Equal(t, "暗号資産", view.Series[1].AssetTypeLabel)
	assert.Equal(t, Palette[1], view.Series[1].Color)

	require.Len(t, view.Ranking, 2)
	assert.Equal(t, 1, view.Ranking[0].Rank)
	assert.Equal(t, "+12.50%", view.Ranking[0].TotalReturnDisplay)
	assert.Equal(t, "-", view.Ranking[0].VolatilityDisplay)
	assert.True(t, view.Ranking[0].Positive)
	assert.Equal(t, "-3.20%", view.Ranking[1].TotalReturnDisplay)
	assert.Equal(t, "55.10%", view.Ranking[1].VolatilityDisplay)
	assert.False(t, view.Ranking[1].Positive)
}

// TestCompareUsecase_ValidationBeforeNetwork は検証エラー時にバックエンドを呼び出さないことを検証します。
func TestCompareUsecase_ValidationBeforeNetwork(t *testing.T) {
	t.Parallel()

	eleven := make([]entity.AssetSymbol, 0, MaxAssets+1)
	for i := range MaxAssets + 1 {
		eleven = append(eleven, entity.AssetSymbol{Symbol: fmt.Sprintf("S%d", i), AssetType: entity.AssetTypeUSStock})
	}
	one := []entity.AssetSymbol{{Symbol: "AAPL", AssetType: entity.AssetTypeUSStock}}

	tests := []struct {
		name      string
		assets    []entity.AssetSymbol
		period    entity.Period
		startDate string
		wantMsg   string
	}{
		{"no assets", nil, "", "", MsgAssetRequired},
		{"eleven assets", eleven, "", "", MsgTooManyAssets},
		{"blank symbol", []entity.AssetSymbol{{Symbol: "", AssetType: entity.AssetTypeFX}}, "", "", MsgSymbolRequired},
		{"unknown period", one, "2w", "", MsgInvalidPeriod},
		{"bad start date", one, entity.Period1Month, "2024/01/01", "開始日はYYYY-MM-DD形式で指定してください"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			backend := &mockCompareBackend{}
			uc := NewCompareUsecase(backend)

			view, err := uc.Compare(context.Background(), tt.assets, tt.period, tt.startDate)
			assert.Nil(t, view)
			var ve *validation.Error
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantMsg, ve.Message)
			assert.Zero(t, backend.calls)
		})
	}
}

func TestCompareUsecase_BackendError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("backend unavailable")
	uc := NewCompareUsecase(&mockCompareBackend{CompareFunc: func(ctx context.Context, req entity.CompareRequest) (*entity.CompareResponse, error) {
		return nil, wantErr
	}})

	_, err := uc.Compare(context.Background(), []entity.AssetSymbol{{Symbol: "USDJPY", AssetType: entity.AssetTypeFX}}, entity.Period6Months, "2024-01-01")
	assert.ErrorIs(t, err, wantErr)
}

func TestAssetTypeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "日本株", entity.AssetTypeJPStock.Label())
	assert.Equal(t, "米国株", entity.AssetTypeUSStock.Label())
	assert.Equal(t, "為替", entity.AssetTypeFX.Label())
	assert.Equal(t, "bond", entity.AssetType("bond").Label())
}
