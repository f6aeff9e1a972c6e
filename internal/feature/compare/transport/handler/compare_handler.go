// Package handler はcompareフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/feature/compare/transport/http/dto"
	"stock_dashboard/internal/feature/compare/usecase"
	"stock_dashboard/internal/platform/http/apierror"
)

// MsgCompareFailed は比較の取得に失敗した場合の既定メッセージです。
const MsgCompareFailed = "比較データの取得に失敗しました"

// CompareUsecase は資産比較のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CompareUsecase interface {
	Compare(ctx context.Context, assets []entity.AssetSymbol, period entity.Period, startDate string) (*usecase.ComparisonView, error)
}

// CompareHandler は資産比較のHTTPリクエストを処理します。
type CompareHandler struct {
	uc CompareUsecase
}

// NewCompareHandler はCompareHandlerの新しいインスタンスを生成します。
func NewCompareHandler(uc CompareUsecase) *CompareHandler {
	return &CompareHandler{uc: uc}
}

// Compare は複数資産のパフォーマンスを比較します。
//
// エンドポイント例:
// POST /api/compare {"assets":[{"symbol":"7203","asset_type":"jp_stock"}],"period":"1y"}
func (h *CompareHandler) Compare(c *gin.Context) {
	var req dto.CompareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("compare request binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}

	assets := make([]entity.AssetSymbol, 0, len(req.Assets))
	for _, a := range req.Assets {
		assets = append(assets, entity.AssetSymbol{
			Symbol:    a.Symbol,
			AssetType: entity.AssetType(a.AssetType),
			Name:      a.Name,
		})
	}

	view, err := h.uc.Compare(c.Request.Context(), assets, entity.Period(req.Period), req.StartDate)
	if err != nil {
		apierror.Write(c, err, MsgCompareFailed)
		return
	}
	c.JSON(http.StatusOK, view)
}
