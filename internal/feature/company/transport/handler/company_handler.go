// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/company/domain/entity"
	"stock_dashboard/internal/feature/company/transport/http/dto"
	"stock_dashboard/internal/feature/company/usecase"
	"stock_dashboard/internal/platform/http/apierror"
)

const (
	MsgSearchFailed      = "検索に失敗しました"
	MsgOverviewFailed    = "企業情報の取得に失敗しました"
	MsgStockPricesFailed = "株価データの取得に失敗しました"
)

// CompanyUsecase は企業情報のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CompanyUsecase interface {
	Search(ctx context.Context, query string, limit int) ([]entity.CompanySearchResult, error)
	Overview(ctx context.Context, stockCode string) (*usecase.Overview, error)
	StockPrices(ctx context.Context, stockCode, period string) (*entity.StockPrices, error)
}

// CompanyHandler は企業情報のHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler はCompanyHandlerの新しいインスタンスを生成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Search は企業を検索します。
//
// エンドポイント例:
// GET /api/companies/search?q=トヨタ&limit=20
func (h *CompanyHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.Warn("search query binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}

	results, err := h.uc.Search(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		apierror.Write(c, err, MsgSearchFailed)
		return
	}
	out := make([]dto.CompanyItem, 0, len(results))
	for _, r := range results {
		out = append(out, dto.CompanyItem{ID: r.ID, StockCode: r.StockCode, Name: r.Name, Industry: r.Industry})
	}
	c.JSON(http.StatusOK, out)
}

// Overview は企業情報・決算データ・健全性評価・チャート用データをまとめて返します。
//
// エンドポイント例:
// GET /api/companies/7203/overview
func (h *CompanyHandler) Overview(c *gin.Context) {
	ov, err := h.uc.Overview(c.Request.Context(), c.Param("code"))
	if err != nil {
		apierror.Write(c, err, MsgOverviewFailed)
		return
	}
	c.JSON(http.StatusOK, ov)
}

// StockPrices は株価系列を返します。
//
// エンドポイント例:
// GET /api/companies/7203/stock-prices?period=1y
func (h *CompanyHandler) StockPrices(c *gin.Context) {
	var q dto.StockPricesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		slog.Warn("stock prices query binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}

	prices, err := h.uc.StockPrices(c.Request.Context(), c.Param("code"), q.Period)
	if err != nil {
		apierror.Write(c, err, MsgStockPricesFailed)
		return
	}
	c.JSON(http.StatusOK, prices)
}
