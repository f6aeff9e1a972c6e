// Package handler はportfolioフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/portfolio/domain/entity"
	"stock_dashboard/internal/feature/portfolio/transport/http/dto"
	"stock_dashboard/internal/feature/portfolio/usecase"
	"stock_dashboard/internal/platform/http/apierror"
	"stock_dashboard/internal/shared/confirm"
)

const (
	MsgLoadFailed   = "ポートフォリオの取得に失敗しました"
	MsgAddFailed    = "銘柄の追加に失敗しました"
	MsgUpdateFailed = "銘柄の更新に失敗しました"
	MsgDeleteFailed = "銘柄の削除に失敗しました"
)

// PortfolioUsecase はポートフォリオ操作のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PortfolioUsecase interface {
	Load(ctx context.Context) (*usecase.PortfolioView, error)
	Add(ctx context.Context, in entity.PortfolioCreate) (*usecase.PortfolioView, error)
	Update(ctx context.Context, id int64, in entity.PortfolioUpdate) (*usecase.PortfolioView, error)
	Delete(ctx context.Context, id int64, c confirm.Confirmer) (*usecase.PortfolioView, error)
}

// PortfolioHandler はポートフォリオのHTTPリクエストを処理します。
// 変更系のエンドポイントは再取得した最新のポートフォリオを返します。
type PortfolioHandler struct {
	uc PortfolioUsecase
}

// NewPortfolioHandler はPortfolioHandlerの新しいインスタンスを生成します。
func NewPortfolioHandler(uc PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

// List はGET /api/portfolio を処理します。
func (h *PortfolioHandler) List(c *gin.Context) {
	v, err := h.uc.Load(c.Request.Context())
	if err != nil {
		apierror.Write(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Create はPOST /api/portfolio を処理します。成功時は201を返します。
func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.PortfolioCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("portfolio create binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}
	v, err := h.uc.Add(c.Request.Context(), entity.PortfolioCreate{
		AssetType:     req.AssetType,
		Symbol:        req.Symbol,
		PurchaseDate:  req.PurchaseDate,
		PurchasePrice: req.PurchasePrice,
		Quantity:      req.Quantity,
	})
	if err != nil {
		apierror.Write(c, err, MsgAddFailed)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Update はPUT /api/portfolio/:id を処理します。
func (h *PortfolioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PortfolioUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("portfolio update binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}
	v, err := h.uc.Update(c.Request.Context(), id, entity.PortfolioUpdate{
		PurchaseDate:  req.PurchaseDate,
		PurchasePrice: req.PurchasePrice,
		Quantity:      req.Quantity,
	})
	if err != nil {
		apierror.Write(c, err, MsgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, v)
}

// Delete はDELETE /api/portfolio/:id?confirm=true を処理します。
// confirm=true が無い場合は削除せず409を返します。
func (h *PortfolioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var q dto.DeleteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return
	}
	v, err := h.uc.Delete(c.Request.Context(), id, confirm.Always(q.Confirm))
	if err != nil {
		apierror.Write(c, err, MsgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, v)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
