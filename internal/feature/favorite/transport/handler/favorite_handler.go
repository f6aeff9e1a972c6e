// Package handler はfavoriteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/favorite/domain/entity"
	"stock_dashboard/internal/feature/favorite/transport/http/dto"
	"stock_dashboard/internal/feature/favorite/usecase"
	"stock_dashboard/internal/platform/http/apierror"
)

// MsgFavoriteFailed はお気に入り操作に失敗した場合の既定メッセージです。
const MsgFavoriteFailed = "お気に入りの操作に失敗しました"

// FavoriteUsecase はお気に入り操作のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FavoriteUsecase interface {
	List(ctx context.Context) ([]entity.FavoriteWithCompany, error)
	Add(ctx context.Context, companyID int64) ([]entity.FavoriteWithCompany, error)
	Remove(ctx context.Context, id int64) ([]entity.FavoriteWithCompany, error)
	RemoveByCompany(ctx context.Context, companyID int64) ([]entity.FavoriteWithCompany, error)
	Status(ctx context.Context, companyID int64) (*usecase.Status, error)
	Toggle(ctx context.Context, companyID int64) (*usecase.Status, error)
}

// FavoriteHandler はお気に入りのHTTPリクエストを処理します。
type FavoriteHandler struct {
	uc FavoriteUsecase
}

// NewFavoriteHandler はFavoriteHandlerの新しいインスタンスを生成します。
func NewFavoriteHandler(uc FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// List はGET /api/favorites を処理します。
func (h *FavoriteHandler) List(c *gin.Context) {
	h.respond(c, http.StatusOK)(h.uc.List(c.Request.Context()))
}

// Create はPOST /api/favorites を処理します。
func (h *FavoriteHandler) Create(c *gin.Context) {
	var req dto.FavoriteReq
	if !bindFavoriteReq(c, &req) {
		return
	}
	h.respond(c, http.StatusCreated)(h.uc.Add(c.Request.Context(), req.CompanyID))
}

// Delete はDELETE /api/favorites/:id を処理します。
func (h *FavoriteHandler) Delete(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK)(h.uc.Remove(c.Request.Context(), id))
}

// DeleteByCompany はDELETE /api/favorites/by-company/:company_id を処理します。
func (h *FavoriteHandler) DeleteByCompany(c *gin.Context) {
	companyID, ok := parseParam(c, "company_id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK)(h.uc.RemoveByCompany(c.Request.Context(), companyID))
}

// Status はGET /api/favorites/status/:company_id を処理します。
func (h *FavoriteHandler) Status(c *gin.Context) {
	companyID, ok := parseParam(c, "company_id")
	if !ok {
		return
	}
	st, err := h.uc.Status(c.Request.Context(), companyID)
	if err != nil {
		apierror.Write(c, err, MsgFavoriteFailed)
		return
	}
	c.JSON(http.StatusOK, st)
}

// Toggle はPOST /api/favorites/toggle を処理します。
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req dto.FavoriteReq
	if !bindFavoriteReq(c, &req) {
		return
	}
	st, err := h.uc.Toggle(c.Request.Context(), req.CompanyID)
	if err != nil {
		apierror.Write(c, err, MsgFavoriteFailed)
		return
	}
	c.JSON(http.StatusOK, st)
}

// respond は一覧を返すユースケースの結果をDTOに変換して書き出す関数を返します。
func (h *FavoriteHandler) respond(c *gin.Context, status int) func([]entity.FavoriteWithCompany, error) {
	return func(favs []entity.FavoriteWithCompany, err error) {
		if err != nil {
			apierror.Write(c, err, MsgFavoriteFailed)
			return
		}
		out := make([]dto.FavoriteItem, 0, len(favs))
		for _, f := range favs {
			out = append(out, dto.FavoriteItem{
				ID:          f.ID,
				CompanyID:   f.CompanyID,
				StockCode:   f.StockCode,
				CompanyName: f.CompanyName,
				Industry:    f.Industry,
				CreatedAt:   f.CreatedAt,
			})
		}
		c.JSON(status, out)
	}
}

func bindFavoriteReq(c *gin.Context, req *dto.FavoriteReq) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		slog.Warn("favorite request binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid request"})
		return false
	}
	return true
}

func parseParam(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, apierror.Response{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}
