// Package router はBFFのHTTPルーティングを定義します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/platform/externalapi/a1pro"
	platformhandler "stock_dashboard/internal/platform/http/handler"
)

// NewRouter はミドルウェアとルートを登録したgin.Engineを生成します。
func NewRouter(h *di.Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドからの呼び出しを許可
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(requestID())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.GET("/readyz", h.Ready.Ready)

	api := r.Group("/api")
	{
		companies := api.Group("/companies")
		companies.GET("/search", h.Company.Search)
		companies.GET("/:code/overview", h.Company.Overview)
		companies.GET("/:code/stock-prices", h.Company.StockPrices)

		api.POST("/compare", h.Compare.Compare)

		portfolio := api.Group("/portfolio")
		portfolio.GET("", h.Portfolio.List)
		portfolio.POST("", h.Portfolio.Create)
		portfolio.PUT("/:id", h.Portfolio.Update)
		// confirm=true が必要
		portfolio.DELETE("/:id", h.Portfolio.Delete)

		favorites := api.Group("/favorites")
		favorites.GET("", h.Favorite.List)
		favorites.POST("", h.Favorite.Create)
		favorites.POST("/toggle", h.Favorite.Toggle)
		favorites.GET("/status/:company_id", h.Favorite.Status)
		favorites.DELETE("/by-company/:company_id", h.Favorite.DeleteByCompany)
		favorites.DELETE("/:id", h.Favorite.Delete)

		api.POST("/chat", h.Chat.Ask)
	}

	return r
}

// requestID はX-Request-IDヘッダーを引き継ぎ、無ければ採番します。IDはレスポンスとバックエンドへのリクエストに付与されます。
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Request = c.Request.WithContext(a1pro.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
