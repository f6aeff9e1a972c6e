package di

import (
	chathandler "stock_dashboard/internal/feature/chat/transport/handler"
	chatusecase "stock_dashboard/internal/feature/chat/usecase"
	companyhandler "stock_dashboard/internal/feature/company/transport/handler"
	companyusecase "stock_dashboard/internal/feature/company/usecase"
	comparehandler "stock_dashboard/internal/feature/compare/transport/handler"
	compareusecase "stock_dashboard/internal/feature/compare/usecase"
	favoritehandler "stock_dashboard/internal/feature/favorite/transport/handler"
	favoriteusecase "stock_dashboard/internal/feature/favorite/usecase"
	portfoliohandler "stock_dashboard/internal/feature/portfolio/transport/handler"
	portfoliousecase "stock_dashboard/internal/feature/portfolio/usecase"
	"stock_dashboard/internal/platform/externalapi/a1pro"
	platformhandler "stock_dashboard/internal/platform/http/handler"
)

// Handlers はルーターに登録するハンドラー一式です。
type Handlers struct {
	Ready     *platformhandler.ReadyHandler
	Company   *companyhandler.CompanyHandler
	Compare   *comparehandler.CompareHandler
	Portfolio *portfoliohandler.PortfolioHandler
	Favorite  *favoritehandler.FavoriteHandler
	Chat      *chathandler.ChatHandler
}

// NewHandlers はバックエンドクライアントからUsecase・Handlerを組み立てます。
func NewHandlers(backend *a1pro.Client) *Handlers {
	// Usecase
	companyUC := companyusecase.NewCompanyUsecase(backend)
	compareUC := compareusecase.NewCompareUsecase(backend)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(backend)
	favoriteUC := favoriteusecase.NewFavoriteUsecase(backend)
	chatUC := chatusecase.NewChatUsecase(backend)

	// Handler
	return &Handlers{
		Ready:     platformhandler.NewReadyHandler(backend),
		Company:   companyhandler.NewCompanyHandler(companyUC),
		Compare:   comparehandler.NewCompareHandler(compareUC),
		Portfolio: portfoliohandler.NewPortfolioHandler(portfolioUC),
		Favorite:  favoritehandler.NewFavoriteHandler(favoriteUC),
		Chat:      chathandler.NewChatHandler(chatUC),
	}
}
