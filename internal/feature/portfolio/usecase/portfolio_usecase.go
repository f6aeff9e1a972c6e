// Package usecase は保有銘柄の一覧・追加・更新・削除と集計値の表示用変換を提供します。
package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	compareentity "stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/feature/portfolio/domain/entity"
	"stock_dashboard/internal/shared/confirm"
	"stock_dashboard/internal/shared/validation"
)

// DeletePrompt は削除前に利用者へ表示する確認メッセージです。
const DeletePrompt = "この銘柄を削除してもよろしいですか？"

// PortfolioBackend はポートフォリオAPIの呼び出しを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PortfolioBackend interface {
	ListPortfolio(ctx context.Context) ([]entity.PortfolioWithPerformance, error)
	CreatePortfolio(ctx context.Context, in entity.PortfolioCreate) (*entity.PortfolioWithPerformance, error)
	UpdatePortfolio(ctx context.Context, id int64, in entity.PortfolioUpdate) (*entity.PortfolioWithPerformance, error)
	DeletePortfolio(ctx context.Context, id int64) error
	GetPortfolioPerformance(ctx context.Context) (*entity.PortfolioPerformance, error)
}

// PortfolioUsecase は保有銘柄の操作を行います。
// 変更操作の後は必ず一覧と集計値を取得し直し、ローカルでの楽観的更新は行いません。
type PortfolioUsecase struct {
	backend PortfolioBackend
}

// NewPortfolioUsecase はPortfolioUsecaseの新しいインスタンスを生成します。
func NewPortfolioUsecase(backend PortfolioBackend) *PortfolioUsecase {
	return &PortfolioUsecase{backend: backend}
}

// Load は保有銘柄一覧と集計値を並行して取得します。どちらかが失敗した場合はエラーを返します。
func (u *PortfolioUsecase) Load(ctx context.Context) (*PortfolioView, error) {
	var (
		items []entity.PortfolioWithPerformance
		perf  *entity.PortfolioPerformance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = u.backend.ListPortfolio(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		perf, err = u.backend.GetPortfolioPerformance(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Warn("portfolio load failed", "error", err)
		return nil, err
	}
	return BuildView(items, *perf), nil
}

// Add は保有銘柄を追加し、最新の状態を返します。
func (u *PortfolioUsecase) Add(ctx context.Context, in entity.PortfolioCreate) (*PortfolioView, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !compareentity.AssetType(in.AssetType).Valid() {
		return nil, &validation.Error{Field: "asset_type", Message: "資産クラスが不正です"}
	}
	created, err := u.backend.CreatePortfolio(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.Info("portfolio item created", "id", created.ID, "symbol", created.Symbol)
	return u.Load(ctx)
}

// Update は保有銘柄を更新し、最新の状態を返します。
func (u *PortfolioUsecase) Update(ctx context.Context, id int64, in entity.PortfolioUpdate) (*PortfolioView, error) {
	if id <= 0 {
		return nil, &validation.Error{Field: "id", Message: "IDが不正です"}
	}
	if in.PurchaseDate == nil && in.PurchasePrice == nil && in.Quantity == nil {
		return nil, validation.New("更新する項目がありません")
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := u.backend.UpdatePortfolio(ctx, id, in); err != nil {
		return nil, err
	}
	slog.Info("portfolio item updated", "id", id)
	return u.Load(ctx)
}

// Delete は利用者の確認を得てから保有銘柄を削除し、最新の状態を返します。
// 確認が拒否された場合はAPIを呼び出さずにErrDeleteCancelledを返します。
func (u *PortfolioUsecase) Delete(ctx context.Context, id int64, c confirm.Confirmer) (*PortfolioView, error) {
	if id <= 0 {
		return nil, &validation.Error{Field: "id", Message: "IDが不正です"}
	}
	ok, err := c.Confirm(ctx, DeletePrompt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDeleteCancelled
	}
	if err := u.backend.DeletePortfolio(ctx, id); err != nil {
		return nil, err
	}
	slog.Info("portfolio item deleted", "id", id)
	return u.Load(ctx)
}
