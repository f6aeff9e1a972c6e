// Package usecase はお気に入り企業の一覧・追加・削除を提供します。
package usecase

import (
	"context"
	"log/slog"

	"stock_dashboard/internal/feature/favorite/domain/entity"
	"stock_dashboard/internal/shared/validation"
)

// FavoriteBackend はお気に入りAPIの呼び出しを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FavoriteBackend interface {
	ListFavorites(ctx context.Context) ([]entity.FavoriteWithCompany, error)
	AddFavorite(ctx context.Context, companyID int64) (*entity.FavoriteWithCompany, error)
	RemoveFavorite(ctx context.Context, id int64) error
	RemoveFavoriteByCompany(ctx context.Context, companyID int64) error
}

// Status は企業1社のお気に入り登録状態です。
type Status struct {
	CompanyID  int64  `json:"company_id"`
	IsFavorite bool   `json:"is_favorite"`
	FavoriteID *int64 `json:"favorite_id"`
}

// FavoriteUsecase はお気に入りの操作を行います。変更操作の後は一覧を取得し直して返します。
type FavoriteUsecase struct {
	backend FavoriteBackend
}

// NewFavoriteUsecase はFavoriteUsecaseの新しいインスタンスを生成します。
func NewFavoriteUsecase(backend FavoriteBackend) *FavoriteUsecase {
	return &FavoriteUsecase{backend: backend}
}

// List はお気に入り一覧を返します。
func (u *FavoriteUsecase) List(ctx context.Context) ([]entity.FavoriteWithCompany, error) {
	return u.backend.ListFavorites(ctx)
}

// Add は企業をお気に入りに追加し、最新の一覧を返します。
func (u *FavoriteUsecase) Add(ctx context.Context, companyID int64) ([]entity.FavoriteWithCompany, error) {
	if err := validation.Struct(entity.FavoriteCreate{CompanyID: companyID}); err != nil {
		return nil, err
	}
	if _, err := u.backend.AddFavorite(ctx, companyID); err != nil {
		return nil, err
	}
	slog.Info("favorite added", "company_id", companyID)
	return u.List(ctx)
}

// Remove はお気に入りIDで削除し、最新の一覧を返します。
func (u *FavoriteUsecase) Remove(ctx context.Context, id int64) ([]entity.FavoriteWithCompany, error) {
	if id <= 0 {
		return nil, &validation.Error{Field: "id", Message: "IDが不正です"}
	}
	if err := u.backend.RemoveFavorite(ctx, id); err != nil {
		return nil, err
	}
	slog.Info("favorite removed", "id", id)
	return u.List(ctx)
}

// RemoveByCompany は企業IDでお気に入りを削除し、最新の一覧を返します。
func (u *FavoriteUsecase) RemoveByCompany(ctx context.Context, companyID int64) ([]entity.FavoriteWithCompany, error) {
	if companyID <= 0 {
		return nil, &validation.Error{Field: "company_id", Message: "企業IDが不正です"}
	}
	if err := u.backend.RemoveFavoriteByCompany(ctx, companyID); err != nil {
		return nil, err
	}
	slog.Info("favorite removed", "company_id", companyID)
	return u.List(ctx)
}

// Status は一覧を取得して企業の登録状態を返します。
func (u *FavoriteUsecase) Status(ctx context.Context, companyID int64) (*Status, error) {
	favs, err := u.backend.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return statusOf(favs, companyID), nil
}

// Toggle は登録済みなら削除、未登録なら追加し、操作後に取得し直した状態を返します。
func (u *FavoriteUsecase) Toggle(ctx context.Context, companyID int64) (*Status, error) {
	st, err := u.Status(ctx, companyID)
	if err != nil {
		return nil, err
	}
	var favs []entity.FavoriteWithCompany
	if st.IsFavorite {
		favs, err = u.Remove(ctx, *st.FavoriteID)
	} else {
		favs, err = u.Add(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}
	return statusOf(favs, companyID), nil
}

func statusOf(favs []entity.FavoriteWithCompany, companyID int64) *Status {
	st := &Status{CompanyID: companyID}
	for _, f := range favs {
		if f.CompanyID == companyID {
			id := f.ID
			st.IsFavorite = true
			st.FavoriteID = &id
			break
		}
	}
	return st
}
