package usecase

import (
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/compare/domain/entity"
	"stock_dashboard/internal/shared/validation"
)

const (
	// MaxAssets は1回の比較で指定できる資産数の上限です。
	MaxAssets = 10
	// MinAssets は比較に必要な資産数の下限です。
	MinAssets = 1
)

// 利用者向けの検証メッセージ
const (
	MsgSymbolRequired   = "シンボルを入力してください"
	MsgTooManyAssets    = "最大10銘柄まで追加できます"
	MsgAssetRequired    = "少なくとも1つの資産を追加してください"
	MsgInvalidAssetType = "資産クラスが不正です"
	MsgInvalidPeriod    = "比較期間が不正です"
	MsgReservedSymbol   = "このシンボルは使用できません"
)

// Basket は比較対象として集めた資産のリストです（1〜10件）。
// 上限・入力の検証はネットワーク呼び出しより前に行われます。
type Basket struct {
	assets []entity.AssetSymbol
}

// NewBasket はassetsを順に追加したBasketを生成します。途中で検証に失敗した場合はエラーを返します。
func NewBasket(assets ...entity.AssetSymbol) (*Basket, error) {
	b := &Basket{}
	for i, a := range assets {
		if err := b.Add(a); err != nil {
			return nil, fmt.Errorf("asset %d: %w", i, err)
		}
	}
	return b, nil
}

// Add は資産を追加します。シンボルが空または日付列と同名の場合、資産クラスが不正な場合、上限に達している場合は追加しません。
func (b *Basket) Add(a entity.AssetSymbol) error {
	a.Symbol = strings.TrimSpace(a.Symbol)
	if a.Symbol == "" {
		return &validation.Error{Field: "symbol", Message: MsgSymbolRequired}
	}
	if a.Symbol == DateColumn {
		return &validation.Error{Field: "symbol", Message: MsgReservedSymbol}
	}
	if !a.AssetType.Valid() {
		return &validation.Error{Field: "asset_type", Message: MsgInvalidAssetType}
	}
	if len(b.assets) >= MaxAssets {
		return validation.New(MsgTooManyAssets)
	}
	b.assets = append(b.assets, a)
	return nil
}

// Remove はindex番目の資産を取り除きます。範囲外の場合は何もしません。
func (b *Basket) Remove(index int) {
	if index < 0 || index >= len(b.assets) {
		return
	}
	b.assets = append(b.assets[:index:index], b.assets[index+1:]...)
}

// Len は現在の資産数を返します。
func (b *Basket) Len() int {
	return len(b.assets)
}

// Assets は資産リストのコピーを返します。
func (b *Basket) Assets() []entity.AssetSymbol {
	out := make([]entity.AssetSymbol, len(b.assets))
	copy(out, b.assets)
	return out
}

// Validate は比較を実行できる状態か（1件以上）を検証します。
func (b *Basket) Validate() error {
	if len(b.assets) < MinAssets {
		return validation.New(MsgAssetRequired)
	}
	return nil
}
