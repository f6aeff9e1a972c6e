package usecase

import (
	"fmt"

	"stock_dashboard/internal/shared/confirm"
)

// ErrDeleteCancelled は利用者が削除の確認を拒否したことを表します。この場合APIは呼び出されていません。
var ErrDeleteCancelled = fmt.Errorf("delete portfolio item: %w", confirm.ErrCancelled)
