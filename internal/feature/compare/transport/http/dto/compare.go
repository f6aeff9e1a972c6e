// Package dto はcompareフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// AssetReq は比較対象の資産1件です。
type AssetReq struct {
	Symbol    string `json:"symbol"`
	AssetType string `json:"asset_type"`
	Name      string `json:"name"`
}

// CompareReq は POST /api/compare のリクエストボディです。
// 資産数・資産クラスの検証はユースケース側で行います。
type CompareReq struct {
	Assets    []AssetReq `json:"assets"`
	Period    string     `json:"period"`
	StartDate string     `json:"start_date"`
}
