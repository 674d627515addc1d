package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品ID重複。カタログはIDの一意性を保証する。
var ErrDuplicateID = errors.New("duplicate id")

// 商品カタログの保存・取得だけを約束。
type ProductRepository interface {
	// 追加。IDが既に存在する場合は ErrDuplicateID。
	Create(ctx context.Context, p model.Product) error

	FindByID(ctx context.Context, productID int) (model.Product, error)

	// 商品名での取得（大文字小文字を区別しない）。
	FindByName(ctx context.Context, name string) (model.Product, error)

	// 登録順の一覧。
	List(ctx context.Context) ([]model.Product, error)

	// 価格・在庫などの更新。対象が無ければ ErrNotFound。
	Update(ctx context.Context, p model.Product) error

	// ロードで全件入れ替えるための初期化。
	Reset(ctx context.Context) error
}
