package repository

import "context"

// 発注中の商品IDの集合（多重集合ではない）。
type ReorderRepository interface {
	// 追加。既に発注中なら何もせず成功する。
	Add(ctx context.Context, productID int) error

	Contains(ctx context.Context, productID int) (bool, error)

	// 入荷処理後の削除。発注中でなければ ErrNotFound。
	Remove(ctx context.Context, productID int) error

	// 追加順の商品ID一覧。
	List(ctx context.Context) ([]int, error)

	Reset(ctx context.Context) error
}
