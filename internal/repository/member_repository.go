package repository

import (
	"app/internal/domain/model"
	"context"
)

// 会員レジストリ。IDの採番はレジストリだけが行う。
type MemberRepository interface {
	// 新規会員作成。IDを採番して埋めたものを返す。
	Create(ctx context.Context, m model.Member) (model.Member, error)

	// ID指定での再投入（ロード用）。採番カウンタは
	// 既存IDを追い越すよう進める。重複IDは ErrDuplicateID。
	Insert(ctx context.Context, m model.Member) error

	FindByID(ctx context.Context, memberID int) (model.Member, error)

	// 名前の完全一致検索（大文字小文字を区別しない）。
	SearchByName(ctx context.Context, name string) ([]model.Member, error)

	List(ctx context.Context) ([]model.Member, error)

	// 会員情報の更新（名前・住所・電話）。
	Update(ctx context.Context, m model.Member) error

	// 削除してもIDは再利用されない。
	Delete(ctx context.Context, memberID int) error

	Reset(ctx context.Context) error
}
