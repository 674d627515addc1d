package repository

import (
	"app/internal/domain/model"
	"context"
	"time"
)

// 取引ログ。追記専用で、更新・削除のAPIは持たない。
type TransactionRepository interface {
	Append(ctx context.Context, t model.Transaction) error

	List(ctx context.Context) ([]model.Transaction, error)

	// 期間内の取引（境界は含まない。start < dateOfSale < end）。
	ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)

	ListByMember(ctx context.Context, memberID int) ([]model.Transaction, error)

	Reset(ctx context.Context) error
}
