package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 取引履歴の照会。
type TransactionUsecase struct {
	transactionRepo repo.TransactionRepository
}

// DI
func NewTransactionUsecase(transactionRepo repo.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{transactionRepo: transactionRepo}
}

// ListByDateRange は期間内の取引を古い順に返す。
// 開始が終了より後なら失敗する。
func (u *TransactionUsecase) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if start.After(end) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid date range")
	}
	ts, err := u.transactionRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "transaction log error")
	}
	return ts, nil
}

func (u *TransactionUsecase) ListByMember(ctx context.Context, memberID int) ([]model.Transaction, error) {
	if memberID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid member id")
	}
	ts, err := u.transactionRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "transaction log error")
	}
	return ts, nil
}
