package repository

import (
	"context"
	"sync"
	"time"

	"app/internal/domain/model"
)

// 追記専用の取引ログ。
type TransactionMemoryRepository struct {
	mu           sync.Mutex
	transactions []model.Transaction
}

// DI
func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{transactions: []model.Transaction{}}
}

func (r *TransactionMemoryRepository) Append(ctx context.Context, t model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = append(r.transactions, t)
	return nil
}

func (r *TransactionMemoryRepository) List(ctx context.Context) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// 境界は含まない（start < dateOfSale < end）。
func (r *TransactionMemoryRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Transaction{}
	for _, t := range r.transactions {
		if t.DateOfSale.After(start) && t.DateOfSale.Before(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TransactionMemoryRepository) ListByMember(ctx context.Context, memberID int) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Transaction{}
	for _, t := range r.transactions {
		if t.MemberID == memberID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TransactionMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = []model.Transaction{}
	return nil
}
