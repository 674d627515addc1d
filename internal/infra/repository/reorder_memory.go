package repository

import (
	"context"
	"sync"

	repo "app/internal/repository"
)

// 発注中商品IDの集合。追加順を保つ。
type ReorderMemoryRepository struct {
	mu  sync.Mutex
	ids []int
}

// DI
func NewReorderMemoryRepository() *ReorderMemoryRepository {
	return &ReorderMemoryRepository{ids: []int{}}
}

// 既に発注中なら何もしない（重複エントリを作らない）。
func (r *ReorderMemoryRepository) Add(ctx context.Context, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.ids {
		if id == productID {
			return nil
		}
	}
	r.ids = append(r.ids, productID)
	return nil
}

func (r *ReorderMemoryRepository) Contains(ctx context.Context, productID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.ids {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *ReorderMemoryRepository) Remove(ctx context.Context, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, id := range r.ids {
		if id == productID {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *ReorderMemoryRepository) List(ctx context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, len(r.ids))
	copy(out, r.ids)
	return out, nil
}

func (r *ReorderMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids = []int{}
	return nil
}
