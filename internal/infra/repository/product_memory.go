package repository

import (
	"context"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductMemoryRepository struct {
	mu       sync.Mutex
	products []model.Product
}

// DI
func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{products: []model.Product{}}
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.products {
		if e.ID == p.ID {
			return repo.ErrDuplicateID
		}
	}
	r.products = append(r.products, p)
	return nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, productID int) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *ProductMemoryRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *ProductMemoryRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductMemoryRepository) Update(ctx context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *ProductMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []model.Product{}
	return nil
}
