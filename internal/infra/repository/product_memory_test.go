package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestProductMemoryRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	r := NewProductMemoryRepository()

	assert.NoError(t, r.Create(ctx, model.Product{ID: 1, Name: "Milk"}))
	err := r.Create(ctx, model.Product{ID: 1, Name: "Other"})
	assert.ErrorIs(t, err, repo.ErrDuplicateID)
}

func TestProductMemoryRepository_FindByName_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	r := NewProductMemoryRepository()

	assert.NoError(t, r.Create(ctx, model.Product{ID: 1, Name: "Milk"}))

	p, err := r.FindByName(ctx, "mIlK")
	assert.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	_, err = r.FindByName(ctx, "Bread")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	r := NewProductMemoryRepository()

	assert.NoError(t, r.Create(ctx, model.Product{ID: 1, Name: "Milk", Price: 2.50, Stock: 10}))

	assert.NoError(t, r.Update(ctx, model.Product{ID: 1, Name: "Milk", Price: 2.75, Stock: 8}))
	p, _ := r.FindByID(ctx, 1)
	assert.Equal(t, 2.75, p.Price)
	assert.Equal(t, 8, p.Stock)

	err := r.Update(ctx, model.Product{ID: 99})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestReorderMemoryRepository_SetSemantics(t *testing.T) {
	ctx := context.Background()
	r := NewReorderMemoryRepository()

	assert.NoError(t, r.Add(ctx, 2))
	assert.NoError(t, r.Add(ctx, 1))
	assert.NoError(t, r.Add(ctx, 2))

	ids, err := r.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 1}, ids)

	assert.NoError(t, r.Remove(ctx, 2))
	err = r.Remove(ctx, 2)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
