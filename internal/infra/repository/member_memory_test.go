package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
)

// IDは100始まりで、削除後も再利用されない
func TestMemberMemoryRepository_IDSequence(t *testing.T) {
	ctx := context.Background()
	r := NewMemberMemoryRepository()

	a, _ := r.Create(ctx, model.Member{Name: "A"})
	b, _ := r.Create(ctx, model.Member{Name: "B"})
	c, _ := r.Create(ctx, model.Member{Name: "C"})
	assert.Equal(t, 100, a.ID)
	assert.Equal(t, 101, b.ID)
	assert.Equal(t, 102, c.ID)

	assert.NoError(t, r.Delete(ctx, b.ID))

	d, _ := r.Create(ctx, model.Member{Name: "D"})
	assert.Equal(t, 103, d.ID)
}

func TestMemberMemoryRepository_InsertBumpsCounter(t *testing.T) {
	ctx := context.Background()
	r := NewMemberMemoryRepository()

	assert.NoError(t, r.Insert(ctx, model.Member{ID: 150, Name: "Loaded"}))

	next, err := r.Create(ctx, model.Member{Name: "Fresh"})
	assert.NoError(t, err)
	assert.Equal(t, 151, next.ID)

	err = r.Insert(ctx, model.Member{ID: 150, Name: "Dup"})
	assert.ErrorIs(t, err, repo.ErrDuplicateID)
}

func TestMemberMemoryRepository_SearchByName_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	r := NewMemberMemoryRepository()

	r.Create(ctx, model.Member{Name: "Hana"})
	r.Create(ctx, model.Member{Name: "hana"})
	r.Create(ctx, model.Member{Name: "Taro"})

	matched, err := r.SearchByName(ctx, "HANA")
	assert.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestMemberMemoryRepository_Reset(t *testing.T) {
	ctx := context.Background()
	r := NewMemberMemoryRepository()

	r.Create(ctx, model.Member{Name: "A"})
	assert.NoError(t, r.Reset(ctx))

	members, _ := r.List(ctx)
	assert.Empty(t, members)

	a, _ := r.Create(ctx, model.Member{Name: "B"})
	assert.Equal(t, 100, a.ID)
}
