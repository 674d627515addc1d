package repository

import (
	"context"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 会員IDの採番は100始まり。
const memberIDSeed = 100

type MemberMemoryRepository struct {
	mu      sync.Mutex
	members []model.Member
	nextID  int
}

// DI
func NewMemberMemoryRepository() *MemberMemoryRepository {
	return &MemberMemoryRepository{members: []model.Member{}, nextID: memberIDSeed}
}

func (r *MemberMemoryRepository) Create(ctx context.Context, m model.Member) (model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.members = append(r.members, m)
	return m, nil
}

// ロード用のID指定投入。採番カウンタは投入IDを追い越す。
func (r *MemberMemoryRepository) Insert(ctx context.Context, m model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.members {
		if e.ID == m.ID {
			return repo.ErrDuplicateID
		}
	}
	if m.ID >= r.nextID {
		r.nextID = m.ID + 1
	}
	r.members = append(r.members, m)
	return nil
}

func (r *MemberMemoryRepository) FindByID(ctx context.Context, memberID int) (model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.ID == memberID {
			return m, nil
		}
	}
	return model.Member{}, repo.ErrNotFound
}

func (r *MemberMemoryRepository) SearchByName(ctx context.Context, name string) ([]model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []model.Member{}
	for _, m := range r.members {
		if strings.EqualFold(m.Name, name) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r *MemberMemoryRepository) List(ctx context.Context) ([]model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Member, len(r.members))
	copy(out, r.members)
	return out, nil
}

func (r *MemberMemoryRepository) Update(ctx context.Context, m model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == m.ID {
			r.members[i] = m
			return nil
		}
	}
	return repo.ErrNotFound
}

// 削除してもnextIDは戻さない。IDは再利用されない。
func (r *MemberMemoryRepository) Delete(ctx context.Context, memberID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.members {
		if r.members[i].ID == memberID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *MemberMemoryRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members = []model.Member{}
	r.nextID = memberIDSeed
	return nil
}
