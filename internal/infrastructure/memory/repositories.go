// Package memory holds mutex-guarded in-memory repositories with the same
// semantics as the postgres ones. Used by tests and local experiments.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
	"github.com/oksasatya/go-user-api/internal/domain/repository"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]entity.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: map[string]entity.User{}, byEmail: map[string]string{}}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt, u.UpdatedAt = now, now
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.byID[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if u.Email != old.Email {
		if _, taken := r.byEmail[u.Email]; taken {
			return repository.ErrEmailTaken
		}
		delete(r.byEmail, old.Email)
		r.byEmail[u.Email] = u.ID
	}
	u.UpdatedAt = time.Now()
	r.byID[u.ID] = *u
	return nil
}

// Len returns the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

type TokenRepository struct {
	mu     sync.Mutex
	byKey  map[string]entity.AuthToken
	byUser map[string]string
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{byKey: map[string]entity.AuthToken{}, byUser: map[string]string{}}
}

func (r *TokenRepository) GetOrCreate(_ context.Context, userID, key string) (*entity.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byUser[userID]; ok {
		t := r.byKey[existing]
		return &t, nil
	}
	t := entity.AuthToken{Key: key, UserID: userID, CreatedAt: time.Now()}
	r.byKey[key] = t
	r.byUser[userID] = key
	return &t, nil
}

func (r *TokenRepository) GetByKey(_ context.Context, key string) (*entity.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byKey[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

type TagRepository struct {
	mu   sync.RWMutex
	tags []entity.Tag
}

func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

func (r *TagRepository) Create(_ context.Context, t *entity.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	r.tags = append(r.tags, *t)
	return nil
}

func (r *TagRepository) ListByUser(_ context.Context, userID string) ([]entity.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Tag, 0)
	for _, t := range r.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

var (
	_ repository.UserRepository  = (*UserRepository)(nil)
	_ repository.TokenRepository = (*TokenRepository)(nil)
	_ repository.TagRepository   = (*TagRepository)(nil)
)
