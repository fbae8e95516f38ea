package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
	"github.com/oksasatya/go-user-api/internal/domain/repository"
)

type TokenRepository struct {
	db DBTX
}

func NewTokenRepository(db DBTX) *TokenRepository {
	return &TokenRepository{db: db}
}

// GetOrCreate relies on the unique user_id: on conflict the no-op update makes
// RETURNING yield the row that already exists, so key is discarded.
func (r *TokenRepository) GetOrCreate(ctx context.Context, userID, key string) (*entity.AuthToken, error) {
	t := &entity.AuthToken{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING key, user_id, created_at
	`, key, userID).Scan(&t.Key, &t.UserID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert auth token: %w", err)
	}
	return t, nil
}

func (r *TokenRepository) GetByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	t := &entity.AuthToken{}
	err := r.db.QueryRow(ctx, `
		SELECT key, user_id, created_at
		FROM auth_tokens
		WHERE key = $1
	`, key).Scan(&t.Key, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select auth token: %w", err)
	}
	return t, nil
}

var _ repository.TokenRepository = (*TokenRepository)(nil)
