package repository

import (
	"context"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
)

// TokenRepository stores one auth token per user.
type TokenRepository interface {
	// GetOrCreate returns the user's token, inserting key only when none exists.
	GetOrCreate(ctx context.Context, userID, key string) (*entity.AuthToken, error)
	GetByKey(ctx context.Context, key string) (*entity.AuthToken, error)
}
