package repository

import (
	"context"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
)

type TagRepository interface {
	Create(ctx context.Context, t *entity.Tag) error
	ListByUser(ctx context.Context, userID string) ([]entity.Tag, error)
}
