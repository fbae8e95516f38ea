package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
	repo "github.com/oksasatya/go-user-api/internal/domain/repository"
	"github.com/oksasatya/go-user-api/pkg/helpers"
)

type TagService struct {
	Repo   repo.TagRepository
	Logger *logrus.Logger
}

func NewTagService(r repo.TagRepository, logger *logrus.Logger) *TagService {
	return &TagService{Repo: r, Logger: logger}
}

func (s *TagService) CreateTag(ctx context.Context, userID, name string) (*entity.Tag, error) {
	t, err := entity.NewTag(userID, name)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		helpers.LogError(s.Logger, "create tag failed", err, logrus.Fields{"user_id": userID})
		return nil, err
	}
	return t, nil
}

// ListTags returns the user's tags, name descending.
func (s *TagService) ListTags(ctx context.Context, userID string) ([]entity.Tag, error) {
	return s.Repo.ListByUser(ctx, userID)
}
