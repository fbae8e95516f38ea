package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-api/internal/domain/entity"
	"github.com/oksasatya/go-user-api/internal/infrastructure/memory"
	"github.com/oksasatya/go-user-api/pkg/helpers"
)

func TestTagService(t *testing.T) {
	svc := NewTagService(memory.NewTagRepository(), helpers.NewNopLogger())
	ctx := context.Background()

	for _, name := range []string{"Dessert", "Vegan", "Breakfast"} {
		_, err := svc.CreateTag(ctx, "user-1", name)
		require.NoError(t, err)
	}
	_, err := svc.CreateTag(ctx, "user-2", "Fruity")
	require.NoError(t, err)

	tags, err := svc.ListTags(ctx, "user-1")
	require.NoError(t, err)
	names := make([]string, 0, len(tags))
	for _, tg := range tags {
		names = append(names, tg.String())
	}
	assert.Equal(t, []string{"Vegan", "Dessert", "Breakfast"}, names)

	_, err = svc.CreateTag(ctx, "user-1", " ")
	assert.ErrorIs(t, err, entity.ErrTagNameRequired)
}
