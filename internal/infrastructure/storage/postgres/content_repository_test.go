package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/content"
	"contenthub/internal/domain/query"
	"contenthub/internal/infrastructure/storage/postgres/testhelper"
)

func TestContentRepository_CRUD(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := NewContentRepository(pool, slog.Default())
	ctx := context.Background()
	userID := testhelper.SeedUser(t, pool)

	first, err := repo.Create(ctx, userID, content.NewItem{Name: "draft", Type: content.TypeText})
	require.NoError(t, err)
	assert.Equal(t, userID, first.UserID)
	assert.False(t, first.IsFavorite)
	assert.Empty(t, first.Tags)

	second, err := repo.Create(ctx, userID, content.NewItem{
		Name: "cover", Type: content.TypeImage, Tags: []string{"cover", "blog"}, IsFavorite: true,
	})
	require.NoError(t, err)

	items, err := repo.List(ctx, userID, content.Filter{Options: query.Options{Order: query.OrderDesc}})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	img := content.TypeImage
	items, err = repo.List(ctx, userID, content.Filter{Type: &img})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	items, err = repo.List(ctx, userID, content.Filter{Tag: "blog"})
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = repo.List(ctx, userID, content.Filter{FavoritesOnly: true, Options: query.Options{Limit: 1}})
	require.NoError(t, err)
	require.Len(t, items, 1)

	fav := true
	updated, err := repo.Update(ctx, userID, first.ID, content.Patch{IsFavorite: &fav})
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "draft", updated.Name)
	assert.False(t, updated.UpdatedAt.Before(first.UpdatedAt))

	deleted, err := repo.Delete(ctx, userID, first.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, userID, first.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestContentRepository_OwnerIsolation(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := NewContentRepository(pool, slog.Default())
	ctx := context.Background()
	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	item, err := repo.Create(ctx, owner, content.NewItem{Name: "private", Type: content.TypeCode})
	require.NoError(t, err)

	items, err := repo.List(ctx, other, content.Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	name := "stolen"
	_, err = repo.Update(ctx, other, item.ID, content.Patch{Name: &name})
	assert.ErrorIs(t, err, content.ErrNotFound)

	deleted, err := repo.Delete(ctx, other, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestContentRepository_UpdateMissing(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := NewContentRepository(pool, slog.Default())
	userID := testhelper.SeedUser(t, pool)

	name := "x"
	_, err := repo.Update(context.Background(), userID, uuid.New(), content.Patch{Name: &name})
	assert.ErrorIs(t, err, content.ErrNotFound)
}
