package repository

import (
	"context"
	"testing"

	"talkora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTagRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	tag, err := repo.Create(ctx, "golang")
	require.NoError(t, err)
	assert.NotZero(t, tag.ID)

	_, err = repo.Create(ctx, "golang")
	require.Error(t, err)
	assert.True(t, models.IsConflict(err))
}

func TestListTagsSorted(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		_, err := repo.Create(ctx, name)
		require.NoError(t, err)
	}

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, "mike", tags[1].Name)
	assert.Equal(t, "zulu", tags[2].Name)
}

func TestWithCountsOmitsUnusedTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	for _, name := range []string{"golang", "testing", "unused"} {
		_, err := repo.Create(ctx, name)
		require.NoError(t, err)
	}

	seedPost(t, db, "a", "author@example.com", "golang", "testing")
	seedPost(t, db, "b", "author@example.com", "golang")

	counts, err := repo.WithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "golang", counts[0].Name)
	assert.EqualValues(t, 2, counts[0].Count)
	assert.Equal(t, "testing", counts[1].Name)
	assert.EqualValues(t, 1, counts[1].Count)
}

func TestWithCountsIgnoresUnregisteredPostTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, "golang")
	require.NoError(t, err)

	// "freeform" never made it into the registry
	seedPost(t, db, "a", "author@example.com", "golang", "freeform")

	counts, err := repo.WithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "golang", counts[0].Name)
}
