package repositories

import (
	"context"
	"testing"

	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewPostRepository(db, nil)
	ctx := context.Background()
	userID := createUser(t, db, "poster")

	post, err := repo.Create(ctx, models.NewPost{UserID: userID, Title: "Hello", Content: "World", Category: "general"})
	require.NoError(t, err)
	assert.Equal(t, "poster", post.Author)

	t.Run("LikeUnique", func(t *testing.T) {
		added, err := repo.AddLike(ctx, userID, post.ID)
		assert.NoError(t, err)
		assert.True(t, added)

		added, err = repo.AddLike(ctx, userID, post.ID)
		assert.NoError(t, err)
		assert.False(t, added)

		liked, err := repo.LikedPostIDs(ctx, userID, []int64{post.ID})
		assert.NoError(t, err)
		assert.True(t, liked[post.ID])

		removed, err := repo.RemoveLike(ctx, userID, post.ID)
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("LatestComments", func(t *testing.T) {
		for _, c := range []string{"a", "b", "c", "d"} {
			_, err := repo.AddComment(ctx, post.ID, userID, c)
			require.NoError(t, err)
		}

		latest, err := repo.LatestComments(ctx, []int64{post.ID}, 3)
		require.NoError(t, err)
		assert.Len(t, latest[post.ID], 3)
		assert.Equal(t, "d", latest[post.ID][0].Content)

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, got.CommentsCount)
	})

	t.Run("ListAndCount", func(t *testing.T) {
		posts, err := repo.List(ctx, "general", 10, 0)
		assert.NoError(t, err)
		assert.Len(t, posts, 1)

		total, err := repo.Count(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, 1, total)

		total, err = repo.Count(ctx, "other")
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}
