package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (*services.PostService, *services.MockPostStore, *services.MockImageStore) {
	ctrl := gomock.NewController(t)
	posts := services.NewMockPostStore(ctrl)
	images := services.NewMockImageStore(ctrl)
	return services.NewPostService(posts, images), posts, images
}

func TestPostService_Feed(t *testing.T) {
	svc, posts, _ := newPostService(t)
	ctx := context.Background()

	stored := []models.Post{
		{ID: 2, UserID: 5, Title: "Safe route home", Author: "maya", IsAnonymous: true},
		{ID: 1, UserID: 6, Title: "Thanks all", Author: "ria"},
	}

	posts.EXPECT().Count(gomock.Any(), "safety").Return(12, nil)
	posts.EXPECT().List(gomock.Any(), "safety", 5, 5).Return(stored, nil)
	posts.EXPECT().LikedPostIDs(gomock.Any(), int64(9), []int64{2, 1}).Return(map[int64]bool{1: true}, nil)
	posts.EXPECT().LatestComments(gomock.Any(), []int64{2, 1}, 3).
		Return(map[int64][]models.Comment{2: {{ID: 10, PostID: 2, Content: "stay safe"}}}, nil)

	page, err := svc.Feed(ctx, 9, "safety", 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Posts, 2)

	assert.Equal(t, models.AnonymousAuthor, page.Posts[0].Author)
	assert.False(t, page.Posts[0].LikedByMe)
	assert.Len(t, page.Posts[0].LatestComments, 1)

	assert.Equal(t, "ria", page.Posts[1].Author)
	assert.True(t, page.Posts[1].LikedByMe)
	assert.NotNil(t, page.Posts[1].LatestComments)
	assert.Empty(t, page.Posts[1].LatestComments)
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	in := models.NewPost{UserID: 1, Title: "t", Content: "c", Category: "general"}

	t.Run("with image", func(t *testing.T) {
		svc, posts, images := newPostService(t)
		images.EXPECT().Save(gomock.Any(), "photo.png", gomock.Any()).Return("abc.png", nil)
		posts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.NewPost) (*models.Post, error) {
				require.NotNil(t, p.ImageURL)
				assert.Equal(t, "/uploads/abc.png", *p.ImageURL)
				return &models.Post{ID: 3, ImageURL: p.ImageURL}, nil
			})

		post, err := svc.Create(ctx, in, &services.Upload{Name: "photo.png", Content: strings.NewReader("png")})
		require.NoError(t, err)
		assert.Equal(t, int64(3), post.ID)
	})

	t.Run("rejected image", func(t *testing.T) {
		svc, posts, images := newPostService(t)
		images.EXPECT().Save(gomock.Any(), "run.exe", gomock.Any()).Return("", repositories.ErrUnsupportedFileType)
		posts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, in, &services.Upload{Name: "run.exe", Content: strings.NewReader("MZ")})
		assert.ErrorIs(t, err, services.ErrInvalidImage)
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("anonymous author hidden", func(t *testing.T) {
		svc, posts, _ := newPostService(t)
		anon := in
		anon.IsAnonymous = true
		posts.EXPECT().Create(gomock.Any(), anon).Return(&models.Post{ID: 4, Author: "maya", IsAnonymous: true}, nil)

		post, err := svc.Create(ctx, anon, nil)
		require.NoError(t, err)
		assert.Equal(t, models.AnonymousAuthor, post.Author)
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  *models.Post
		wantErr error
	}{
		{name: "missing", wantErr: services.ErrPostNotFound},
		{name: "not owner", stored: &models.Post{ID: 1, UserID: 2}, wantErr: services.ErrNotPostOwner},
		{name: "owner", stored: &models.Post{ID: 1, UserID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, posts, _ := newPostService(t)
			posts.EXPECT().GetByID(gomock.Any(), int64(1)).Return(tt.stored, nil)
			if tt.wantErr == nil {
				posts.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			}

			err := svc.Delete(ctx, 1, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("like then unlike", func(t *testing.T) {
		svc, posts, _ := newPostService(t)
		posts.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Post{ID: 1}, nil).Times(2)

		gomock.InOrder(
			posts.EXPECT().AddLike(gomock.Any(), int64(7), int64(1)).Return(true, nil),
			posts.EXPECT().AdjustLikes(gomock.Any(), int64(1), 1).Return(1, nil),
			posts.EXPECT().AddLike(gomock.Any(), int64(7), int64(1)).Return(false, nil),
			posts.EXPECT().RemoveLike(gomock.Any(), int64(7), int64(1)).Return(true, nil),
			posts.EXPECT().AdjustLikes(gomock.Any(), int64(1), -1).Return(0, nil),
		)

		res, err := svc.ToggleLike(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, &models.LikeResult{Liked: true, LikesCount: 1}, res)

		res, err = svc.ToggleLike(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, &models.LikeResult{Liked: false, LikesCount: 0}, res)
	})

	t.Run("missing post", func(t *testing.T) {
		svc, posts, _ := newPostService(t)
		posts.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, nil)

		_, err := svc.ToggleLike(ctx, 7, 1)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
	})
}

func TestPostService_AddComment(t *testing.T) {
	svc, posts, _ := newPostService(t)
	posts.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Post{ID: 1}, nil)
	posts.EXPECT().AddComment(gomock.Any(), int64(1), int64(7), "nice").Return(&models.Comment{ID: 3, Content: "nice"}, nil)

	comment, err := svc.AddComment(context.Background(), 1, 7, "nice")
	require.NoError(t, err)
	assert.Equal(t, "nice", comment.Content)
}
