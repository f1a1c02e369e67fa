package services

//go:generate mockgen -source=post.go -destination=post_mock.go -package=services

import (
	"context"
	"errors"
	"io"

	"github.com/sbilibin2017/safety-hub/internal/logger"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/repositories"
)

const latestCommentsPerPost = 3

// PostStore defines post, comment and like persistence.
type PostStore interface {
	List(ctx context.Context, category string, limit, offset int) ([]models.Post, error)
	Count(ctx context.Context, category string) (int, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, p models.NewPost) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
	LikedPostIDs(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error)
	LatestComments(ctx context.Context, postIDs []int64, perPost int) (map[int64][]models.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, postID, userID int64, content string) (*models.Comment, error)
	AddLike(ctx context.Context, userID, postID int64) (bool, error)
	RemoveLike(ctx context.Context, userID, postID int64) (bool, error)
	AdjustLikes(ctx context.Context, postID int64, delta int) (int, error)
}

// ImageStore saves uploaded images and returns the stored file name.
type ImageStore interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}

// Upload is an image attached to a new post.
type Upload struct {
	Name    string
	Content io.Reader
}

// PostService serves the community feed.
type PostService struct {
	posts  PostStore
	images ImageStore
}

// NewPostService creates a new PostService.
func NewPostService(posts PostStore, images ImageStore) *PostService {
	return &PostService{posts: posts, images: images}
}

// Feed returns a page of posts, newest first, as seen by viewerID.
func (s *PostService) Feed(ctx context.Context, viewerID int64, category string, page, perPage int) (*models.PostPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total, err := s.posts.Count(ctx, category)
	if err != nil {
		logger.Log.Errorw("failed to count posts", "category", category, "error", err)
		return nil, err
	}

	posts, err := s.posts.List(ctx, category, perPage, (page-1)*perPage)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "category", category, "error", err)
		return nil, err
	}

	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	liked, err := s.posts.LikedPostIDs(ctx, viewerID, ids)
	if err != nil {
		logger.Log.Errorw("failed to load likes", "user_id", viewerID, "error", err)
		return nil, err
	}
	comments, err := s.posts.LatestComments(ctx, ids, latestCommentsPerPost)
	if err != nil {
		logger.Log.Errorw("failed to load latest comments", "error", err)
		return nil, err
	}

	views := make([]models.PostView, len(posts))
	for i, p := range posts {
		latest := comments[p.ID]
		if latest == nil {
			latest = []models.Comment{}
		}
		views[i] = models.PostView{
			Post:           anonymize(p),
			LikedByMe:      liked[p.ID],
			LatestComments: latest,
		}
	}

	return &models.PostPage{
		Posts:       views,
		Total:       total,
		Pages:       pageCount(total, perPage),
		CurrentPage: page,
	}, nil
}

// Get returns one post.
func (s *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	p := anonymize(*post)
	return &p, nil
}

// Create publishes a post, storing the image first when one is attached.
func (s *PostService) Create(ctx context.Context, p models.NewPost, image *Upload) (*models.Post, error) {
	if image != nil {
		name, err := s.images.Save(ctx, image.Name, image.Content)
		if errors.Is(err, repositories.ErrUnsupportedFileType) {
			return nil, ErrInvalidImage
		}
		if err != nil {
			logger.Log.Errorw("failed to save image", "file", image.Name, "error", err)
			return nil, err
		}
		url := "/uploads/" + name
		p.ImageURL = &url
	}

	post, err := s.posts.Create(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to create post", "user_id", p.UserID, "error", err)
		return nil, err
	}
	created := anonymize(*post)
	return &created, nil
}

// Delete removes a post owned by actorID.
func (s *PostService) Delete(ctx context.Context, actorID, id int64) error {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		logger.Log.Warnw("post delete by non-owner", "post_id", id, "actor_id", actorID)
		return ErrNotPostOwner
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete post", "post_id", id, "error", err)
		return err
	}
	return nil
}

// Comments lists a post's comments, newest first.
func (s *PostService) Comments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.posts.ListComments(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "post_id", postID, "error", err)
		return nil, err
	}
	return comments, nil
}

// AddComment comments on a post. The comment count is updated in the same transaction.
func (s *PostService) AddComment(ctx context.Context, postID, userID int64, content string) (*models.Comment, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}
	comment, err := s.posts.AddComment(ctx, postID, userID, content)
	if err != nil {
		logger.Log.Errorw("failed to add comment", "post_id", postID, "user_id", userID, "error", err)
		return nil, err
	}
	return comment, nil
}

// ToggleLike likes the post, or unlikes it when the user already liked it.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (*models.LikeResult, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	added, err := s.posts.AddLike(ctx, userID, postID)
	if err != nil {
		logger.Log.Errorw("failed to add like", "post_id", postID, "user_id", userID, "error", err)
		return nil, err
	}

	delta := 1
	if !added {
		if _, err := s.posts.RemoveLike(ctx, userID, postID); err != nil {
			logger.Log.Errorw("failed to remove like", "post_id", postID, "user_id", userID, "error", err)
			return nil, err
		}
		delta = -1
	}

	count, err := s.posts.AdjustLikes(ctx, postID, delta)
	if err != nil {
		logger.Log.Errorw("failed to update like count", "post_id", postID, "error", err)
		return nil, err
	}
	return &models.LikeResult{Liked: added, LikesCount: count}, nil
}

func (s *PostService) getPost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", id, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func anonymize(p models.Post) models.Post {
	if p.IsAnonymous {
		p.Author = models.AnonymousAuthor
	}
	return p
}
