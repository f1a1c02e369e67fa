package handlers

//go:generate mockgen -source=post.go -destination=post_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
)

const (
	defaultPostCategory = "general"
	maxUploadMemory     = 10 << 20
	maxImageBytes       = 5 << 20
	maxPostBodyBytes    = maxImageBytes + 1<<20
)

// FeedLister returns a page of the community feed.
type FeedLister interface {
	Feed(ctx context.Context, viewerID int64, category string, page, perPage int) (*models.PostPage, error)
}

// PostGetter returns a single post.
type PostGetter interface {
	Get(ctx context.Context, id int64) (*models.Post, error)
}

// PostCreator publishes a post with an optional image.
type PostCreator interface {
	Create(ctx context.Context, p models.NewPost, image *services.Upload) (*models.Post, error)
}

// PostDeleter removes a post owned by the caller.
type PostDeleter interface {
	Delete(ctx context.Context, actorID, id int64) error
}

// CommentLister lists a post's comments.
type CommentLister interface {
	Comments(ctx context.Context, postID int64) ([]models.Comment, error)
}

// Commenter adds a comment.
type Commenter interface {
	AddComment(ctx context.Context, postID, userID int64, content string) (*models.Comment, error)
}

// LikeToggler likes or unlikes a post.
type LikeToggler interface {
	ToggleLike(ctx context.Context, userID, postID int64) (*models.LikeResult, error)
}

// UploadLocator resolves a stored upload to a file path.
type UploadLocator interface {
	Path(name string) (string, error)
}

// PostRequest represents the body of a new post, as JSON or multipart form fields
// swagger:model PostRequest
type PostRequest struct {
	// Title
	// required: true
	Title string `json:"title" validate:"required,max=200"`

	// Body
	// required: true
	Content string `json:"content" validate:"required"`

	// Category
	// default: general
	Category string `json:"category"`

	// Hide the author's name
	IsAnonymous bool `json:"is_anonymous"`
}

// CommentRequest represents the JSON body for a comment
// swagger:model CommentRequest
type CommentRequest struct {
	// Comment text
	// required: true
	Content string `json:"content" validate:"required"`
}

// NewFeedHandler returns an HTTP handler for the community feed.
// @Summary List posts
// @Tags posts
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Posts per page" default(10)
// @Success 200 {object} models.PostPage
// @Security BearerAuth
// @Router /api/posts [get]
func NewFeedHandler(svc FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		page, err := svc.Feed(r.Context(), userID,
			r.URL.Query().Get("category"),
			queryInt(r, "page", 1),
			queryInt(r, "per_page", 10),
		)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

// NewGetPostHandler returns an HTTP handler for a single post.
// @Summary Get post
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.Post
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /api/posts/{id} [get]
func NewGetPostHandler(svc PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		post, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, post)
	}
}

// NewCreatePostHandler returns an HTTP handler that publishes a post.
// It accepts JSON, or multipart form data with an optional "image" file.
// @Summary Create post
// @Tags posts
// @Accept json
// @Accept mpfd
// @Produce json
// @Param postRequest body handlers.PostRequest true "Post"
// @Success 201 {object} models.Post
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / unsupported image type"
// @Security BearerAuth
// @Router /api/posts [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var (
			req   PostRequest
			image *services.Upload
		)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			r.Body = http.MaxBytesReader(w, r.Body, maxPostBodyBytes)
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeErrorMessage(w, http.StatusBadRequest, "image must not exceed 5 MB")
					return
				}
				writeErrorMessage(w, http.StatusBadRequest, "invalid multipart form")
				return
			}
			req.Title = r.FormValue("title")
			req.Content = r.FormValue("content")
			req.Category = r.FormValue("category")
			req.IsAnonymous, _ = strconv.ParseBool(r.FormValue("is_anonymous"))

			file, header, err := r.FormFile("image")
			switch {
			case err == nil:
				defer file.Close()
				if header.Size > maxImageBytes {
					writeErrorMessage(w, http.StatusBadRequest, "image must not exceed 5 MB")
					return
				}
				if header.Filename != "" {
					image = &services.Upload{Name: header.Filename, Content: file}
				}
			case !errors.Is(err, http.ErrMissingFile):
				writeErrorMessage(w, http.StatusBadRequest, "invalid image")
				return
			}
			if !validateRequest(w, &req) {
				return
			}
		} else if !decodeJSON(w, r, &req) {
			return
		}

		if req.Category == "" {
			req.Category = defaultPostCategory
		}

		post, err := svc.Create(r.Context(), models.NewPost{
			UserID:      userID,
			Title:       req.Title,
			Content:     req.Content,
			Category:    req.Category,
			IsAnonymous: req.IsAnonymous,
		}, image)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, post)
	}
}

// NewDeletePostHandler returns an HTTP handler that deletes the caller's post.
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Post belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /api/posts/{id} [delete]
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Post deleted"})
	}
}

// NewListCommentsHandler returns an HTTP handler listing a post's comments.
// @Summary List comments
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {array} models.Comment
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /api/posts/{id}/comments [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		comments, err := svc.Comments(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if comments == nil {
			comments = []models.Comment{}
		}
		writeJSON(w, http.StatusOK, comments)
	}
}

// NewAddCommentHandler returns an HTTP handler that comments on a post.
// @Summary Add comment
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param commentRequest body handlers.CommentRequest true "Comment"
// @Success 201 {object} models.Comment
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /api/posts/{id}/comments [post]
func NewAddCommentHandler(svc Commenter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		var req CommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		c, err := svc.AddComment(r.Context(), id, userID, req.Content)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

// NewToggleLikeHandler returns an HTTP handler that likes or unlikes a post.
// @Summary Toggle like
// @Tags posts
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} models.LikeResult
// @Failure 404 {object} handlers.ErrorResponse "Post not found"
// @Security BearerAuth
// @Router /api/posts/{id}/like [post]
func NewToggleLikeHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		res, err := svc.ToggleLike(r.Context(), userID, id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewUploadHandler returns an HTTP handler serving uploaded images.
// @Summary Get uploaded image
// @Tags posts
// @Produce image/png
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} handlers.ErrorResponse "File not found"
// @Router /uploads/{filename} [get]
func NewUploadHandler(store UploadLocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := store.Path(chi.URLParam(r, "filename"))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				writeError(w, r, err)
				return
			}
			writeErrorMessage(w, http.StatusNotFound, "File not found")
			return
		}
		http.ServeFile(w, r, path)
	}
}
