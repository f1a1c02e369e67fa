package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/safety-hub/internal/models"
	"github.com/sbilibin2017/safety-hub/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockFeedLister(ctrl)
	m.EXPECT().Feed(gomock.Any(), int64(4), "safety", 2, 5).Return(&models.PostPage{
		Posts:       []models.PostView{{Post: models.Post{ID: 1, Author: "Anonymous"}, LikedByMe: true, LatestComments: []models.Comment{}}},
		Total:       6,
		Pages:       2,
		CurrentPage: 2,
	}, nil)

	req := asUser(newJSONRequest(t, http.MethodGet, "/api/posts?category=safety&page=2&per_page=5", nil), 4)
	rr := serve(NewFeedHandler(m), req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, float64(2), body["current_page"])
	post := body["posts"].([]any)[0].(map[string]any)
	assert.Equal(t, true, post["liked_by_me"])
	assert.Equal(t, []any{}, post["latest_comments"])
}

func TestFeedHandler_DefaultsPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockFeedLister(ctrl)
	m.EXPECT().Feed(gomock.Any(), int64(4), "", 1, 10).Return(&models.PostPage{Posts: []models.PostView{}}, nil)

	rr := serve(NewFeedHandler(m), asUser(newJSONRequest(t, http.MethodGet, "/api/posts?page=abc", nil), 4))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetPostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPostGetter(ctrl)
	m.EXPECT().Get(gomock.Any(), int64(8)).Return(nil, services.ErrPostNotFound)

	rr := serve(NewGetPostHandler(m), withURLParams(newJSONRequest(t, http.MethodGet, "/api/posts/8", nil), "id", "8"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Post not found", decodeMap(t, rr)["error"])
}

func TestCreatePostHandler_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPostCreator(ctrl)
	m.EXPECT().Create(gomock.Any(), models.NewPost{
		UserID:      4,
		Title:       "Late buses",
		Content:     "Route 12 is unsafe after 10pm",
		Category:    defaultPostCategory,
		IsAnonymous: true,
	}, nil).Return(&models.Post{ID: 3, Author: models.AnonymousAuthor}, nil)

	rr := serve(NewCreatePostHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/posts", map[string]any{
		"title":        "Late buses",
		"content":      "Route 12 is unsafe after 10pm",
		"is_anonymous": true,
	}), 4))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.AnonymousAuthor, decodeMap(t, rr)["author"])
}

func TestCreatePostHandler_MissingTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPostCreator(ctrl)

	rr := serve(NewCreatePostHandler(m), asUser(newJSONRequest(t, http.MethodPost, "/api/posts", map[string]any{"content": "x"}), 4))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "title is required", decodeMap(t, rr)["error"])
}

func newMultipartRequest(t *testing.T, fields map[string]string, fileName string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/posts", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreatePostHandler_Multipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fields := map[string]string{"title": "Lamp out", "content": "Street 4", "category": "infrastructure"}

	t.Run("with image", func(t *testing.T) {
		m := NewMockPostCreator(ctrl)
		m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p models.NewPost, image *services.Upload) (*models.Post, error) {
				assert.Equal(t, "infrastructure", p.Category)
				assert.False(t, p.IsAnonymous)
				require.NotNil(t, image)
				assert.Equal(t, "lamp.png", image.Name)
				data, err := io.ReadAll(image.Content)
				require.NoError(t, err)
				assert.Equal(t, []byte("png-bytes"), data)
				url := "/uploads/abc.png"
				return &models.Post{ID: 5, ImageURL: &url}, nil
			})

		rr := serve(NewCreatePostHandler(m), asUser(newMultipartRequest(t, fields, "lamp.png", []byte("png-bytes")), 4))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "/uploads/abc.png", decodeMap(t, rr)["image_url"])
	})

	t.Run("image over limit", func(t *testing.T) {
		m := NewMockPostCreator(ctrl)

		oversized := bytes.Repeat([]byte("x"), maxImageBytes+1)
		rr := serve(NewCreatePostHandler(m), asUser(newMultipartRequest(t, fields, "lamp.png", oversized), 4))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "image must not exceed 5 MB", decodeMap(t, rr)["error"])
	})

	t.Run("body over limit", func(t *testing.T) {
		m := NewMockPostCreator(ctrl)

		oversized := bytes.Repeat([]byte("x"), maxPostBodyBytes+1)
		rr := serve(NewCreatePostHandler(m), asUser(newMultipartRequest(t, fields, "lamp.png", oversized), 4))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "image must not exceed 5 MB", decodeMap(t, rr)["error"])
	})

	t.Run("without image", func(t *testing.T) {
		m := NewMockPostCreator(ctrl)
		m.EXPECT().Create(gomock.Any(), gomock.Any(), nil).Return(&models.Post{ID: 6}, nil)

		rr := serve(NewCreatePostHandler(m), asUser(newMultipartRequest(t, fields, "", nil), 4))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("rejected image", func(t *testing.T) {
		m := NewMockPostCreator(ctrl)
		m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidImage)

		rr := serve(NewCreatePostHandler(m), asUser(newMultipartRequest(t, fields, "run.exe", []byte("MZ")), 4))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Unsupported image type", decodeMap(t, rr)["error"])
	})
}

func TestDeletePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPostDeleter(ctrl)
	gomock.InOrder(
		m.EXPECT().Delete(gomock.Any(), int64(4), int64(8)).Return(services.ErrNotPostOwner),
		m.EXPECT().Delete(gomock.Any(), int64(4), int64(8)).Return(nil),
	)
	h := NewDeletePostHandler(m)

	rr := serve(h, withURLParams(asUser(newJSONRequest(t, http.MethodDelete, "/api/posts/8", nil), 4), "id", "8"))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = serve(h, withURLParams(asUser(newJSONRequest(t, http.MethodDelete, "/api/posts/8", nil), 4), "id", "8"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCommentHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("list", func(t *testing.T) {
		m := NewMockCommentLister(ctrl)
		m.EXPECT().Comments(gomock.Any(), int64(8)).Return([]models.Comment{{ID: 1, Content: "stay safe"}}, nil)

		rr := serve(NewListCommentsHandler(m), withURLParams(newJSONRequest(t, http.MethodGet, "/api/posts/8/comments", nil), "id", "8"))
		assert.Equal(t, "stay safe", decodeList(t, rr)[0]["content"])
	})

	t.Run("add", func(t *testing.T) {
		m := NewMockCommenter(ctrl)
		m.EXPECT().AddComment(gomock.Any(), int64(8), int64(4), "stay safe").Return(&models.Comment{ID: 2, PostID: 8}, nil)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodPost, "/api/posts/8/comments", map[string]string{"content": "stay safe"}), 4), "id", "8")
		rr := serve(NewAddCommentHandler(m), req)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("add to missing post", func(t *testing.T) {
		m := NewMockCommenter(ctrl)
		m.EXPECT().AddComment(gomock.Any(), int64(9), int64(4), "hi").Return(nil, services.ErrPostNotFound)

		req := withURLParams(asUser(newJSONRequest(t, http.MethodPost, "/api/posts/9/comments", map[string]string{"content": "hi"}), 4), "id", "9")
		rr := serve(NewAddCommentHandler(m), req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestToggleLikeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockLikeToggler(ctrl)
	m.EXPECT().ToggleLike(gomock.Any(), int64(4), int64(8)).Return(&models.LikeResult{Liked: true, LikesCount: 3}, nil)

	rr := serve(NewToggleLikeHandler(m), withURLParams(asUser(newJSONRequest(t, http.MethodPost, "/api/posts/8/like", nil), 4), "id", "8"))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeMap(t, rr)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(3), body["likes"])
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := filepath.Join(dir, "abc.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	t.Run("served", func(t *testing.T) {
		m := NewMockUploadLocator(ctrl)
		m.EXPECT().Path("abc.png").Return(path, nil)

		rr := serve(NewUploadHandler(m), withURLParams(httptest.NewRequest(http.MethodGet, "/uploads/abc.png", nil), "filename", "abc.png"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "png-bytes", rr.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		m := NewMockUploadLocator(ctrl)
		m.EXPECT().Path("nope.png").Return("", os.ErrNotExist)

		rr := serve(NewUploadHandler(m), withURLParams(httptest.NewRequest(http.MethodGet, "/uploads/nope.png", nil), "filename", "nope.png"))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
