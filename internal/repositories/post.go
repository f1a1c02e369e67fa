package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safety-hub/internal/models"
)

const postSelect = `
	SELECT p.id, p.user_id, p.title, p.content, p.category, p.is_anonymous, p.image_url,
		p.likes_count, p.comments_count, u.username AS author, p.created_at
	FROM posts p
	JOIN users u ON u.id = p.user_id
`

// PostRepository stores posts, comments and likes.
type PostRepository struct {
	base
}

func NewPostRepository(db *sqlx.DB, txGetter TxGetter) *PostRepository {
	return &PostRepository{base{db: db, txGetter: txGetter}}
}

// List returns a page of posts, newest first, optionally filtered by category.
func (r *PostRepository) List(ctx context.Context, category string, limit, offset int) ([]models.Post, error) {
	query := postSelect + `
		WHERE ($1::TEXT = '' OR p.category = $1)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`

	posts := []models.Post{}
	if err := r.selectAll(ctx, &posts, query, category, limit, offset); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the number of posts in the category, or all posts when it is empty.
func (r *PostRepository) Count(ctx context.Context, category string) (int, error) {
	const query = `SELECT COUNT(*) FROM posts WHERE ($1::TEXT = '' OR category = $1)`

	var total int
	_, err := r.get(ctx, &total, query, category)
	return total, err
}

// GetByID returns the post or nil when it does not exist.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := postSelect + ` WHERE p.id = $1`

	var post models.Post
	found, err := r.get(ctx, &post, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &post, nil
}

// Create inserts a post.
func (r *PostRepository) Create(ctx context.Context, p models.NewPost) (*models.Post, error) {
	const query = `
		WITH p AS (
			INSERT INTO posts (user_id, title, content, category, is_anonymous, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT p.id, p.user_id, p.title, p.content, p.category, p.is_anonymous, p.image_url,
			p.likes_count, p.comments_count, u.username AS author, p.created_at
		FROM p
		JOIN users u ON u.id = p.user_id
	`

	var post models.Post
	if _, err := r.get(ctx, &post, query, p.UserID, p.Title, p.Content, p.Category, p.IsAnonymous, p.ImageURL); err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post with its comments and likes.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

// LikedPostIDs returns which of the given posts the user has liked.
func (r *PostRepository) LikedPostIDs(ctx context.Context, userID int64, postIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	query, args, err := sqlx.In(`SELECT post_id FROM likes WHERE user_id = ? AND post_id IN (?)`, userID, postIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var ids []int64
	if err := r.selectAll(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// LatestComments returns up to perPost newest comments for each of the given posts.
func (r *PostRepository) LatestComments(ctx context.Context, postIDs []int64, perPost int) (map[int64][]models.Comment, error) {
	byPost := make(map[int64][]models.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, post_id, user_id, content, author, created_at FROM (
			SELECT c.id, c.post_id, c.user_id, c.content, u.username AS author, c.created_at,
				ROW_NUMBER() OVER (PARTITION BY c.post_id ORDER BY c.created_at DESC, c.id DESC) AS rn
			FROM comments c
			JOIN users u ON u.id = c.user_id
			WHERE c.post_id IN (?)
		) ranked
		WHERE rn <= ?
		ORDER BY post_id, created_at DESC, id DESC
	`, postIDs, perPost)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var comments []models.Comment
	if err := r.selectAll(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	return byPost, nil
}

// ListComments returns all comments of a post, newest first.
func (r *PostRepository) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	const query = `
		SELECT c.id, c.post_id, c.user_id, c.content, u.username AS author, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`

	comments := []models.Comment{}
	if err := r.selectAll(ctx, &comments, query, postID); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment inserts a comment and bumps the post's comment count.
func (r *PostRepository) AddComment(ctx context.Context, postID, userID int64, content string) (*models.Comment, error) {
	const query = `
		WITH c AS (
			INSERT INTO comments (post_id, user_id, content)
			VALUES ($1, $2, $3)
			RETURNING *
		)
		SELECT c.id, c.post_id, c.user_id, c.content, u.username AS author, c.created_at
		FROM c
		JOIN users u ON u.id = c.user_id
	`

	var comment models.Comment
	if _, err := r.get(ctx, &comment, query, postID, userID, content); err != nil {
		return nil, err
	}

	if _, err := r.exec(ctx, `UPDATE posts SET comments_count = comments_count + 1 WHERE id = $1`, postID); err != nil {
		return nil, err
	}
	return &comment, nil
}

// AddLike records a like. It reports false when the user had already liked the post.
func (r *PostRepository) AddLike(ctx context.Context, userID, postID int64) (bool, error) {
	const query = `
		INSERT INTO likes (user_id, post_id) VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`
	n, err := r.exec(ctx, query, userID, postID)
	return n > 0, err
}

// RemoveLike deletes a like and reports whether it existed.
func (r *PostRepository) RemoveLike(ctx context.Context, userID, postID int64) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	return n > 0, err
}

// AdjustLikes shifts the denormalized like count and returns the new value.
func (r *PostRepository) AdjustLikes(ctx context.Context, postID int64, delta int) (int, error) {
	const query = `
		UPDATE posts SET likes_count = GREATEST(likes_count + $2, 0)
		WHERE id = $1
		RETURNING likes_count
	`

	var count int
	_, err := r.get(ctx, &count, query, postID, delta)
	return count, err
}

// ChatRepository stores chatbot exchanges.
type ChatRepository struct {
	base
}

func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{base{db: db}}
}

// Save stores one exchange.
func (r *ChatRepository) Save(ctx context.Context, userID int64, message, response string) (*models.ChatMessage, error) {
	const query = `
		INSERT INTO chat_messages (user_id, message, response)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, message, response, created_at
	`

	var msg models.ChatMessage
	if _, err := r.get(ctx, &msg, query, userID, message, response); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListRecent returns the user's last limit exchanges in chronological order.
func (r *ChatRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	const query = `
		SELECT id, user_id, message, response, created_at FROM (
			SELECT id, user_id, message, response, created_at
			FROM chat_messages
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2
		) recent
		ORDER BY created_at, id
	`

	msgs := []models.ChatMessage{}
	if err := r.selectAll(ctx, &msgs, query, userID, limit); err != nil {
		return nil, err
	}
	return msgs, nil
}
