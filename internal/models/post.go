package models

import "time"

// AnonymousAuthor replaces the author name of anonymous posts.
const AnonymousAuthor = "Anonymous"

// Post is a community post with denormalized like and comment counts.
type Post struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Category      string    `json:"category" db:"category"`
	IsAnonymous   bool      `json:"is_anonymous" db:"is_anonymous"`
	ImageURL      *string   `json:"image_url" db:"image_url"`
	LikesCount    int       `json:"likes" db:"likes_count"`
	CommentsCount int       `json:"comments_count" db:"comments_count"`
	Author        string    `json:"author" db:"author"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// NewPost holds the fields needed to insert a post.
type NewPost struct {
	UserID      int64
	Title       string
	Content     string
	Category    string
	IsAnonymous bool
	ImageURL    *string
}

// Comment belongs to a post.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PostView is a post as seen by a particular viewer.
type PostView struct {
	Post
	LikedByMe      bool      `json:"liked_by_me"`
	LatestComments []Comment `json:"latest_comments"`
}

// PostPage is one page of the feed.
type PostPage struct {
	Posts       []PostView `json:"posts"`
	Total       int        `json:"total"`
	Pages       int        `json:"pages"`
	CurrentPage int        `json:"current_page"`
}

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes"`
}

// ChatMessage is one chatbot exchange.
type ChatMessage struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
