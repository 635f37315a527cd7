package entity

import "time"

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MediaURL  string    `json:"media_url"`
	Caption   string    `json:"caption,omitempty"`
	IsLocked  bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithCreator is a post joined with its creator profile, resolved at the
// query boundary. Feed rows always carry the creator; a bare Post never does.
type PostWithCreator struct {
	Post
	Creator Profile `json:"creator"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithAuthor joins the commenting profile for rendering.
type CommentWithAuthor struct {
	Comment
	Author Profile `json:"author"`
}
