package types

import "time"

type CreatePostRequest struct {
	Title          string `json:"title"`
	Content        string `json:"content"`
	AuthorNickname string `json:"author_nickname"`
	DeletePassword string `json:"delete_password"`
}

type CreatePostResponse struct {
	Success bool   `json:"success"`
	PostID  string `json:"post_id"`
	Message string `json:"message"`
}

type CreateCommentRequest struct {
	Content        string `json:"content"`
	AuthorNickname string `json:"author_nickname"`
}

type CreateCommentResponse struct {
	Success   bool   `json:"success"`
	CommentID string `json:"comment_id"`
	Message   string `json:"message"`
}

type DeletePostRequest struct {
	DeletePassword string `json:"delete_password"`
}

// PostSummary 列表页的帖子摘要
type PostSummary struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	AuthorNickname string         `json:"author_nickname"`
	ViewCount      uint32         `json:"view_count"`
	CommentCount   int64          `json:"comment_count"`
	Counts         ReactionCounts `json:"counts"`
	CreatedAt      time.Time      `json:"created_at"`
}

type PostListResponse struct {
	Posts       []*PostSummary `json:"posts"`
	Page        int            `json:"page"`
	TotalPages  int            `json:"total_pages"`
	Total       int64          `json:"total"`
	SearchQuery string         `json:"search_query,omitempty"`
}

type CommentResponse struct {
	ID             string         `json:"id"`
	PostID         string         `json:"post_id"`
	Content        string         `json:"content"`
	AuthorNickname string         `json:"author_nickname"`
	Counts         ReactionCounts `json:"counts"`
	CreatedAt      time.Time      `json:"created_at"`
}

type PostDetailResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Content        string             `json:"content"`
	AuthorNickname string             `json:"author_nickname"`
	ViewCount      uint32             `json:"view_count"`
	Counts         ReactionCounts     `json:"counts"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Comments       []*CommentResponse `json:"comments"`
}
