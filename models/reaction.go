package models

import "time"

// PostReaction 帖子反应台账，(post_id, session_id) 唯一
type PostReaction struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	PostID       string    `gorm:"column:post_id;type:char(36);not null;index:idx_post_session,unique" json:"post_id"`
	SessionID    string    `gorm:"column:session_id;type:varchar(100);not null;index:idx_post_session,unique" json:"session_id"`
	ReactionType string    `gorm:"column:reaction_type;type:varchar(10);not null" json:"reaction_type"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PostReaction) TableName() string {
	return "post_reactions"
}

// CommentReaction 评论反应台账，(comment_id, session_id) 唯一
type CommentReaction struct {
	ID           string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CommentID    string    `gorm:"column:comment_id;type:char(36);not null;index:idx_comment_session,unique" json:"comment_id"`
	SessionID    string    `gorm:"column:session_id;type:varchar(100);not null;index:idx_comment_session,unique" json:"session_id"`
	ReactionType string    `gorm:"column:reaction_type;type:varchar(10);not null" json:"reaction_type"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentReaction) TableName() string {
	return "comment_reactions"
}
