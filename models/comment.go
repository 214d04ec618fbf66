package models

import (
	"time"

	"Anonboard/types"
)

// Comment 评论表结构，帖子删除时级联删除
type Comment struct {
	ID             string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	PostID         string    `gorm:"column:post_id;type:char(36);not null;index:idx_post_created" json:"post_id"`
	Post           *Post     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorNickname string    `gorm:"column:author_nickname;type:varchar(50);not null;default:'anonymous'" json:"author_nickname"`
	LikesCount     uint32    `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	HeartsCount    uint32    `gorm:"column:hearts_count;not null;default:0" json:"hearts_count"`
	LaughsCount    uint32    `gorm:"column:laughs_count;not null;default:0" json:"laughs_count"`
	WowsCount      uint32    `gorm:"column:wows_count;not null;default:0" json:"wows_count"`
	SadsCount      uint32    `gorm:"column:sads_count;not null;default:0" json:"sads_count"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index:idx_post_created" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) Counts() types.ReactionCounts {
	return types.ReactionCounts{
		Likes:  int64(c.LikesCount),
		Hearts: int64(c.HeartsCount),
		Laughs: int64(c.LaughsCount),
		Wows:   int64(c.WowsCount),
		Sads:   int64(c.SadsCount),
	}
}
