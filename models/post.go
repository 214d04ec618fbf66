package models

import (
	"time"

	"Anonboard/types"
)

// Post 帖子表结构
type Post struct {
	ID             string     `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Title          string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content        string     `gorm:"column:content;type:text;not null" json:"content"`
	AuthorNickname string     `gorm:"column:author_nickname;type:varchar(50);not null;default:'anonymous'" json:"author_nickname"`
	ViewCount      uint32     `gorm:"column:view_count;not null;default:0" json:"view_count"`
	LikesCount     uint32     `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	HeartsCount    uint32     `gorm:"column:hearts_count;not null;default:0" json:"hearts_count"`
	LaughsCount    uint32     `gorm:"column:laughs_count;not null;default:0" json:"laughs_count"`
	WowsCount      uint32     `gorm:"column:wows_count;not null;default:0" json:"wows_count"`
	SadsCount      uint32     `gorm:"column:sads_count;not null;default:0" json:"sads_count"`
	IsDeleted      bool       `gorm:"column:is_deleted;not null;default:false;index:idx_deleted_created" json:"is_deleted"`
	DeletedAt      *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	DeletePassword string     `gorm:"column:delete_password;type:varchar(100)" json:"-"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime;index:idx_deleted_created" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// Counts 从冗余列组装计数快照
func (p *Post) Counts() types.ReactionCounts {
	return types.ReactionCounts{
		Likes:  int64(p.LikesCount),
		Hearts: int64(p.HeartsCount),
		Laughs: int64(p.LaughsCount),
		Wows:   int64(p.WowsCount),
		Sads:   int64(p.SadsCount),
	}
}
