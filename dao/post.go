package dao

import (
	"context"
	"errors"
	"time"

	"Anonboard/models"
	"Anonboard/types"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) Create(ctx context.Context, post *models.Post) error {
	return d.Db.WithContext(ctx).Create(post).Error
}

// GetByID 获取未删除的帖子
func (d *PostDAO) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", postID, false).
		Limit(1).Find(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if post.ID == "" {
		return nil, nil
	}
	return &post, nil
}

// Search 按标题/正文/昵称模糊搜索并分页，未删除的按时间倒序
func (d *PostDAO) Search(ctx context.Context, query string, offset, limit int) ([]*models.Post, int64, error) {
	tx := d.Db.WithContext(ctx).Model(&models.Post{}).Where("is_deleted = ?", false)

	if query != "" {
		like := "%" + query + "%"
		tx = tx.Where("title LIKE ? OR content LIKE ? OR author_nickname LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := tx.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// IncrViewCount 浏览数 +1
func (d *PostDAO) IncrViewCount(ctx context.Context, postID string) error {
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).
		Error
}

// SoftDelete 软删除，列表与轮询均不再可见，台账与评论保留
func (d *PostDAO) SoftDelete(ctx context.Context, postID string) error {
	now := time.Now()
	return d.Db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND is_deleted = ?", postID, false).
		Updates(map[string]any{"is_deleted": true, "deleted_at": &now}).
		Error
}

// CreatedBetween 半开区间 [since, until) 内创建的帖子，轮询通道使用
func (d *PostDAO) CreatedBetween(ctx context.Context, since, until time.Time) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ? AND is_deleted = ?", since, until, false).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

// UpdateReactionCounts 把台账重算结果落到冗余列
func (d *PostDAO) UpdateReactionCounts(tx *gorm.DB, postID string, counts types.ReactionCounts) error {
	return tx.Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(countColumns(counts)).
		Error
}

// countColumns 枚举到计数列的显式映射
func countColumns(c types.ReactionCounts) map[string]any {
	return map[string]any{
		"likes_count":  c.Likes,
		"hearts_count": c.Hearts,
		"laughs_count": c.Laughs,
		"wows_count":   c.Wows,
		"sads_count":   c.Sads,
	}
}
