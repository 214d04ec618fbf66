package dao

import (
	"context"
	"errors"
	"time"

	"Anonboard/models"
	"Anonboard/types"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{Repo: NewRepo[models.Comment](db)}
}

func (d *CommentDAO) Create(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

func (d *CommentDAO) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Limit(1).Find(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if comment.ID == "" {
		return nil, nil
	}
	return &comment, nil
}

// ListByPost 帖子下全部评论，按时间正序
func (d *CommentDAO) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// CountByPosts 批量统计各帖子的评论数
func (d *CommentDAO) CountByPosts(ctx context.Context, postIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	if len(postIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		PostID string
		N      int64
	}
	err := d.Db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.PostID] = row.N
	}
	return result, nil
}

// CreatedBetween 半开区间 [since, until) 内创建的评论
// 所属帖子已软删除的不计入，与列表可见性保持一致
func (d *CommentDAO) CreatedBetween(ctx context.Context, since, until time.Time) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Joins("JOIN posts ON posts.id = comments.post_id AND posts.is_deleted = ?", false).
		Where("comments.created_at >= ? AND comments.created_at < ?", since, until).
		Order("comments.created_at ASC").
		Find(&comments).Error
	return comments, err
}

// UpdateReactionCounts 把台账重算结果落到冗余列
func (d *CommentDAO) UpdateReactionCounts(tx *gorm.DB, commentID string, counts types.ReactionCounts) error {
	return tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Updates(countColumns(counts)).
		Error
}
