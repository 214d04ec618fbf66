package dao

import (
	"errors"

	"Anonboard/models"
	"Anonboard/types"

	"gorm.io/gorm"
)

// PostReactionDAO 帖子反应台账，一行对应一个 (post, session) 的当前反应
// 写操作都走调用方的事务句柄，保证台账变更与重算同生共死
type PostReactionDAO struct {
	Repo[models.PostReaction]
}

func NewPostReactionDAO(db *gorm.DB) *PostReactionDAO {
	return &PostReactionDAO{Repo: NewRepo[models.PostReaction](db)}
}

// FindBySession 指定会话在该帖子上的反应记录
func (d *PostReactionDAO) FindBySession(tx *gorm.DB, postID, sessionID string) (*models.PostReaction, error) {
	var item models.PostReaction
	err := tx.Where("post_id = ? AND session_id = ?", postID, sessionID).
		Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		return nil, nil
	}
	return &item, nil
}

func (d *PostReactionDAO) Create(tx *gorm.DB, reaction *models.PostReaction) error {
	return tx.Create(reaction).Error
}

func (d *PostReactionDAO) UpdateType(tx *gorm.DB, id string, reactionType types.ReactionType) error {
	return tx.Model(&models.PostReaction{}).
		Where("id = ?", id).
		Update("reaction_type", string(reactionType)).
		Error
}

func (d *PostReactionDAO) Delete(tx *gorm.DB, id string) error {
	return tx.Where("id = ?", id).Delete(&models.PostReaction{}).Error
}

// CountByType 从台账重算该帖子的各类型计数
func (d *PostReactionDAO) CountByType(tx *gorm.DB, postID string) (map[types.ReactionType]int64, error) {
	var rows []struct {
		ReactionType string
		N            int64
	}
	err := tx.Model(&models.PostReaction{}).
		Select("reaction_type, COUNT(*) AS n").
		Where("post_id = ?", postID).
		Group("reaction_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[types.ReactionType]int64, len(rows))
	for _, row := range rows {
		result[types.ReactionType(row.ReactionType)] = row.N
	}
	return result, nil
}
