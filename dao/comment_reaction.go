package dao

import (
	"errors"

	"Anonboard/models"
	"Anonboard/types"

	"gorm.io/gorm"
)

// CommentReactionDAO 评论反应台账，(comment, session) 唯一
type CommentReactionDAO struct {
	Repo[models.CommentReaction]
}

func NewCommentReactionDAO(db *gorm.DB) *CommentReactionDAO {
	return &CommentReactionDAO{Repo: NewRepo[models.CommentReaction](db)}
}

func (d *CommentReactionDAO) FindBySession(tx *gorm.DB, commentID, sessionID string) (*models.CommentReaction, error) {
	var item models.CommentReaction
	err := tx.Where("comment_id = ? AND session_id = ?", commentID, sessionID).
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

func (d *CommentReactionDAO) Create(tx *gorm.DB, reaction *models.CommentReaction) error {
	return tx.Create(reaction).Error
}

func (d *CommentReactionDAO) UpdateType(tx *gorm.DB, id string, reactionType types.ReactionType) error {
	return tx.Model(&models.CommentReaction{}).
		Where("id = ?", id).
		Update("reaction_type", string(reactionType)).
		Error
}

func (d *CommentReactionDAO) Delete(tx *gorm.DB, id string) error {
	return tx.Where("id = ?", id).Delete(&models.CommentReaction{}).Error
}

func (d *CommentReactionDAO) CountByType(tx *gorm.DB, commentID string) (map[types.ReactionType]int64, error) {
	var rows []struct {
		ReactionType string
		N            int64
	}
	err := tx.Model(&models.CommentReaction{}).
		Select("reaction_type, COUNT(*) AS n").
		Where("comment_id = ?", commentID).
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
