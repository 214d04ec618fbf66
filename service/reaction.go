package service

import (
	"context"
	"hash/fnv"
	"sync"

	"Anonboard/dao"
	"Anonboard/models"
	"Anonboard/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	TogglePost(ctx context.Context, postID, sessionID string, rt types.ReactionType) (*types.ToggleResult, error)
	ToggleComment(ctx context.Context, commentID, sessionID string, rt types.ReactionType) (*types.ToggleResult, error)
}

// ReactionService 反应切换状态机
// 同一主体上的 读-判断-写-重算 序列必须串行，否则同会话并发双击
// 可能双双看到"无记录"而各插一行，破坏 (subject, session) 唯一约束
type ReactionService struct {
	DB                 *gorm.DB
	PostDAO            *dao.PostDAO
	CommentDAO         *dao.CommentDAO
	PostReactionDAO    *dao.PostReactionDAO
	CommentReactionDAO *dao.CommentReactionDAO
}

// 主体粒度的互斥锁。主体数量无上限，锁条带化到固定池子，
// 同一主体键恒定落在同一条带，不同主体极少数会共享一把锁
var toggleLocks [64]sync.Mutex

func lockSubject(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &toggleLocks[h.Sum32()%uint32(len(toggleLocks))]
}

// TogglePost 对帖子切换反应：无则加，同类型则取消，异类型则改
func (s *ReactionService) TogglePost(ctx context.Context, postID, sessionID string, rt types.ReactionType) (*types.ToggleResult, error) {
	if !rt.Valid() {
		return nil, ErrInvalidReaction
	}

	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	mu := lockSubject("post:" + postID)
	mu.Lock()
	defer mu.Unlock()

	var result *types.ToggleResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.PostReactionDAO.FindBySession(tx, postID, sessionID)
		if err != nil {
			return err
		}

		var action types.ToggleAction
		switch {
		case existing == nil:
			action = types.ToggleAdded
			err = s.PostReactionDAO.Create(tx, &models.PostReaction{
				ID:           uuid.NewString(),
				PostID:       postID,
				SessionID:    sessionID,
				ReactionType: string(rt),
			})
		case existing.ReactionType == string(rt):
			action = types.ToggleRemoved
			err = s.PostReactionDAO.Delete(tx, existing.ID)
		default:
			action = types.ToggleChanged
			err = s.PostReactionDAO.UpdateType(tx, existing.ID, rt)
		}
		if err != nil {
			return err
		}

		// 台账变更后在同一事务内重算并落盘
		byType, err := s.PostReactionDAO.CountByType(tx, postID)
		if err != nil {
			return err
		}
		counts := types.CountsFromMap(byType)
		if err := s.PostDAO.UpdateReactionCounts(tx, postID, counts); err != nil {
			return err
		}

		result = &types.ToggleResult{
			Action:   action,
			Count:    counts.Get(rt),
			IsActive: action != types.ToggleRemoved,
			Counts:   counts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleComment 对评论切换反应，逻辑与帖子一致
func (s *ReactionService) ToggleComment(ctx context.Context, commentID, sessionID string, rt types.ReactionType) (*types.ToggleResult, error) {
	if !rt.Valid() {
		return nil, ErrInvalidReaction
	}

	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	mu := lockSubject("comment:" + commentID)
	mu.Lock()
	defer mu.Unlock()

	var result *types.ToggleResult
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.CommentReactionDAO.FindBySession(tx, commentID, sessionID)
		if err != nil {
			return err
		}

		var action types.ToggleAction
		switch {
		case existing == nil:
			action = types.ToggleAdded
			err = s.CommentReactionDAO.Create(tx, &models.CommentReaction{
				ID:           uuid.NewString(),
				CommentID:    commentID,
				SessionID:    sessionID,
				ReactionType: string(rt),
			})
		case existing.ReactionType == string(rt):
			action = types.ToggleRemoved
			err = s.CommentReactionDAO.Delete(tx, existing.ID)
		default:
			action = types.ToggleChanged
			err = s.CommentReactionDAO.UpdateType(tx, existing.ID, rt)
		}
		if err != nil {
			return err
		}

		byType, err := s.CommentReactionDAO.CountByType(tx, commentID)
		if err != nil {
			return err
		}
		counts := types.CountsFromMap(byType)
		if err := s.CommentDAO.UpdateReactionCounts(tx, commentID, counts); err != nil {
			return err
		}

		result = &types.ToggleResult{
			Action:   action,
			Count:    counts.Get(rt),
			IsActive: action != types.ToggleRemoved,
			Counts:   counts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
