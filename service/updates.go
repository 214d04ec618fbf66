package service

import (
	"context"
	"sort"
	"time"

	"Anonboard/dao"
	"Anonboard/models"
	"Anonboard/types"

	"github.com/sourcegraph/conc"
)

var _ IUpdatesService = (*UpdatesService)(nil)

type IUpdatesService interface {
	CheckUpdates(ctx context.Context, cursor int64) (*types.CheckUpdatesResponse, error)
}

// UpdatesService 轮询兜底通道
// 游标由客户端携带（上次响应的 next_cursor），查询半开区间 [cursor, now)，
// 轮询间隔内创建的帖子/评论恰好出现一次，不重不漏
// 反应变化不走轮询通道，只有推送通道覆盖
type UpdatesService struct {
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
}

func (s *UpdatesService) CheckUpdates(ctx context.Context, cursor int64) (*types.CheckUpdatesResponse, error) {
	now := time.Now()

	// 首次轮询没有游标，只发一个新游标回去
	if cursor <= 0 {
		return &types.CheckUpdatesResponse{
			HasUpdates: false,
			Updates:    []*types.UpdateEvent{},
			NextCursor: now.UnixNano(),
		}, nil
	}

	since := time.Unix(0, cursor)

	var (
		posts    []*models.Post
		comments []*models.Comment
		postErr  error
		cmtErr   error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		posts, postErr = s.PostDAO.CreatedBetween(ctx, since, now)
	})
	wg.Go(func() {
		comments, cmtErr = s.CommentDAO.CreatedBetween(ctx, since, now)
	})
	wg.Wait()

	if postErr != nil {
		return nil, postErr
	}
	if cmtErr != nil {
		return nil, cmtErr
	}

	type timed struct {
		at    time.Time
		event *types.UpdateEvent
	}
	merged := make([]timed, 0, len(posts)+len(comments))

	for _, p := range posts {
		merged = append(merged, timed{at: p.CreatedAt, event: &types.UpdateEvent{
			Type: types.EventNewPost,
			Data: &types.PostSummary{
				ID:             p.ID,
				Title:          p.Title,
				AuthorNickname: p.AuthorNickname,
				ViewCount:      p.ViewCount,
				Counts:         p.Counts(),
				CreatedAt:      p.CreatedAt,
			},
		}})
	}
	for _, cm := range comments {
		merged = append(merged, timed{at: cm.CreatedAt, event: &types.UpdateEvent{
			Type: types.EventNewComment,
			Data: &types.CommentResponse{
				ID:             cm.ID,
				PostID:         cm.PostID,
				Content:        cm.Content,
				AuthorNickname: cm.AuthorNickname,
				Counts:         cm.Counts(),
				CreatedAt:      cm.CreatedAt,
			},
		}})
	}

	sort.SliceStable(merged, func(i, j int) bool { return merged[i].at.Before(merged[j].at) })

	updates := make([]*types.UpdateEvent, 0, len(merged))
	for _, item := range merged {
		updates = append(updates, item.event)
	}

	return &types.CheckUpdatesResponse{
		HasUpdates: len(updates) > 0,
		Updates:    updates,
		NextCursor: now.UnixNano(),
	}, nil
}
