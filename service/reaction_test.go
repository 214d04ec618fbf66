package service

import (
	"fmt"
	"sync"
	"testing"

	"Anonboard/models"
	"Anonboard/types"

	"github.com/stretchr/testify/require"
)

// 完整走一遍 加 -> 取消 -> 换类型 的状态机
func TestTogglePostReactionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	// 会话1 点赞：added
	result, err := env.reaction.TogglePost(ctx(), post.ID, "s1", types.ReactionLike)
	require.NoError(t, err)
	require.Equal(t, types.ToggleAdded, result.Action)
	require.EqualValues(t, 1, result.Count)
	require.True(t, result.IsActive)
	require.EqualValues(t, 1, result.Counts.Likes)
	env.requirePostCountersMatchLedger(t, post.ID)

	// 会话1 再点同类型：removed
	result, err = env.reaction.TogglePost(ctx(), post.ID, "s1", types.ReactionLike)
	require.NoError(t, err)
	require.Equal(t, types.ToggleRemoved, result.Action)
	require.EqualValues(t, 0, result.Count)
	require.False(t, result.IsActive)
	require.Empty(t, env.postReactionRows(t, post.ID))
	env.requirePostCountersMatchLedger(t, post.ID)

	// 会话2 点赞后改点 heart：changed，like 归零
	_, err = env.reaction.TogglePost(ctx(), post.ID, "s2", types.ReactionLike)
	require.NoError(t, err)

	result, err = env.reaction.TogglePost(ctx(), post.ID, "s2", types.ReactionHeart)
	require.NoError(t, err)
	require.Equal(t, types.ToggleChanged, result.Action)
	require.EqualValues(t, 1, result.Count)
	require.True(t, result.IsActive)
	require.EqualValues(t, 0, result.Counts.Likes)
	require.EqualValues(t, 1, result.Counts.Hearts)
	env.requirePostCountersMatchLedger(t, post.ID)
}

// 同一会话在同一帖子上任何时刻至多一行台账
func TestTogglePostSingleRowPerSession(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	for _, rt := range []types.ReactionType{
		types.ReactionLike, types.ReactionWow, types.ReactionSad, types.ReactionLaugh,
	} {
		_, err := env.reaction.TogglePost(ctx(), post.ID, "s1", rt)
		require.NoError(t, err)

		rows := env.postReactionRows(t, post.ID)
		require.Len(t, rows, 1)
		require.Equal(t, string(rt), rows[0].ReactionType)
		env.requirePostCountersMatchLedger(t, post.ID)
	}
}

func TestTogglePostInvalidReactionType(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	_, err := env.reaction.TogglePost(ctx(), post.ID, "s1", types.ReactionType("thumbsup"))
	require.ErrorIs(t, err, ErrInvalidReaction)
	require.Empty(t, env.postReactionRows(t, post.ID))
}

func TestTogglePostNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reaction.TogglePost(ctx(), "no-such-post", "s1", types.ReactionLike)
	require.ErrorIs(t, err, ErrPostNotFound)

	// 软删除的帖子同样不可反应
	post := env.seedPost(t, "hello")
	require.NoError(t, env.board.DeletePost(ctx(), post.ID, ""))

	_, err = env.reaction.TogglePost(ctx(), post.ID, "s1", types.ReactionLike)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleCommentReactionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")
	comment := env.seedComment(t, post.ID, "first")

	result, err := env.reaction.ToggleComment(ctx(), comment.ID, "s1", types.ReactionWow)
	require.NoError(t, err)
	require.Equal(t, types.ToggleAdded, result.Action)
	require.EqualValues(t, 1, result.Counts.Wows)

	result, err = env.reaction.ToggleComment(ctx(), comment.ID, "s1", types.ReactionSad)
	require.NoError(t, err)
	require.Equal(t, types.ToggleChanged, result.Action)
	require.EqualValues(t, 0, result.Counts.Wows)
	require.EqualValues(t, 1, result.Counts.Sads)

	result, err = env.reaction.ToggleComment(ctx(), comment.ID, "s1", types.ReactionSad)
	require.NoError(t, err)
	require.Equal(t, types.ToggleRemoved, result.Action)
	require.False(t, result.IsActive)

	var comment2 models.Comment
	require.NoError(t, env.db.Where("id = ?", comment.ID).First(&comment2).Error)
	require.EqualValues(t, 0, comment2.WowsCount)
	require.EqualValues(t, 0, comment2.SadsCount)
}

func TestToggleCommentNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reaction.ToggleComment(ctx(), "no-such-comment", "s1", types.ReactionLike)
	require.ErrorIs(t, err, ErrCommentNotFound)
}

// 同会话对同一帖子并发双击，串行化后恰好一加一消
func TestTogglePostConcurrentSameSession(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	actions := make([]types.ToggleAction, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := env.reaction.TogglePost(ctx(), post.ID, "s1", types.ReactionLike)
			require.NoError(t, err)
			actions[i] = result.Action
		}(i)
	}
	wg.Wait()

	require.ElementsMatch(t,
		[]types.ToggleAction{types.ToggleAdded, types.ToggleRemoved}, actions)
	require.Empty(t, env.postReactionRows(t, post.ID))
	env.requirePostCountersMatchLedger(t, post.ID)
}

// 不同会话并发反应互不干扰，计数等于会话数
func TestTogglePostConcurrentSessions(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	const sessions = 8
	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.reaction.TogglePost(ctx(), post.ID, string(rune('a'+i)), types.ReactionHeart)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	var refreshed models.Post
	require.NoError(t, env.db.Where("id = ?", post.ID).First(&refreshed).Error)
	require.EqualValues(t, sessions, refreshed.HeartsCount)
	require.Len(t, env.postReactionRows(t, post.ID), sessions)
	env.requirePostCountersMatchLedger(t, post.ID)
}

// 同一主体键恒定映射到同一把锁，锁池大小不随主体数量增长
func TestLockSubjectStriping(t *testing.T) {
	require.Same(t, lockSubject("post:a"), lockSubject("post:a"))

	seen := make(map[*sync.Mutex]struct{})
	for i := 0; i < 4096; i++ {
		seen[lockSubject(fmt.Sprintf("post:%d", i))] = struct{}{}
	}
	require.LessOrEqual(t, len(seen), len(toggleLocks))
}
