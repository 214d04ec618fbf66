package service

import (
	"context"
	"fmt"
	"testing"

	"Anonboard/dao"
	"Anonboard/models"
	"Anonboard/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个用例一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db       *gorm.DB
	board    *BoardService
	reaction *ReactionService
	updates  *UpdatesService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	postDAO := dao.NewPostDAO(db)
	commentDAO := dao.NewCommentDAO(db)

	return &testEnv{
		db: db,
		board: &BoardService{
			PostDAO:    postDAO,
			CommentDAO: commentDAO,
		},
		reaction: &ReactionService{
			DB:                 db,
			PostDAO:            postDAO,
			CommentDAO:         commentDAO,
			PostReactionDAO:    dao.NewPostReactionDAO(db),
			CommentReactionDAO: dao.NewCommentReactionDAO(db),
		},
		updates: &UpdatesService{
			PostDAO:    postDAO,
			CommentDAO: commentDAO,
		},
	}
}

func (e *testEnv) seedPost(t *testing.T, title string) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:             uuid.NewString(),
		Title:          title,
		Content:        "content of " + title,
		AuthorNickname: "tester",
	}
	require.NoError(t, e.db.Create(post).Error)
	return post
}

func (e *testEnv) seedComment(t *testing.T, postID, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		ID:             uuid.NewString(),
		PostID:         postID,
		Content:        content,
		AuthorNickname: "tester",
	}
	require.NoError(t, e.db.Create(comment).Error)
	return comment
}

// requirePostCountersMatchLedger 冗余计数列必须与台账重算结果一致
func (e *testEnv) requirePostCountersMatchLedger(t *testing.T, postID string) {
	t.Helper()

	var post models.Post
	require.NoError(t, e.db.Where("id = ?", postID).First(&post).Error)

	var rows []struct {
		ReactionType string
		N            int64
	}
	require.NoError(t, e.db.Model(&models.PostReaction{}).
		Select("reaction_type, COUNT(*) AS n").
		Where("post_id = ?", postID).
		Group("reaction_type").
		Find(&rows).Error)

	ledger := map[string]int64{}
	for _, row := range rows {
		ledger[row.ReactionType] = row.N
	}

	require.EqualValues(t, ledger["like"], post.LikesCount)
	require.EqualValues(t, ledger["heart"], post.HeartsCount)
	require.EqualValues(t, ledger["laugh"], post.LaughsCount)
	require.EqualValues(t, ledger["wow"], post.WowsCount)
	require.EqualValues(t, ledger["sad"], post.SadsCount)
}

func (e *testEnv) postReactionRows(t *testing.T, postID string) []*models.PostReaction {
	t.Helper()

	var rows []*models.PostReaction
	require.NoError(t, e.db.Where("post_id = ?", postID).Find(&rows).Error)
	return rows
}

func ctx() context.Context {
	return context.Background()
}
