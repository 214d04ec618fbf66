package service

import (
	"strings"
	"testing"

	"Anonboard/models"
	"Anonboard/types"

	"github.com/stretchr/testify/require"
)

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)

	// 空标题/空正文拒绝
	_, err := env.board.CreatePost(ctx(), &types.CreatePostRequest{Title: "  ", Content: "x"})
	require.ErrorIs(t, err, ErrTitleRequired)

	_, err = env.board.CreatePost(ctx(), &types.CreatePostRequest{Title: "x", Content: ""})
	require.ErrorIs(t, err, ErrTitleRequired)

	// 标题 201 个字符拒绝，200 个字符放行
	_, err = env.board.CreatePost(ctx(), &types.CreatePostRequest{
		Title:   strings.Repeat("a", 201),
		Content: "x",
	})
	require.ErrorIs(t, err, ErrTitleTooLong)

	postID, err := env.board.CreatePost(ctx(), &types.CreatePostRequest{
		Title:   strings.Repeat("a", 200),
		Content: "x",
	})
	require.NoError(t, err)
	require.NotEmpty(t, postID)
}

func TestCreatePostNicknameNormalization(t *testing.T) {
	env := newTestEnv(t)

	// 空昵称回退默认值
	postID, err := env.board.CreatePost(ctx(), &types.CreatePostRequest{
		Title: "t", Content: "c", AuthorNickname: "   ",
	})
	require.NoError(t, err)

	var post models.Post
	require.NoError(t, env.db.Where("id = ?", postID).First(&post).Error)
	require.Equal(t, "anonymous", post.AuthorNickname)

	// 超长昵称静默截断到 50
	postID, err = env.board.CreatePost(ctx(), &types.CreatePostRequest{
		Title: "t", Content: "c", AuthorNickname: strings.Repeat("n", 80),
	})
	require.NoError(t, err)

	// 查询目标用新变量，复用 post 会把旧主键当成额外查询条件
	var truncated models.Post
	require.NoError(t, env.db.Where("id = ?", postID).First(&truncated).Error)
	require.Equal(t, strings.Repeat("n", 50), truncated.AuthorNickname)
}

func TestCreateComment(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	_, err := env.board.CreateComment(ctx(), "no-such-post", &types.CreateCommentRequest{Content: "hi"})
	require.ErrorIs(t, err, ErrPostNotFound)

	_, err = env.board.CreateComment(ctx(), post.ID, &types.CreateCommentRequest{Content: "  "})
	require.ErrorIs(t, err, ErrContentRequired)

	commentID, err := env.board.CreateComment(ctx(), post.ID, &types.CreateCommentRequest{Content: "hi"})
	require.NoError(t, err)

	detail, err := env.board.GetPostDetail(ctx(), post.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 1)
	require.Equal(t, commentID, detail.Comments[0].ID)
}

func TestListPostsSearchAndPagination(t *testing.T) {
	env := newTestEnv(t)
	env.seedPost(t, "golang tips")
	env.seedPost(t, "random thoughts")
	env.seedPost(t, "more golang")

	// 标题模糊搜索
	result, err := env.board.ListPosts(ctx(), "golang", 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, result.Total)
	require.Equal(t, "golang", result.SearchQuery)

	// 分页
	result, err = env.board.ListPosts(ctx(), "", 1, 2)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)
	require.Equal(t, 2, result.TotalPages)
	require.EqualValues(t, 3, result.Total)

	result, err = env.board.ListPosts(ctx(), "", 2, 2)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Equal(t, 2, result.Page)
}

func TestListPostsExcludesDeleted(t *testing.T) {
	env := newTestEnv(t)
	kept := env.seedPost(t, "kept")
	deleted := env.seedPost(t, "deleted")
	require.NoError(t, env.board.DeletePost(ctx(), deleted.ID, ""))

	result, err := env.board.ListPosts(ctx(), "", 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	require.Equal(t, kept.ID, result.Posts[0].ID)
}

func TestGetPostDetailIncrementsViewCount(t *testing.T) {
	env := newTestEnv(t)
	post := env.seedPost(t, "hello")

	detail, err := env.board.GetPostDetail(ctx(), post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, detail.ViewCount)

	detail, err = env.board.GetPostDetail(ctx(), post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, detail.ViewCount)
}

func TestDeletePostPassword(t *testing.T) {
	env := newTestEnv(t)

	postID, err := env.board.CreatePost(ctx(), &types.CreatePostRequest{
		Title: "t", Content: "c", DeletePassword: "secret",
	})
	require.NoError(t, err)

	// 口令错误拒绝删除
	err = env.board.DeletePost(ctx(), postID, "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = env.board.GetPostDetail(ctx(), postID)
	require.NoError(t, err)

	// 口令正确软删除，详情页随即 404
	require.NoError(t, env.board.DeletePost(ctx(), postID, "secret"))

	_, err = env.board.GetPostDetail(ctx(), postID)
	require.ErrorIs(t, err, ErrPostNotFound)

	// 未设口令的帖子任意口令可删
	post := env.seedPost(t, "open")
	require.NoError(t, env.board.DeletePost(ctx(), post.ID, "anything"))
}
