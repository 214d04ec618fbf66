package service

import (
	"context"
	"strings"

	"Anonboard/dao"
	"Anonboard/models"
	"Anonboard/types"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxTitleLen    = 200
	maxNicknameLen = 50

	defaultNickname = "anonymous"
)

var _ IBoardService = (*BoardService)(nil)

type IBoardService interface {
	ListPosts(ctx context.Context, search string, page, pageSize int) (*types.PostListResponse, error)
	GetPostDetail(ctx context.Context, postID string) (*types.PostDetailResponse, error)
	CreatePost(ctx context.Context, req *types.CreatePostRequest) (string, error)
	CreateComment(ctx context.Context, postID string, req *types.CreateCommentRequest) (string, error)
	DeletePost(ctx context.Context, postID, deletePassword string) error
}

type BoardService struct {
	PostDAO    *dao.PostDAO
	CommentDAO *dao.CommentDAO
}

// ListPosts 列表页，支持标题/正文/昵称模糊搜索，软删除的不可见
func (s *BoardService) ListPosts(ctx context.Context, search string, page, pageSize int) (*types.PostListResponse, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := s.PostDAO.Search(ctx, search, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}
	commentCounts, err := s.CommentDAO.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]*types.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, &types.PostSummary{
			ID:             p.ID,
			Title:          p.Title,
			AuthorNickname: p.AuthorNickname,
			ViewCount:      p.ViewCount,
			CommentCount:   commentCounts[p.ID],
			Counts:         p.Counts(),
			CreatedAt:      p.CreatedAt,
		})
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &types.PostListResponse{
		Posts:       summaries,
		Page:        page,
		TotalPages:  totalPages,
		Total:       total,
		SearchQuery: search,
	}, nil
}

// GetPostDetail 详情页，浏览数 +1 后返回帖子与全部评论
func (s *BoardService) GetPostDetail(ctx context.Context, postID string) (*types.PostDetailResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := s.PostDAO.IncrViewCount(ctx, postID); err != nil {
		return nil, err
	}
	post.ViewCount++

	comments, err := s.CommentDAO.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	commentResponses := make([]*types.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		commentResponses = append(commentResponses, &types.CommentResponse{
			ID:             cm.ID,
			PostID:         cm.PostID,
			Content:        cm.Content,
			AuthorNickname: cm.AuthorNickname,
			Counts:         cm.Counts(),
			CreatedAt:      cm.CreatedAt,
		})
	}

	return &types.PostDetailResponse{
		ID:             post.ID,
		Title:          post.Title,
		Content:        post.Content,
		AuthorNickname: post.AuthorNickname,
		ViewCount:      post.ViewCount,
		Counts:         post.Counts(),
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
		Comments:       commentResponses,
	}, nil
}

// CreatePost 发帖。昵称超长静默截断，标题超长拒绝
func (s *BoardService) CreatePost(ctx context.Context, req *types.CreatePostRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" {
		return "", ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLen {
		return "", ErrTitleTooLong
	}

	post := &models.Post{
		ID:             uuid.NewString(),
		Title:          title,
		Content:        content,
		AuthorNickname: normalizeNickname(req.AuthorNickname),
	}

	if req.DeletePassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.DeletePassword), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		post.DeletePassword = string(hash)
	}

	if err := s.PostDAO.Create(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

// CreateComment 发评论，帖子必须存在且未删除
func (s *BoardService) CreateComment(ctx context.Context, postID string, req *types.CreateCommentRequest) (string, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", ErrPostNotFound
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return "", ErrContentRequired
	}

	comment := &models.Comment{
		ID:             uuid.NewString(),
		PostID:         postID,
		Content:        content,
		AuthorNickname: normalizeNickname(req.AuthorNickname),
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return "", err
	}
	return comment.ID, nil
}

// DeletePost 软删除。帖子设了删除口令则必须比对通过
func (s *BoardService) DeletePost(ctx context.Context, postID, deletePassword string) error {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if post.DeletePassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(post.DeletePassword), []byte(deletePassword)) != nil {
			return ErrWrongPassword
		}
	}

	return s.PostDAO.SoftDelete(ctx, postID)
}

// normalizeNickname 去空白、超长截断、空则回退默认昵称
func normalizeNickname(nickname string) string {
	nickname = strings.TrimSpace(nickname)
	if runes := []rune(nickname); len(runes) > maxNicknameLen {
		nickname = string(runes[:maxNicknameLen])
	}
	if nickname == "" {
		return defaultNickname
	}
	return nickname
}
