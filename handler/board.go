package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"Anonboard/config"
	"Anonboard/pkg/context"
	"Anonboard/pkg/response"
	"Anonboard/service"
	"Anonboard/socket"
	"Anonboard/types"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	Config       *config.Config
	BoardService service.IBoardService
	Hub          *socket.Hub
}

func (h *BoardHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/", context.Wrap(h.Index))
	r.GET("/post/:post_id", context.Wrap(h.PostDetail))

	api := r.Group("/api")
	api.POST("/post/create", context.Wrap(h.CreatePost))
	api.POST("/post/:post_id/comment", context.Wrap(h.CreateComment))
	api.POST("/post/:post_id/delete", context.Wrap(h.DeletePost))
}

// Index 列表页，?search= 模糊搜索，?page= 分页
func (h *BoardHandler) Index(c *gin.Context) error {
	search := c.Query("search")

	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}

	result, err := h.BoardService.ListPosts(c.Request.Context(), search, page, h.Config.Board.PageSize)
	if err != nil {
		return err
	}

	response.Ok(c, result)
	return nil
}

// PostDetail 详情页，浏览数作为副作用 +1
func (h *BoardHandler) PostDetail(c *gin.Context) error {
	result, err := h.BoardService.GetPostDetail(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		return asBizError(err)
	}

	response.Ok(c, result)
	return nil
}

// CreatePost 发帖成功后向推送通道广播 new_post
func (h *BoardHandler) CreatePost(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("invalid request body")
	}

	postID, err := h.BoardService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		return asBizError(err)
	}

	h.broadcast(types.EventNewPost, gin.H{"post_id": postID, "title": req.Title})

	response.Ok(c, types.CreatePostResponse{
		Success: true,
		PostID:  postID,
		Message: "post created",
	})
	return nil
}

// CreateComment 发评论成功后广播 new_comment
func (h *BoardHandler) CreateComment(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("invalid request body")
	}

	postID := c.Param("post_id")
	commentID, err := h.BoardService.CreateComment(c.Request.Context(), postID, &req)
	if err != nil {
		return asBizError(err)
	}

	h.broadcast(types.EventNewComment, gin.H{"post_id": postID, "comment_id": commentID})

	response.Ok(c, types.CreateCommentResponse{
		Success:   true,
		CommentID: commentID,
		Message:   "comment created",
	})
	return nil
}

// DeletePost 软删除，设置过删除口令的帖子要求口令比对
func (h *BoardHandler) DeletePost(c *gin.Context) error {
	// 空请求体等价于未携带口令；chunked 请求没有 ContentLength，不能据其跳过解析
	var req types.DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.NewValidationError("invalid request body")
	}

	if err := h.BoardService.DeletePost(c.Request.Context(), c.Param("post_id"), req.DeletePassword); err != nil {
		return asBizError(err)
	}

	response.OkMessage(c, "post deleted")
	return nil
}

func (h *BoardHandler) broadcast(eventType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	h.Hub.Broadcast(&types.Event{
		Type:    eventType,
		Message: types.EventMessage(eventType),
		Data:    payload,
	}, 0)
}
