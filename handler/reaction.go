package handler

import (
	"encoding/json"

	"Anonboard/config"
	"Anonboard/pkg/context"
	"Anonboard/pkg/response"
	"Anonboard/pkg/session"
	"Anonboard/service"
	"Anonboard/socket"
	"Anonboard/types"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	Config          *config.Config
	ReactionService service.IReactionService
	Hub             *socket.Hub
}

func (h *ReactionHandler) RegisterRouter(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/post/:post_id/reaction", context.Wrap(h.TogglePostReaction))
	api.POST("/comment/:comment_id/reaction", context.Wrap(h.ToggleCommentReaction))
}

// toggleResponse 反应接口响应体
type toggleResponse struct {
	Success   bool                 `json:"success"`
	Action    types.ToggleAction   `json:"action"`
	Count     int64                `json:"count"`
	IsActive  bool                 `json:"is_active"`
	Counts    types.ReactionCounts `json:"counts"`
	SessionID string               `json:"session_id"`
}

func (h *ReactionHandler) TogglePostReaction(c *gin.Context) error {
	var req types.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("invalid request body")
	}

	postID := c.Param("post_id")
	sessionID := session.FromRequest(c, h.Config.Board.SessionCookie, req.SessionID)

	result, err := h.ReactionService.TogglePost(
		c.Request.Context(), postID, sessionID, types.ReactionType(req.ReactionType))
	if err != nil {
		return asBizError(err)
	}

	h.broadcastReaction("post", postID, result)

	response.Ok(c, toggleResponse{
		Success:   true,
		Action:    result.Action,
		Count:     result.Count,
		IsActive:  result.IsActive,
		Counts:    result.Counts,
		SessionID: sessionID,
	})
	return nil
}

func (h *ReactionHandler) ToggleCommentReaction(c *gin.Context) error {
	var req types.ToggleReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewValidationError("invalid request body")
	}

	commentID := c.Param("comment_id")
	sessionID := session.FromRequest(c, h.Config.Board.SessionCookie, req.SessionID)

	result, err := h.ReactionService.ToggleComment(
		c.Request.Context(), commentID, sessionID, types.ReactionType(req.ReactionType))
	if err != nil {
		return asBizError(err)
	}

	h.broadcastReaction("comment", commentID, result)

	response.Ok(c, toggleResponse{
		Success:   true,
		Action:    result.Action,
		Count:     result.Count,
		IsActive:  result.IsActive,
		Counts:    result.Counts,
		SessionID: sessionID,
	})
	return nil
}

// broadcastReaction 写入提交后向推送通道广播最新计数
func (h *ReactionHandler) broadcastReaction(targetType, targetID string, result *types.ToggleResult) {
	payload, err := json.Marshal(gin.H{
		"target_type": targetType,
		"target_id":   targetID,
		"action":      result.Action,
		"counts":      result.Counts,
	})
	if err != nil {
		return
	}
	h.Hub.Broadcast(&types.Event{
		Type:    types.EventReactionUpdate,
		Message: types.EventMessage(types.EventReactionUpdate),
		Data:    payload,
	}, 0)
}
