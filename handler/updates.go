package handler

import (
	"strconv"

	"Anonboard/pkg/context"
	"Anonboard/pkg/response"
	"Anonboard/service"

	"github.com/gin-gonic/gin"
)

type UpdatesHandler struct {
	UpdatesService service.IUpdatesService
}

func (h *UpdatesHandler) RegisterRouter(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/check-updates", context.Wrap(h.CheckUpdates))
}

// CheckUpdates 轮询兜底接口
// 游标来自上次响应的 next_cursor，首次不带游标只拿新游标
func (h *UpdatesHandler) CheckUpdates(c *gin.Context) error {
	var cursor int64
	if v, err := strconv.ParseInt(c.Query("cursor"), 10, 64); err == nil {
		cursor = v
	}

	result, err := h.UpdatesService.CheckUpdates(c.Request.Context(), cursor)
	if err != nil {
		return err
	}

	response.Ok(c, result)
	return nil
}
