package handler

import (
	"Anonboard/config"
	"Anonboard/pkg/context"
	"Anonboard/socket"

	"github.com/gin-gonic/gin"
)

type WSHandler struct {
	Config *config.Config
	Hub    *socket.Hub
}

func (h *WSHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/ws", context.Wrap(h.HandleWS))
}

// HandleWS 升级为 WebSocket 并加入全板广播组
func (h *WSHandler) HandleWS(c *gin.Context) error {
	return socket.ServeWS(h.Hub, c, h.Config.Board.SendBuffer)
}
