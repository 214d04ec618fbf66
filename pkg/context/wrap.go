package context

import (
	"errors"
	"net/http"

	"Anonboard/pkg/log"
	"Anonboard/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 已写过响应则直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Status, response.FailBody{Success: false, Error: be.Msg})
				return
			}
			// 未知错误只记日志，不向外泄露细节
			log.L.Error("handler error", zap.String("path", c.FullPath()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.FailBody{
				Success: false,
				Error:   "internal error",
			})
		}
	}
}
