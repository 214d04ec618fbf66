package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FailBody 统一失败响应体
type FailBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Ok 成功响应，payload 自带 success 字段时直接输出
func Ok(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// OkMessage 简单成功响应
func OkMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// Abort 中断请求并写失败响应
func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, FailBody{Success: false, Error: msg})
}
