package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 匿名会话标识：无账号体系，浏览器用一个不透明 token 区分访客

const cookieMaxAge = 365 * 24 * 3600

// FromRequest 取出会话 token，没有则签发一个并种 cookie
// 请求体里显式带的 session_id 优先（前端 localStorage 方案）
func FromRequest(c *gin.Context, cookieName string, bodySessionID string) string {
	if bodySessionID != "" {
		return bodySessionID
	}
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	token := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, token, cookieMaxAge, "/", "", false, true)
	return token
}
