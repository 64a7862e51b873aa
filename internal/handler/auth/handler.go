package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cidian/internal/service"
)

// CookieOptions 会话Cookie配置
type CookieOptions struct {
	Name   string
	Secure bool // 生产模式或显式配置时启用
}

// Handler 认证处理器
// 所有auth相关的Handler方法都通过这个结构体访问Service
type Handler struct {
	authService *service.AuthService
	cookie      CookieOptions
}

// NewHandler 创建认证处理器
func NewHandler(authService *service.AuthService, cookie CookieOptions) *Handler {
	return &Handler{
		authService: authService,
		cookie:      cookie,
	}
}

// setSessionCookie 写入 HttpOnly + SameSite=Strict 的会话Cookie，maxAge 为 0 时清除
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	age := int(maxAge.Seconds())
	if maxAge <= 0 {
		age = -1
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookie.Name, token, age, "/", "", h.cookie.Secure, true)
}
