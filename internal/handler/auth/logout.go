package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpresp "cidian/internal/pkg/http"
)

// Logout 退出登录，清除会话Cookie
// 会话Token不落库，清除Cookie即可
// @Summary      退出登录
// @Tags         认证
// @Produce      json
// @Success      200  {object}  httpresp.Response
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", 0)
	httpresp.OK(c, http.StatusOK, "Logged out successfully", nil)
}
