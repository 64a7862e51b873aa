package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/model/auth"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/server/middleware"
)

// SessionIdentity 当前会话身份
type SessionIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Verify 校验当前会话Cookie并返回身份
// @Summary      校验会话
// @Tags         认证
// @Produce      json
// @Success      200  {object}  httpresp.Response
// @Failure      401  {object}  httpresp.Response
// @Router       /auth/verify [get]
func (h *Handler) Verify(c *gin.Context) {
	token := middleware.ExtractToken(c, h.cookie.Name)
	if token == "" {
		httpresp.Fail(c, http.StatusUnauthorized, httpresp.KindAuthenticationRequired, "No token provided")
		return
	}

	claims, err := h.authService.Verify(token)
	if err != nil {
		httpresp.Fail(c, http.StatusUnauthorized, httpresp.KindAuthenticationRequired, "Invalid token")
		return
	}

	role := claims.Role
	if r, ok := auth.ParseRole(role); ok {
		role = r.String()
	}

	httpresp.OK(c, http.StatusOK, "", SessionIdentity{
		ID:       claims.AdminID,
		Username: claims.Username,
		Role:     role,
	})
}
