package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	"cidian/internal/model/auth"
	httpresp "cidian/internal/pkg/http"
)

// LoginRequest 登录请求，username 也可以填写邮箱
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminInfo 登录成功后返回的管理员信息
type AdminInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponseData 登录响应数据
type LoginResponseData struct {
	Admin     AdminInfo `json:"admin"`
	ExpiresIn int       `json:"expiresIn"` // 会话有效期（秒）
}

func toAdminInfo(a *auth.Admin) AdminInfo {
	return AdminInfo{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role.String(),
	}
}

// Login 管理员登录
// @Summary      管理员登录
// @Description  使用用户名或邮箱登录，成功后写入 HttpOnly 会话Cookie
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "登录请求"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      401      {object}  httpresp.Response
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Username and password are required")
		return
	}

	result, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handler.RespondError(c, err, "Internal server error")
		return
	}

	h.setSessionCookie(c, result.Token, result.ExpiresIn)
	httpresp.OK(c, http.StatusOK, "Login successful", LoginResponseData{
		Admin:     toAdminInfo(result.Admin),
		ExpiresIn: int(result.ExpiresIn.Seconds()),
	})
}
