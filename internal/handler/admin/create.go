package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/service"
)

// CreateRequest 创建管理员请求
type CreateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // 可选，默认 ADMIN
}

// Create 创建管理员
// @Summary      创建管理员
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "管理员信息"
// @Success      201      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      409      {object}  httpresp.Response
// @Router       /admins [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Invalid request body")
		return
	}

	admin, err := h.adminService.Create(c.Request.Context(), service.CreateAdminInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		handler.RespondError(c, err, "Failed to create admin")
		return
	}

	httpresp.OK(c, http.StatusCreated, "Admin created successfully", toAdminView(admin))
}
