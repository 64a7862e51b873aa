package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/server/middleware"
	"cidian/internal/service"
)

// UpdateRequest 修改管理员请求，字段缺省表示不修改
type UpdateRequest struct {
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role"`
}

// Update 修改管理员启用状态或角色
// @Summary      修改管理员
// @Description  不能停用自己；不能停用或降级最后一个启用的超级管理员
// @Tags         管理员
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "管理员ID"
// @Param        request  body      UpdateRequest  true  "修改内容"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      404      {object}  httpresp.Response
// @Failure      409      {object}  httpresp.Response
// @Router       /admins/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Invalid request body")
		return
	}

	caller, _ := middleware.SessionFrom(c)
	admin, err := h.adminService.Update(c.Request.Context(), caller, c.Param("id"), service.UpdateAdminInput{
		IsActive: req.IsActive,
		Role:     req.Role,
	})
	if err != nil {
		handler.RespondError(c, err, "Failed to update admin")
		return
	}

	httpresp.OK(c, http.StatusOK, "Admin updated successfully", toAdminView(admin))
}
