package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// List 管理员列表
// @Summary      管理员列表
// @Description  按创建时间倒序，需要超级管理员权限
// @Tags         管理员
// @Produce      json
// @Success      200  {object}  httpresp.Response
// @Failure      401  {object}  httpresp.Response
// @Failure      403  {object}  httpresp.Response
// @Router       /admins [get]
func (h *Handler) List(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, "Failed to fetch admins")
		return
	}

	views := make([]AdminView, 0, len(admins))
	for _, a := range admins {
		views = append(views, toAdminView(a))
	}
	httpresp.OKList(c, http.StatusOK, views, len(views))
}
