package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/server/middleware"
)

// Delete 删除管理员
// @Summary      删除管理员
// @Description  不能删除自己；不能删除最后一个启用的超级管理员
// @Tags         管理员
// @Produce      json
// @Param        id   path      string  true  "管理员ID"
// @Success      200  {object}  httpresp.Response
// @Failure      400  {object}  httpresp.Response
// @Failure      404  {object}  httpresp.Response
// @Router       /admins/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	caller, _ := middleware.SessionFrom(c)
	if err := h.adminService.Delete(c.Request.Context(), caller, c.Param("id")); err != nil {
		handler.RespondError(c, err, "Failed to delete admin")
		return
	}

	httpresp.OK(c, http.StatusOK, "Admin deleted successfully", nil)
}
