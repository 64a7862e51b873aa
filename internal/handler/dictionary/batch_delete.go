package dictionary

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// BatchDelete 批量删除词条
// @Summary      批量删除词条
// @Description  非法ID被忽略；不存在的ID不报错，只是不计入删除数量
// @Tags         词典
// @Accept       json
// @Produce      json
// @Param        request  body      IDsRequest  true  "ID列表"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Router       /words/batch/delete [delete]
func (h *Handler) BatchDelete(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "IDs array is required and must not be empty")
		return
	}

	result, err := h.dictionaryService.BatchDelete(c.Request.Context(), req.IDs)
	if err != nil {
		handler.RespondError(c, err, "Failed to delete dictionary entries")
		return
	}

	httpresp.OK(c, http.StatusOK, fmt.Sprintf("Successfully deleted %d dictionary entries", result.DeletedCount), result)
}
