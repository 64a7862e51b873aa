package dictionary

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// UpdateStatusRequest 批量更新状态请求
type UpdateStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"` // NOT_REVIEWED, APPROVED, REJECTED
}

// UpdateStatus 批量更新审核状态
// @Summary      批量更新审核状态
// @Tags         词典
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateStatusRequest  true  "ID列表与目标状态"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Router       /words/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.dictionaryService.UpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		handler.RespondError(c, err, "Failed to update word status")
		return
	}

	msg := fmt.Sprintf("Successfully updated %d entries to %s", result.UpdatedCount, result.Status)
	httpresp.OK(c, http.StatusOK, msg, result)
}
