package dictionary

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/service"
)

// BatchCreateRequest 批量创建请求
type BatchCreateRequest struct {
	Entries []EntryRequest `json:"entries"`
}

// BatchCreate 批量创建词条
// @Summary      批量创建词条
// @Description  逐条处理，单条失败记录在 errors 中；部分失败时仍返回 201
// @Tags         词典
// @Accept       json
// @Produce      json
// @Param        request  body      BatchCreateRequest  true  "词条列表"
// @Success      201      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Router       /words/batch [post]
func (h *Handler) BatchCreate(c *gin.Context) {
	var req BatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Invalid request body")
		return
	}

	inputs := make([]service.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		inputs = append(inputs, e.input())
	}

	result, err := h.dictionaryService.BatchCreate(c.Request.Context(), inputs)
	if err != nil {
		handler.RespondError(c, err, "Failed to process batch dictionary entries")
		return
	}

	msg := fmt.Sprintf("Batch operation completed: %d created, %d failed",
		result.Summary.Successful, result.Summary.Failed)
	httpresp.OK(c, http.StatusCreated, msg, result)
}
