package dictionary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// Create 创建词条
// @Summary      创建词条
// @Description  四个字段均必填；中文或英文已存在时返回 409 并附带已存在的词条
// @Tags         词典
// @Accept       json
// @Produce      json
// @Param        request  body      EntryRequest  true  "词条"
// @Success      201      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      409      {object}  httpresp.Response
// @Router       /words [post]
func (h *Handler) Create(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.dictionaryService.Create(c.Request.Context(), req.input())
	if err != nil {
		handler.RespondError(c, err, "Failed to create dictionary entry")
		return
	}

	httpresp.OK(c, http.StatusCreated, "Dictionary entry created successfully", entry)
}
