package dictionary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// Update 更新词条
// @Summary      更新词条
// @Description  status 缺省时保持原状态；与其他词条重复时返回 409
// @Tags         词典
// @Accept       json
// @Produce      json
// @Param        id       path      string        true  "词条ID"
// @Param        request  body      EntryRequest  true  "词条"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      404      {object}  httpresp.Response
// @Failure      409      {object}  httpresp.Response
// @Router       /words/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.dictionaryService.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		handler.RespondError(c, err, "Failed to update dictionary entry")
		return
	}

	httpresp.OK(c, http.StatusOK, "Dictionary entry updated successfully", entry)
}
