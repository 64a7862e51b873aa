package dictionary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// Search 词条前缀搜索（公开）
// @Summary      搜索词条
// @Description  chinese/english/pinyin/phonetic 任一字段以 q 开头（大小写无关），q 为空返回全部
// @Tags         词典
// @Produce      json
// @Param        q    query     string  false  "查询前缀"
// @Success      200  {object}  httpresp.Response
// @Router       /words [get]
func (h *Handler) Search(c *gin.Context) {
	entries, err := h.dictionaryService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		handler.RespondError(c, err, "Failed to search dictionary")
		return
	}
	httpresp.OKList(c, http.StatusOK, entries, len(entries))
}
