package dictionary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// Snapshot 导出 CSV 快照到对象存储
// @Summary      导出快照
// @Description  上传到配置的存储（本地或 OSS），返回下载地址；未配置存储时返回 503
// @Tags         词典
// @Produce      json
// @Success      201  {object}  httpresp.Response
// @Failure      503  {object}  httpresp.Response
// @Router       /words/snapshots [post]
func (h *Handler) Snapshot(c *gin.Context) {
	result, err := h.dictionaryService.Snapshot(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, "Failed to export dictionary snapshot")
		return
	}

	httpresp.OK(c, http.StatusCreated, "Snapshot exported", result)
}
