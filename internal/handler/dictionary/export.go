package dictionary

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
)

// Export 下载全部词条的 CSV
// @Summary      导出 CSV
// @Tags         词典
// @Produce      text/csv
// @Success      200  {string}  string  "CSV 文件"
// @Router       /words/export [get]
func (h *Handler) Export(c *gin.Context) {
	// 先写入缓冲区，失败时仍可返回 JSON 错误
	var buf bytes.Buffer
	if _, err := h.dictionaryService.ExportCSV(c.Request.Context(), &buf); err != nil {
		handler.RespondError(c, err, "Failed to export dictionary")
		return
	}

	filename := fmt.Sprintf("dictionary-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
