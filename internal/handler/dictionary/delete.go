package dictionary

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cidian/internal/handler"
	httpresp "cidian/internal/pkg/http"
)

// Delete 删除词条
// @Summary      删除词条
// @Tags         词典
// @Produce      json
// @Param        id   path      string  true  "词条ID"
// @Success      200  {object}  httpresp.Response
// @Failure      400  {object}  httpresp.Response
// @Failure      404  {object}  httpresp.Response
// @Router       /words/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	entry, err := h.dictionaryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err, "Failed to delete dictionary entry")
		return
	}

	httpresp.OK(c, http.StatusOK, "Dictionary entry deleted successfully", entry)
}
