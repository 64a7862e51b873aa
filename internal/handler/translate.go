package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	httpresp "cidian/internal/pkg/http"
	"cidian/internal/service"
)

// TranslateHandler AI 翻译建议处理器
type TranslateHandler struct {
	translateService *service.TranslateService
}

// NewTranslateHandler 创建翻译处理器
func NewTranslateHandler(translateService *service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translateService: translateService}
}

// TranslateRequest 单个翻译请求
type TranslateRequest struct {
	Input string `json:"input"` // 输入词
	Type  string `json:"type"`  // chinese 或 english，表示输入的语言
}

// Translate 生成单个词条建议
// @Summary      AI 翻译建议
// @Description  根据中文或英文输入生成 chinese/english/pinyin/phonetic 建议
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      TranslateRequest  true  "翻译请求"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      503      {object}  httpresp.Response
// @Router       /ai-translate [post]
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body")
		return
	}

	suggestion, err := h.translateService.Translate(c.Request.Context(), req.Input, req.Type)
	if err != nil {
		RespondError(c, err, "Failed to generate translation")
		return
	}

	httpresp.OK(c, http.StatusOK, "", suggestion)
}

// BatchTranslateRequest 批量翻译请求，words 与 text 二选一
type BatchTranslateRequest struct {
	Words []string `json:"words"` // 词表
	Text  string   `json:"text"`  // 整段文本，按类型拆分为词表
	Type  string   `json:"type"`  // chinese 或 english
}

// BatchTranslate 分批生成词条建议
// @Summary      AI 批量翻译
// @Description  每批并发处理，批次之间有固定间隔；单条失败不影响其他条目
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      BatchTranslateRequest  true  "批量翻译请求"
// @Success      200      {object}  httpresp.Response
// @Failure      400      {object}  httpresp.Response
// @Failure      503      {object}  httpresp.Response
// @Router       /ai-translate/batch [post]
func (h *TranslateHandler) BatchTranslate(c *gin.Context) {
	var req BatchTranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body")
		return
	}

	words := req.Words
	if len(words) == 0 && strings.TrimSpace(req.Text) != "" {
		extracted, err := h.translateService.ExtractWords(req.Text, req.Type)
		if err != nil {
			RespondError(c, err, "Failed to extract words")
			return
		}
		words = extracted
	}

	result, err := h.translateService.BatchTranslate(c.Request.Context(), words, req.Type)
	if err != nil {
		RespondError(c, err, "Failed to run batch translation")
		return
	}

	httpresp.OK(c, http.StatusOK, "Batch translation completed", result)
}
