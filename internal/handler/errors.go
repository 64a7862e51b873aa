package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cidian/internal/ai/chain"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/pkg/jwt"
	"cidian/internal/service"
)

// RespondError 将服务层错误映射为错误类别和HTTP状态码
// 未识别的错误返回 500，message 使用 fallback，原始错误只写日志
func RespondError(c *gin.Context, err error, fallback string) {
	var ve *service.ValidationError
	var ce *service.EntryConflictError

	switch {
	case errors.As(err, &ve):
		httpresp.Fail(c, http.StatusBadRequest, httpresp.KindValidationFailed, ve.Message)
	case errors.As(err, &ce):
		httpresp.Fail(c, http.StatusConflict, httpresp.KindConflict, ce.Message, gin.H{"existingEntry": ce.Existing})
	case errors.Is(err, service.ErrEntryNotFound), errors.Is(err, service.ErrAdminNotFound):
		httpresp.Fail(c, http.StatusNotFound, httpresp.KindNotFound, err.Error())
	case errors.Is(err, service.ErrAdminExists), errors.Is(err, service.ErrLastSuperAdmin):
		httpresp.Fail(c, http.StatusConflict, httpresp.KindConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, jwt.ErrInvalidToken):
		httpresp.Fail(c, http.StatusUnauthorized, httpresp.KindAuthenticationRequired, err.Error())
	case errors.Is(err, service.ErrAIUnavailable), errors.Is(err, service.ErrStorageUnavailable):
		httpresp.Fail(c, http.StatusServiceUnavailable, httpresp.KindServiceUnavailable, err.Error())
	case errors.Is(err, chain.ErrIncompleteSuggestion):
		httpresp.Fail(c, http.StatusInternalServerError, httpresp.KindInternalFailure, "AI returned an incomplete suggestion")
	default:
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg(fallback)
		httpresp.Fail(c, http.StatusInternalServerError, httpresp.KindInternalFailure, fallback)
	}
}

// BadRequest 请求体无法解析
func BadRequest(c *gin.Context, message string) {
	httpresp.Fail(c, http.StatusBadRequest, httpresp.KindValidationFailed, message)
}
