package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	httpresp "cidian/internal/pkg/http"
)

// Recovery 异常恢复中间件，panic 以统一错误信封返回 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Str("request_id", c.GetString(RequestIDKey)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if c.Writer.Written() {
					c.Abort()
					return
				}
				httpresp.Abort(c, http.StatusInternalServerError, httpresp.KindInternalFailure, "Internal server error")
			}
		}()
		c.Next()
	}
}
