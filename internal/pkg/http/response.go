package http

import (
	"github.com/gin-gonic/gin"
)

// 错误类别，随失败响应的 error 字段返回
const (
	KindAuthenticationRequired = "AuthenticationRequired"
	KindAuthorizationDenied    = "AuthorizationDenied"
	KindValidationFailed       = "ValidationFailed"
	KindConflict               = "Conflict"
	KindNotFound               = "NotFound"
	KindInternalFailure        = "InternalFailure"
	KindServiceUnavailable     = "ServiceUnavailable"
)

// Response 统一响应信封（所有API共用）
// 成功时 success=true 并携带 data；失败时 message 为可读信息，error 为错误类别
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// OK 写入成功响应
func OK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, &Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// OKList 写入带数量的列表响应
func OKList(c *gin.Context, status int, data interface{}, count int) {
	c.JSON(status, &Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// Fail 写入失败响应，data 可选（例如冲突时返回已存在的记录）
func Fail(c *gin.Context, status int, kind, message string, data ...interface{}) {
	resp := &Response{
		Success: false,
		Message: message,
		Error:   kind,
	}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	c.JSON(status, resp)
}

// Abort 写入失败响应并中止后续处理（中间件使用）
func Abort(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, &Response{
		Success: false,
		Message: message,
		Error:   kind,
	})
}
