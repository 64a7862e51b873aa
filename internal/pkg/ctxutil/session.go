package ctxutil

import "context"

// Session 已认证请求的身份信息
type Session struct {
	AdminID  string
	Username string
	Role     string
}

// sessionKeyType 使用私有类型避免与其他 context key 冲突
type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

// WithSession 将会话身份注入到 context 中
// 说明：在认证中间件解析 Token 成功后调用
func WithSession(ctx context.Context, s *Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession 从 context 中解析会话身份
func GetSession(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(sessionKey).(*Session)
	if !ok || s == nil || s.AdminID == "" {
		return nil, false
	}
	return s, true
}
