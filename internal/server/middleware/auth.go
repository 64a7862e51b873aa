package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cidian/internal/model/auth"
	"cidian/internal/pkg/ctxutil"
	httpresp "cidian/internal/pkg/http"
	"cidian/internal/pkg/jwt"
)

// TokenVerifier 校验会话Token
type TokenVerifier interface {
	Verify(token string) (*jwt.Claims, error)
}

// ExtractToken 从 Cookie 中读取会话Token，没有时回退到 Authorization: Bearer
func ExtractToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Auth 会话认证中间件
// 校验通过后将身份注入 request context，角色统一为规范写法
func Auth(verifier TokenVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c, cookieName)
		if token == "" {
			httpresp.Abort(c, http.StatusUnauthorized, httpresp.KindAuthenticationRequired, "Authentication required")
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			httpresp.Abort(c, http.StatusUnauthorized, httpresp.KindAuthenticationRequired, "Invalid or expired session")
			return
		}

		role := claims.Role
		if r, ok := auth.ParseRole(claims.Role); ok {
			role = r.String()
		}

		ctx := ctxutil.WithSession(c.Request.Context(), &ctxutil.Session{
			AdminID:  claims.AdminID,
			Username: claims.Username,
			Role:     role,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSuperAdmin 超级管理员校验中间件，需放在 Auth 之后
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFrom(c)
		if !ok {
			httpresp.Abort(c, http.StatusUnauthorized, httpresp.KindAuthenticationRequired, "Authentication required")
			return
		}

		if !auth.IsSuperAdmin(s.Role) {
			httpresp.Abort(c, http.StatusForbidden, httpresp.KindAuthorizationDenied, "Super admin access required")
			return
		}

		c.Next()
	}
}

// SessionFrom 读取当前请求的会话身份
func SessionFrom(c *gin.Context) (*ctxutil.Session, bool) {
	return ctxutil.GetSession(c.Request.Context())
}
