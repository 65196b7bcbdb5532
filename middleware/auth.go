package middleware

import (
	"Blackout/config"
	"Blackout/pkg/context"
	"Blackout/pkg/jwt"
	"Blackout/pkg/response"
	stdctx "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenStore 登出吊销的 token 记录
type TokenStore interface {
	IsRevoked(ctx stdctx.Context, jti string) bool
}

const loginPath = "/login"

// Auth 必须登录。页面请求跳转登录页，接口请求返回 401
func Auth(conf *config.Jwt, store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, conf, store)
		if !ok {
			if isAPIRequest(c) {
				response.Abort(c, http.StatusUnauthorized, "Login required")
				return
			}
			response.Flash(c, response.FlashInfo, "Please log in to access this page.")
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// Identify 可选登录，仅在 token 有效时注入当前用户
func Identify(conf *config.Jwt, store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := authenticate(c, conf, store); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// Guest 已登录用户访问登录注册页时直接回首页
func Guest(conf *config.Jwt, store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, conf, store); ok {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, conf *config.Jwt, store TokenStore) (*jwt.Claims, bool) {
	raw := tokenFromRequest(c, conf.CookieName)
	if raw == "" {
		return nil, false
	}

	claims, err := jwt.ParseToken([]byte(conf.Secret), jwt.TypeAccess, raw)
	if err != nil {
		return nil, false
	}
	if store != nil && store.IsRevoked(c.Request.Context(), claims.ID) {
		return nil, false
	}
	return claims, true
}

// cookie 优先，其次 Authorization: Bearer
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set(context.CtxUserID, claims.UserID)
	c.Set(context.CtxUserName, claims.Name)
	c.Set(context.CtxTokenID, claims.ID)
	c.Set(ctxClaims, claims)
}

const ctxClaims = "jwt_claims"

// GetClaims 取当前请求已校验的 token
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

func isAPIRequest(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
