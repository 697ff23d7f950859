package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/supanugit/Blog-Frontend/config"
)

// ContextTokenKey stores the session credential value inside the gin context.
const ContextTokenKey = "session_token"

// SessionGuard gates detail-page navigations on the presence of the session
// cookie. This is a presence check only: the credential's validity is
// delegated entirely to the backend, which independently rejects
// unauthenticated API requests. No post-login return path is preserved.
func SessionGuard() gin.HandlerFunc {
	cfg := config.Get()
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(cfg.SessionCookieName)
		if err != nil || token == "" {
			ctx.Redirect(http.StatusSeeOther, "/login")
			ctx.Abort()
			return
		}
		ctx.Set(ContextTokenKey, token)
		ctx.Next()
	}
}

// SessionToken returns the credential stashed by SessionGuard, or reads it
// straight from the cookie on unguarded routes. Empty means anonymous.
func SessionToken(ctx *gin.Context) string {
	if v, ok := ctx.Get(ContextTokenKey); ok {
		if s, _ := v.(string); s != "" {
			return s
		}
	}
	token, _ := ctx.Cookie(config.Get().SessionCookieName)
	return token
}
