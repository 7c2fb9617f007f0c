package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/pkg/helpers"
	"github.com/EliyatMagar/websathi-new/pkg/response"
)

// CtxUserIDKey holds the resolved user id (int64) in the Gin context.
const CtxUserIDKey = "userID"

// tokenFromRequest locates a session token: Authorization bearer header
// first, then the token cookie.
func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if tok, err := c.Cookie(helpers.SessionCookieName); err == nil {
		return tok
	}
	return ""
}

// Identify resolves the session token to a user identity when possible and
// never aborts: absent or invalid tokens leave the request anonymous so
// public endpoints keep working. Write paths escalate via RequireAuth.
func Identify(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFromRequest(c)
		if tok == "" {
			c.Next()
			return
		}
		claims, err := jwt.Verify(tok)
		if err != nil {
			c.Next()
			return
		}
		uid, err := claims.NumericUserID()
		if err != nil {
			c.Next()
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// RequireAuth aborts with 401 when Identify resolved no user. It must run
// after Identify in the chain.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == 0 {
			response.AbortErr(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id, or 0 for anonymous requests.
func UserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}
