package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// usernameKey is the gin context key holding the authenticated username
const usernameKey = "currentUser"

// resolveSession reads the session cookie and, when the token resolves,
// stores the authenticated username in the request context. Requests
// without a valid session pass through anonymously; endpoints that need
// an identity use requireAuth.
func (r *Router) resolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(r.sessionCfg.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		username, err := r.sessions.Get(c.Request.Context(), token)
		if err != nil {
			r.logger.Warn("Session lookup failed", zap.Error(err))
			c.Next()
			return
		}
		if username != "" {
			c.Set(usernameKey, username)
		}
		c.Next()
	}
}

// requireAuth rejects requests that did not resolve to an authenticated
// username
func requireAuth(c *gin.Context) {
	if currentUsername(c) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.Next()
}

// currentUsername returns the authenticated username, or "" for
// anonymous requests
func currentUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}
