package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/models"
	"tasktrack/internal/services"
)

// ContextUserID is the gin context key the session middleware fills in.
const ContextUserID = "user_id"

// SessionAuth resolves the session cookie into a user id and aborts with 401
// before any handler validation runs. The cookie carries only the opaque
// token; the user id lives server-side in the sessions table.
func SessionAuth(sessions services.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// preflight requests pass through
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if err == models.ErrSessionNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve session"})
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Next()
	}
}
