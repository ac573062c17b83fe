package handlers

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
)

// currentUserID reads the user id the session middleware stored in the
// context. Robust against the stored type (int / int64 / float64).
func currentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	}
	return 0, false
}
