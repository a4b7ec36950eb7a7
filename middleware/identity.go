// middleware/identity.go

package middleware

import (
	"github.com/gin-gonic/gin"
)

// Identity copies the acting user headers into the request context for
// controllers and the RBAC check. Authentication itself happens upstream of
// this service; the gateway forwards the verified identity as headers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set("userID", userID)
		}
		if role := c.GetHeader("X-User-Role"); role != "" {
			c.Set("userRole", role)
		}
		c.Next()
	}
}
