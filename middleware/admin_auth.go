// middleware/admin_auth.go

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kada-connect/api/config"
	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/util"
)

// AdminAuth gates privileged endpoints on the X-Admin-Key header. A missing
// key yields 401, a wrong key 403 — never a 404.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		configured := config.GetString("admin.apiKey")
		if configured == "" {
			logger.Error("Admin API key is not configured")
			util.RespondWithError(c, http.StatusInternalServerError, "Admin access not configured", nil)
			c.Abort()
			return
		}

		supplied := c.GetHeader("X-Admin-Key")
		if supplied == "" {
			util.RespondWithError(c, http.StatusUnauthorized, "Admin key required", kada_errors.ErrAdminKeyRequired)
			c.Abort()
			return
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(configured)) != 1 {
			logger.Warn("Invalid admin key", zap.String("ip", c.ClientIP()))
			util.RespondWithError(c, http.StatusForbidden, "Invalid admin key", kada_errors.ErrAdminKeyInvalid)
			c.Abort()
			return
		}

		c.Set("userID", "admin")
		c.Set("userRole", "admin")
		c.Next()
	}
}
