// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kada-connect/api/config"
	logger "github.com/kada-connect/api/logging"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

// RespondWithData writes a success envelope.
func RespondWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{Success: true, Message: message, Data: data})
}

// RespondWithError logs the failure and writes an error envelope. The
// underlying error detail is only exposed outside production.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))

	resp := Response{Success: false, Message: message, Data: nil}
	if err != nil && !config.IsProduction() {
		resp.Error = err.Error()
	}
	c.JSON(code, resp)
}

// GetUserIDFromContext returns the acting user identity set by middleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetUserRoleFromContext returns the acting role set by middleware.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	role, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok && r != ""
}
