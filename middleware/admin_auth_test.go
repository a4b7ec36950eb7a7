// middleware/admin_auth_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	r := gin.New()
	reached := false
	r.POST("/admin", AdminAuth(), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	t.Run("unconfigured key is a server error", func(t *testing.T) {
		viper.Set("admin.apiKey", "")
		reached = false

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin", nil)
		req.Header.Set("X-Admin-Key", "anything")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, reached)
	})

	viper.Set("admin.apiKey", "secret")
	defer viper.Set("admin.apiKey", "")

	t.Run("missing key", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("wrong key", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin", nil)
		req.Header.Set("X-Admin-Key", "nope")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, reached)
	})

	t.Run("correct key", func(t *testing.T) {
		reached = false
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/admin", nil)
		req.Header.Set("X-Admin-Key", "secret")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, reached)
	})
}
