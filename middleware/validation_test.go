// middleware/validation_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
	m.Run()
}

func TestValidateSearchQuery(t *testing.T) {
	r := gin.New()
	var captured string
	r.GET("/search", ValidateSearchQuery(), func(c *gin.Context) {
		captured = c.GetString("searchQuery")
		c.Status(http.StatusOK)
	})

	t.Run("trims and forwards the query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/search?q=%20fintech%20", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fintech", captured)
	})

	t.Run("rejects missing query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/search", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects whitespace-only query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/search?q=%20%20", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects oversized query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/search?q="+strings.Repeat("x", util.MaxSearchQueryLength+1), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdentity(t *testing.T) {
	r := gin.New()
	var userID, userRole string
	r.Use(Identity())
	r.GET("/whoami", func(c *gin.Context) {
		userID = c.GetString("userID")
		userRole = c.GetString("userRole")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User-ID", "user-7")
	req.Header.Set("X-User-Role", "student")
	r.ServeHTTP(w, req)

	assert.Equal(t, "user-7", userID)
	assert.Equal(t, "student", userRole)

	userID, userRole = "", ""
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Empty(t, userID)
	assert.Empty(t, userRole)
}
