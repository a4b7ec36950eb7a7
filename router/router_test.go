// router/router_test.go

package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kada-connect/api/controller"
	"github.com/kada-connect/api/db"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/router"
	"github.com/kada-connect/api/service"
	"github.com/kada-connect/api/test/mock"
	"github.com/kada-connect/api/util"
)

func setupTestRouter(t *testing.T, lookup *mock.MockLookupService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()

	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { db.RedisClient.Close() })

	services := &service.Services{Lookup: lookup}
	imageProxy := util.NewImageProxy("development", []string{"http://localhost:8080"}, nil)
	controllers := controller.InitializeControllers(services, imageProxy)

	return router.SetupRouter(controllers, []string{"*"}, 100, time.Minute)
}

func TestRouter_NotFoundEnvelope(t *testing.T) {
	engine := setupTestRouter(t, new(mock.MockLookupService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/no-such-thing", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Not Found - /api/no-such-thing", resp.Message)
}

func TestRouter_Health(t *testing.T) {
	engine := setupTestRouter(t, new(mock.MockLookupService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()

	mr := miniredis.RunT(t)
	db.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { db.RedisClient.Close() })

	lookup := new(mock.MockLookupService)
	lookup.On("GetIndustries", tmock.Anything).Return([]string{"Finance"}, nil)

	services := &service.Services{Lookup: lookup}
	imageProxy := util.NewImageProxy("development", []string{"http://localhost:8080"}, nil)
	controllers := controller.InitializeControllers(services, imageProxy)
	engine := router.SetupRouter(controllers, []string{"*"}, 2, time.Minute)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/industries", nil)
		engine.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_CORSPreflight(t *testing.T) {
	engine := setupTestRouter(t, new(mock.MockLookupService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/api/industries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}
