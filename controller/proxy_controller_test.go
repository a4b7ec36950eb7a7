// controller/proxy_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kada-connect/api/controller"
	"github.com/kada-connect/api/util"
)

func setupProxyRouter(allowedHosts []string) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	proxy := util.NewImageProxy("development", []string{"http://localhost:8080"}, allowedHosts)
	controller.NewProxyController(proxy).RegisterRoutes(api)
	return r
}

func TestProxyController_StreamsAllowedImage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer upstream.Close()

	router := setupProxyRouter([]string{"127.0.0.1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/image?url="+url.QueryEscape(upstream.URL+"/photo.png"), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Cache-Control"))
}

func TestProxyController_MissingURL(t *testing.T) {
	router := setupProxyRouter([]string{"images.unsplash.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/image", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProxyController_UnlistedHost(t *testing.T) {
	router := setupProxyRouter([]string{"images.unsplash.com"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/image?url="+url.QueryEscape("https://evil.example.com/a.png"), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProxyController_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := setupProxyRouter([]string{"127.0.0.1"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/proxy/image?url="+url.QueryEscape(upstream.URL+"/a.png"), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
