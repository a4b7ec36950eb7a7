// controller/proxy_controller.go
package controller

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kada-connect/api/util"
)

// maxProxyImageBytes caps the upstream body copied to the client.
const maxProxyImageBytes = 10 << 20

type ProxyController struct {
	imageProxy *util.ImageProxy
	client     *http.Client
}

func NewProxyController(imageProxy *util.ImageProxy) *ProxyController {
	return &ProxyController{
		imageProxy: imageProxy,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RegisterRoutes registers the image proxy route
func (pc *ProxyController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/proxy/image", pc.GetImage)
}

// GetImage fetches an allow-listed upstream image and streams it back.
func (pc *ProxyController) GetImage(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Image URL is required", fmt.Errorf("missing url parameter"))
		return
	}

	if !pc.imageProxy.Allowed(rawURL) {
		util.RespondWithError(c, http.StatusForbidden, "Image host is not allowed", fmt.Errorf("host not in allow list"))
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid image URL", err)
		return
	}

	resp, err := pc.client.Do(req)
	if err != nil {
		util.RespondWithError(c, http.StatusBadGateway, "Failed to fetch image", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		util.RespondWithError(c, http.StatusBadGateway, "Upstream returned an error", fmt.Errorf("upstream status %d", resp.StatusCode))
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, io.LimitReader(resp.Body, maxProxyImageBytes), nil)
}
