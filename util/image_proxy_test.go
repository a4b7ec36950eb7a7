// util/image_proxy_test.go

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestImageProxy(environment string) *ImageProxy {
	return NewImageProxy(
		environment,
		[]string{"http://localhost:8080", "https://api.example.com"},
		[]string{"images.unsplash.com", "res.cloudinary.com"},
	)
}

func TestImageProxy_Rewrite(t *testing.T) {
	proxy := newTestImageProxy("development")

	t.Run("allow-listed host is rewritten", func(t *testing.T) {
		got := proxy.Rewrite("https://images.unsplash.com/photo-123?w=400", "")
		assert.Equal(t,
			"http://localhost:8080/api/proxy/image?url=https%3A%2F%2Fimages.unsplash.com%2Fphoto-123%3Fw%3D400",
			got)
	})

	t.Run("host match is case-insensitive", func(t *testing.T) {
		got := proxy.Rewrite("https://Images.Unsplash.Com/photo-9", "")
		assert.Contains(t, got, "/api/proxy/image?url=")
	})

	t.Run("explicit base wins over environment selection", func(t *testing.T) {
		got := proxy.Rewrite("https://res.cloudinary.com/demo/image.png", "https://cdn.example.com/")
		assert.Equal(t,
			"https://cdn.example.com/api/proxy/image?url=https%3A%2F%2Fres.cloudinary.com%2Fdemo%2Fimage.png",
			got)
	})

	t.Run("unlisted host passes through", func(t *testing.T) {
		raw := "https://evil.example.com/image.png"
		assert.Equal(t, raw, proxy.Rewrite(raw, ""))
	})

	t.Run("relative URL passes through", func(t *testing.T) {
		raw := "/static/logo.png"
		assert.Equal(t, raw, proxy.Rewrite(raw, ""))
	})

	t.Run("already proxied URL passes through", func(t *testing.T) {
		raw := "http://localhost:8080/api/proxy/image?url=https%3A%2F%2Fimages.unsplash.com%2Fa"
		assert.Equal(t, raw, proxy.Rewrite(raw, ""))
	})

	t.Run("empty URL passes through", func(t *testing.T) {
		assert.Equal(t, "", proxy.Rewrite("", ""))
	})

	t.Run("unparseable URL passes through", func(t *testing.T) {
		raw := "https://images.unsplash.com/%zz"
		assert.Equal(t, raw, proxy.Rewrite(raw, ""))
	})
}

func TestImageProxy_Allowed(t *testing.T) {
	proxy := newTestImageProxy("development")

	assert.True(t, proxy.Allowed("https://images.unsplash.com/photo-1"))
	assert.False(t, proxy.Allowed("https://evil.example.com/photo-1"))
	assert.False(t, proxy.Allowed("/relative/path.png"))
}

func TestImageProxy_BaseURL(t *testing.T) {
	dev := newTestImageProxy("development")
	assert.Equal(t, "http://localhost:8080", dev.BaseURL())

	prod := newTestImageProxy("production")
	assert.Equal(t, "https://api.example.com", prod.BaseURL())

	// No loopback candidate in development falls back to the first URL.
	onlyPublic := NewImageProxy("development", []string{"https://api.example.com"}, nil)
	assert.Equal(t, "https://api.example.com", onlyPublic.BaseURL())

	// No candidates at all yields an empty base.
	empty := NewImageProxy("production", nil, nil)
	assert.Equal(t, "", empty.BaseURL())
}
