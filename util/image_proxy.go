// util/image_proxy.go

package util

import (
	"net/url"
	"strings"
)

const proxyImagePath = "/api/proxy/image"

// ImageProxy rewrites externally hosted image URLs to same-origin proxy URLs
// so browsers are not blocked by cross-origin restrictions.
type ImageProxy struct {
	environment  string
	baseURLs     []string
	allowedHosts map[string]struct{}
}

// NewImageProxy builds a proxy helper for the given deployment environment,
// candidate base URLs and external host allow-list.
func NewImageProxy(environment string, baseURLs, allowedHosts []string) *ImageProxy {
	hosts := make(map[string]struct{}, len(allowedHosts))
	for _, h := range allowedHosts {
		hosts[strings.ToLower(h)] = struct{}{}
	}
	return &ImageProxy{
		environment:  environment,
		baseURLs:     baseURLs,
		allowedHosts: hosts,
	}
}

// Rewrite returns a proxy URL for rawURL, or rawURL unchanged when it is
// relative, already proxied, hosted on a domain outside the allow-list, or
// unparseable. Malformed URLs fail closed to pass-through rather than error.
func (p *ImageProxy) Rewrite(rawURL, explicitBase string) string {
	if rawURL == "" {
		return rawURL
	}
	if strings.Contains(rawURL, proxyImagePath) {
		return rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	// Relative URLs are already same-origin.
	if parsed.Scheme == "" || parsed.Host == "" {
		return rawURL
	}
	if _, ok := p.allowedHosts[strings.ToLower(parsed.Hostname())]; !ok {
		return rawURL
	}

	base := explicitBase
	if base == "" {
		base = p.BaseURL()
	}
	return strings.TrimSuffix(base, "/") + proxyImagePath + "?url=" + url.QueryEscape(rawURL)
}

// Allowed reports whether rawURL points at an allow-listed external host.
func (p *ImageProxy) Allowed(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	_, ok := p.allowedHosts[strings.ToLower(parsed.Hostname())]
	return ok
}

// BaseURL selects the proxy base for the current environment: development
// prefers a loopback-hostname candidate falling back to the first configured
// URL, production prefers a non-loopback candidate falling back to the last.
func (p *ImageProxy) BaseURL() string {
	if len(p.baseURLs) == 0 {
		return ""
	}
	if p.environment == "production" {
		for _, candidate := range p.baseURLs {
			if !isLoopbackURL(candidate) {
				return candidate
			}
		}
		return p.baseURLs[len(p.baseURLs)-1]
	}
	for _, candidate := range p.baseURLs {
		if isLoopbackURL(candidate) {
			return candidate
		}
	}
	return p.baseURLs[0]
}

func isLoopbackURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}
