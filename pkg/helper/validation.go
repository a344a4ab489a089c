package helper

import (
	"net/url"
	"strings"
)

// İzin verilen video platform hostları; subdomainler de kabul edilir
var supportedDomains = []string{
	"youtube.com", "www.youtube.com", "m.youtube.com",
	"youtu.be", "m.youtu.be",
	"youtube-nocookie.com", "www.youtube-nocookie.com",
}

// NormalizeURL prefixes the https scheme when none is present.
func NormalizeURL(raw string) string {
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// IsSupportedURL checks the host against the platform allow-list before any
// engine call is made.
func IsSupportedURL(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := url.Parse(NormalizeURL(raw))
	if err != nil {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return false
	}

	for _, domain := range supportedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
