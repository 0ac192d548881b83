package utils

import (
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
)

type ProxyRotator struct {
	parsedURLs []*url.URL
	currentIdx uint32
}

func NewProxyRotator(proxyURLs []string) (*ProxyRotator, error) {
	rotator := &ProxyRotator{}

	for _, rawURL := range proxyURLs {
		if rawURL == "" {
			continue
		}
		parsedURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse proxy URL %s: %w", MaskProxyURL(rawURL), err)
		}
		rotator.parsedURLs = append(rotator.parsedURLs, parsedURL)
	}

	return rotator, nil
}

func (r *ProxyRotator) Len() int {
	return len(r.parsedURLs)
}

// NextIndex returns the index of the next proxy in round-robin order, or -1
// when no proxies are configured.
func (r *ProxyRotator) NextIndex() int {
	if len(r.parsedURLs) == 0 {
		return -1
	}
	return int((atomic.AddUint32(&r.currentIdx, 1) - 1) % uint32(len(r.parsedURLs)))
}

func (r *ProxyRotator) Proxy(idx int) *url.URL {
	if idx < 0 || idx >= len(r.parsedURLs) {
		return nil
	}
	return r.parsedURLs[idx]
}

// MaskProxyURL hides the password of a proxy URL for logging.
func MaskProxyURL(proxyURL string) string {
	if !strings.Contains(proxyURL, "@") {
		return proxyURL
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		parts := strings.SplitN(proxyURL, "@", 2)
		auth := strings.SplitN(parts[0], "://", 2)
		protocol := ""
		if len(auth) > 1 {
			protocol = auth[0] + "://"
			auth[0] = auth[1]
		}
		userPass := strings.SplitN(auth[0], ":", 2)
		if len(userPass) > 1 {
			return protocol + userPass[0] + ":****@" + parts[1]
		}
		return "[masked]"
	}

	if parsedURL.User != nil {
		if _, ok := parsedURL.User.Password(); ok {
			return strings.Replace(proxyURL, parsedURL.User.String(), parsedURL.User.Username()+":****", 1)
		}
	}

	return proxyURL
}
