package utils

import (
	"math/rand"
	"net/http"
	"time"
)

type fingerprintedTransport struct {
	transport   *http.Transport
	browserType BrowserType
}

// TLSFingerprintingTransport rotates requests across proxies. Every proxy
// keeps one browser fingerprint for its lifetime so its connection pool is
// reused instead of renegotiated per request.
type TLSFingerprintingTransport struct {
	proxyRotator *ProxyRotator
	direct       *fingerprintedTransport
	proxied      []*fingerprintedTransport
}

func NewTLSFingerprintingTransport(rotator *ProxyRotator) *TLSFingerprintingTransport {
	t := &TLSFingerprintingTransport{proxyRotator: rotator}

	if rotator.Len() == 0 {
		t.direct = newFingerprintedTransport(NewFingerprintingDialer(nil))
		return t
	}

	for i := 0; i < rotator.Len(); i++ {
		t.proxied = append(t.proxied, newFingerprintedTransport(NewFingerprintingDialer(rotator.Proxy(i))))
	}
	return t
}

func newFingerprintedTransport(dialer *FingerprintingDialer) *fingerprintedTransport {
	return &fingerprintedTransport{
		transport: &http.Transport{
			DialContext:           dialer.DialContext,
			DialTLSContext:        dialer.DialTLSContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			ForceAttemptHTTP2:     false,
			// decodeBody handles gzip and br itself.
			DisableCompression: true,
		},
		browserType: dialer.BrowserType(),
	}
}

func (t *TLSFingerprintingTransport) pick() *fingerprintedTransport {
	if t.direct != nil {
		return t.direct
	}
	return t.proxied[t.proxyRotator.NextIndex()]
}

func (t *TLSFingerprintingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ft := t.pick()

	reqCopy := req.Clone(req.Context())
	browserType := ft.browserType
	if req.URL.Scheme != "https" {
		browserType = BrowserType(rand.Intn(4))
	}
	addBrowserHeaders(reqCopy, browserType)

	return ft.transport.RoundTrip(reqCopy)
}

func (t *TLSFingerprintingTransport) CloseIdleConnections() {
	if t.direct != nil {
		t.direct.transport.CloseIdleConnections()
	}
	for _, ft := range t.proxied {
		ft.transport.CloseIdleConnections()
	}
}
