package utils

import (
	"fmt"
	"math/rand"
	"net/http"

	utls "github.com/refraction-networking/utls"
)

type BrowserType int

const (
	Chrome BrowserType = iota
	Firefox
	Safari
	Edge
)

var clientHelloIDs = []utls.ClientHelloID{
	utls.HelloChrome_Auto,
	utls.HelloFirefox_Auto,
	utls.HelloSafari_Auto,
	utls.HelloEdge_Auto,
}

var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-US,en;q=0.8",
	"en-GB,en;q=0.9,en-US;q=0.8",
	"en-CA,en;q=0.9,fr-CA;q=0.8",
	"fr-FR,fr;q=0.9,en;q=0.8",
	"de-DE,de;q=0.9,en;q=0.8",
}

// Only encodings decodeBody understands are advertised.
var acceptEncodings = []string{
	"gzip, br",
	"br, gzip",
	"br",
	"gzip",
}

func browserTypeFor(clientHelloID utls.ClientHelloID) BrowserType {
	switch clientHelloID {
	case utls.HelloFirefox_Auto:
		return Firefox
	case utls.HelloSafari_Auto:
		return Safari
	case utls.HelloEdge_Auto:
		return Edge
	default:
		return Chrome
	}
}

func randomItem[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

func setIfEmpty(h http.Header, key, value string) {
	if h.Get(key) == "" {
		h.Set(key, value)
	}
}

// addBrowserHeaders fills in headers a browser of the given type would send.
// Headers already set by the caller (User-Agent, Authorization, Accept, ...)
// are left alone.
func addBrowserHeaders(req *http.Request, browserType BrowserType) {
	h := req.Header

	setIfEmpty(h, "Accept-Language", randomItem(acceptLanguages))
	setIfEmpty(h, "Accept-Encoding", randomItem(acceptEncodings))

	if rand.Intn(10) > 3 {
		setIfEmpty(h, "DNT", fmt.Sprintf("%d", rand.Intn(2)+1))
	}

	switch browserType {
	case Chrome, Edge:
		if rand.Intn(10) > 2 {
			setIfEmpty(h, "Sec-Fetch-Dest", "empty")
			setIfEmpty(h, "Sec-Fetch-Mode", "cors")
			setIfEmpty(h, "Sec-Fetch-Site", "same-site")
		}
	case Firefox:
		if rand.Intn(10) > 2 {
			setIfEmpty(h, "TE", "trailers")
		}
	case Safari:
		setIfEmpty(h, "Accept-Language", "en-US,en;q=0.9")
	}
}
