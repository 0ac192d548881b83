package utils

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

// decodeBody reads body according to the Content-Encoding header. Some
// upstream proxies gzip an already gzipped payload, so a gzip magic header
// left after decoding is unwrapped once more.
func decodeBody(contentEncoding string, body io.Reader) ([]byte, error) {
	var reader io.Reader
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "gzip":
		gr, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	case "br":
		reader = brotli.NewReader(body)
	default:
		reader = body
	}

	bodyBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if len(bodyBytes) > 1 && bodyBytes[0] == 0x1f && bodyBytes[1] == 0x8b {
		gr, err := gzip.NewReader(bytes.NewReader(bodyBytes))
		if err == nil {
			uncompressed, err := io.ReadAll(gr)
			gr.Close()
			if err == nil {
				logger.Debug().Msg("uncompressed double-gzipped content")
				bodyBytes = uncompressed
			}
		}
	}

	return bodyBytes, nil
}
