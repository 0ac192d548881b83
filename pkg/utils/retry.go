// Package utils holds the outbound HTTP plumbing: proxy rotation, browser
// TLS fingerprints, retries and response decoding.
package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "http").Logger().Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
})

const maxRetryAfter = 30 * time.Second

type RetryableClient struct {
	client      *http.Client
	maxRetries  int
	userAgent   string
	backoffBase time.Duration
}

// NewRetryableClient builds a client over the fingerprinting transport. An
// empty proxyURLs list dials Reddit directly.
func NewRetryableClient(proxyURLs []string, maxRetries int, userAgent string, timeout time.Duration) (*RetryableClient, error) {
	rotator, err := NewProxyRotator(proxyURLs)
	if err != nil {
		return nil, fmt.Errorf("failed to create proxy rotator: %w", err)
	}

	for i, p := range proxyURLs {
		logger.Info().Int("n", i+1).Str("proxy", MaskProxyURL(p)).Msg("using proxy")
	}

	httpClient := &http.Client{
		Transport: NewTLSFingerprintingTransport(rotator),
		Timeout:   timeout,
	}

	logger.Info().Int("proxies", rotator.Len()).Msg("created HTTP client with TLS fingerprinting")

	return NewRetryableClientWithHTTP(httpClient, maxRetries, userAgent), nil
}

// NewRetryableClientWithHTTP wraps an existing http.Client.
func NewRetryableClientWithHTTP(httpClient *http.Client, maxRetries int, userAgent string) *RetryableClient {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryableClient{
		client:      httpClient,
		maxRetries:  maxRetries,
		userAgent:   userAgent,
		backoffBase: time.Second,
	}
}

// SetBackoffBase changes the unit of the exponential backoff.
func (c *RetryableClient) SetBackoffBase(d time.Duration) {
	c.backoffBase = d
}

// HTTPClient exposes the underlying client, e.g. for oauth2 token requests.
func (c *RetryableClient) HTTPClient() *http.Client {
	return c.client
}

// Do sends req, retrying transport errors, 429 and 5xx responses. The
// returned response body has already been read and decoded into the returned
// bytes. A response whose status is still retryable after the last attempt is
// returned as is, without an error.
func (c *RetryableClient) Do(req *http.Request) (*http.Response, []byte, error) {
	ctx := req.Context()

	if req.Header.Get("User-Agent") == "" && c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	var reqBody []byte
	if req.Body != nil {
		var err error
		reqBody, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("reading request body: %w", err)
		}
		req.Body.Close()
	}

	var wait time.Duration
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			if wait == 0 {
				wait = time.Duration(1<<uint(attempt)) * c.backoffBase
			}
			logger.Debug().Int("attempt", attempt+1).Dur("wait", wait).Str("url", req.URL.Path).Msg("retrying request")
			if err := sleepContext(ctx, wait); err != nil {
				return nil, nil, err
			}
			wait = 0
		}

		if reqBody != nil {
			req.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			logger.Warn().Err(err).Int("attempt", attempt+1).Msg("request error")
			if attempt == c.maxRetries-1 {
				return nil, nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, err)
			}
			continue
		}

		bodyBytes, err := decodeBody(resp.Header.Get("Content-Encoding"), resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.Warn().Err(err).Int("attempt", attempt+1).Msg("error reading response body")
			if attempt == c.maxRetries-1 {
				return nil, nil, err
			}
			continue
		}
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		if retryableStatus(resp.StatusCode) && attempt < c.maxRetries-1 {
			logger.Warn().Int("status", resp.StatusCode).Int("attempt", attempt+1).Msg("retryable status")
			wait = retryAfter(resp.Header.Get("Retry-After"))
			continue
		}

		return resp, bodyBytes, nil
	}

	return nil, nil, fmt.Errorf("no attempts made")
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func retryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	d := time.Duration(secs) * time.Second
	if d > maxRetryAfter {
		return maxRetryAfter
	}
	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
