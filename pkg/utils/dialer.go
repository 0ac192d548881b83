package utils

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/proxy"
)

// FingerprintingDialer opens TLS connections whose ClientHello matches a real
// browser, optionally tunnelled through an HTTP CONNECT or SOCKS5 proxy.
type FingerprintingDialer struct {
	proxyURL      *url.URL
	clientHelloID utls.ClientHelloID
	browserType   BrowserType
	netDialer     *net.Dialer
}

func NewFingerprintingDialer(proxyURL *url.URL) *FingerprintingDialer {
	helloID := clientHelloIDs[rand.Intn(len(clientHelloIDs))]

	return &FingerprintingDialer{
		proxyURL:      proxyURL,
		clientHelloID: helloID,
		browserType:   browserTypeFor(helloID),
		netDialer: &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		},
	}
}

func (d *FingerprintingDialer) BrowserType() BrowserType {
	return d.browserType
}

// DialContext dials addr in plain TCP, through the proxy when one is set.
func (d *FingerprintingDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	if d.proxyURL == nil {
		conn, err := d.netDialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("direct dial: %w", err)
		}
		return conn, nil
	}

	conn, err := d.dialThroughProxy(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("proxy dial: %w", err)
	}
	return conn, nil
}

func (d *FingerprintingDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	spec, err := utls.UTLSIdToSpec(d.clientHelloID)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS spec: %w", err)
	}
	// net/http only speaks HTTP/1.1 over a custom TLS dialer.
	for _, ext := range spec.Extensions {
		if alpn, ok := ext.(*utls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
		}
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloCustom)
	if err := uconn.ApplyPreset(&spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS preset: %w", err)
	}
	if err := uconn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}

	return uconn, nil
}

func (d *FingerprintingDialer) dialThroughProxy(ctx context.Context, network, addr string) (net.Conn, error) {
	switch d.proxyURL.Scheme {
	case "http", "https":
		return d.dialConnect(ctx, network, addr)

	case "socks5":
		auth := &proxy.Auth{}
		if d.proxyURL.User != nil {
			auth.User = d.proxyURL.User.Username()
			if password, ok := d.proxyURL.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", d.proxyURL.Host, auth, d.netDialer)
		if err != nil {
			return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
		}

		if cd, ok := dialer.(proxy.ContextDialer); ok {
			conn, err := cd.DialContext(ctx, network, addr)
			if err != nil {
				return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", err)
			}
			return conn, nil
		}

		type result struct {
			conn net.Conn
			err  error
		}
		ch := make(chan result, 1)
		go func() {
			conn, err := dialer.Dial(network, addr)
			ch <- result{conn, err}
		}()

		select {
		case <-ctx.Done():
			go func() {
				if r := <-ch; r.conn != nil {
					r.conn.Close()
				}
			}()
			return nil, ctx.Err()
		case r := <-ch:
			if r.err != nil {
				return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", r.err)
			}
			return r.conn, nil
		}

	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", d.proxyURL.Scheme)
	}
}

// dialConnect opens a tunnel to addr with an HTTP CONNECT request.
func (d *FingerprintingDialer) dialConnect(ctx context.Context, network, addr string) (net.Conn, error) {
	proxyAddr := d.proxyURL.Host
	if d.proxyURL.Port() == "" {
		port := "80"
		if d.proxyURL.Scheme == "https" {
			port = "443"
		}
		proxyAddr = net.JoinHostPort(d.proxyURL.Hostname(), port)
	}

	conn, err := d.netDialer.DialContext(ctx, network, proxyAddr)
	if err != nil {
		return nil, fmt.Errorf("dial HTTP proxy: %w", err)
	}

	req := &http.Request{
		Method: http.MethodConnect,
		URL:    &url.URL{Opaque: addr},
		Host:   addr,
		Header: make(http.Header),
	}
	if d.proxyURL.User != nil {
		password, _ := d.proxyURL.User.Password()
		creds := base64.StdEncoding.EncodeToString([]byte(d.proxyURL.User.Username() + ":" + password))
		req.Header.Set("Proxy-Authorization", "Basic "+creds)
	}

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
		defer conn.SetDeadline(time.Time{})
	}

	if err := req.Write(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write CONNECT request: %w", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), req)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("read CONNECT response: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		conn.Close()
		return nil, fmt.Errorf("proxy CONNECT returned %s", resp.Status)
	}

	return conn, nil
}
