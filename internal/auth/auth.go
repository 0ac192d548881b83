// Package auth obtains OAuth2 bearer tokens for the Reddit API.
package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"reddit-browser/internal/config"
	"reddit-browser/internal/endpoint"
)

const installedClientGrant = "https://oauth.reddit.com/grants/installed_client"

// TokenURL is the AccessToken endpoint under authBaseURL.
func TokenURL(authBaseURL string) string {
	return strings.TrimRight(authBaseURL, "/") + "/" + endpoint.Resolve(endpoint.AccessToken{})
}

// NewTokenSource picks the grant from the configured credentials:
//   - username and password: password grant, acting as that user
//   - client secret only: client_credentials, application-only
//   - neither: Reddit's installed_client grant with a random device id
//
// Token requests go through httpClient when it is non-nil and carry
// cfg.UserAgent. The returned source caches the token until it expires.
func NewTokenSource(ctx context.Context, cfg *config.Config, httpClient *http.Client) oauth2.TokenSource {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, withUserAgent(httpClient, cfg.UserAgent))
	tokenURL := TokenURL(cfg.AuthBaseURL)

	if cfg.UserContext() {
		conf := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		}
		return oauth2.ReuseTokenSource(nil, &passwordSource{
			ctx:      ctx,
			conf:     conf,
			username: cfg.Username,
			password: cfg.Password,
		})
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	if cfg.ClientSecret == "" {
		cc.EndpointParams = url.Values{
			"grant_type": {installedClientGrant},
			"device_id":  {deviceID()},
		}
	}
	return cc.TokenSource(ctx)
}

// userAgentTransport fills in the User-Agent on requests that have none.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}

// withUserAgent returns a copy of hc whose transport sets userAgent.
// Reddit throttles token requests sent with a generic agent.
func withUserAgent(hc *http.Client, userAgent string) *http.Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	if userAgent == "" {
		return hc
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = &userAgentTransport{base: base, userAgent: userAgent}
	return &wrapped
}

// Reddit wants a 20-30 character device id.
func deviceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:30]
}

// passwordSource runs the password grant on every call. Reddit does not hand
// out refresh tokens for script apps, so expiry means logging in again.
type passwordSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordSource) Token() (*oauth2.Token, error) {
	return s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
}
