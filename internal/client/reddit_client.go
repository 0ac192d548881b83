// internal/client/reddit_client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"reddit-browser/internal/auth"
	"reddit-browser/internal/config"
	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/metrics"
	"reddit-browser/pkg/utils"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "client").Logger().Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
})

type RedditClient struct {
	client      *utils.RetryableClient
	tokens      oauth2.TokenSource
	limiter     *rate.Limiter
	aboutCache  *ttlcache.Cache[string, json.RawMessage]
	userAgent   string
	apiBaseURL  string
	webBaseURL  string
	userContext bool
}

// NewRedditClient wires the fingerprinting transport, the OAuth token source
// and the rate limiter from cfg.
func NewRedditClient(ctx context.Context, cfg *config.Config) (*RedditClient, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("REDDIT_USER_AGENT must not be empty")
	}

	httpClient, err := utils.NewRetryableClient(cfg.ProxyURLs, cfg.MaxRetries, cfg.UserAgent, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	tokens := auth.NewTokenSource(ctx, cfg, httpClient.HTTPClient())

	return New(cfg, httpClient, tokens), nil
}

// New builds a client over an existing HTTP client and token source.
func New(cfg *config.Config, httpClient *utils.RetryableClient, tokens oauth2.TokenSource) *RedditClient {
	limit := rate.Inf
	if cfg.RateLimitDelay > 0 {
		limit = rate.Every(cfg.RateLimitDelay)
	}

	ttl := cfg.AboutCacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	cache := ttlcache.New[string, json.RawMessage](
		ttlcache.WithTTL[string, json.RawMessage](ttl),
		ttlcache.WithDisableTouchOnHit[string, json.RawMessage](),
	)
	go cache.Start()

	return &RedditClient{
		client:      httpClient,
		tokens:      tokens,
		limiter:     rate.NewLimiter(limit, 1),
		aboutCache:  cache,
		userAgent:   cfg.UserAgent,
		apiBaseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		webBaseURL:  strings.TrimRight(cfg.WebBaseURL, "/"),
		userContext: cfg.UserContext(),
	}
}

// Close stops the cache expiry loop.
func (r *RedditClient) Close() {
	r.aboutCache.Stop()
}

// UserContext reports whether calls act on behalf of a logged-in user.
func (r *RedditClient) UserContext() bool {
	return r.userContext
}

// URL joins the API base URL and the path of op.
func (r *RedditClient) URL(op endpoint.Operation) string {
	return r.apiBaseURL + "/" + endpoint.Resolve(op)
}

// PermalinkURL turns a permalink such as /r/golang/comments/abc/x/ into a full web URL.
func (r *RedditClient) PermalinkURL(permalink string) string {
	return r.webBaseURL + permalink
}

func (r *RedditClient) requireUser(op endpoint.Operation) error {
	if !r.userContext {
		return fmt.Errorf("%s: %w", op.Kind(), ErrUserContextRequired)
	}
	return nil
}

func (p Page) values() url.Values {
	params := url.Values{}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.After != "" {
		params.Set("after", p.After)
	}
	if p.T != "" {
		params.Set("t", p.T)
	}
	return params
}

func (r *RedditClient) get(ctx context.Context, op endpoint.Operation, params url.Values) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("raw_json", "1")
	return r.do(ctx, http.MethodGet, op, params, nil)
}

func (r *RedditClient) post(ctx context.Context, op endpoint.Operation, form url.Values) (json.RawMessage, error) {
	if form == nil {
		form = url.Values{}
	}
	form.Set("api_type", "json")
	return r.do(ctx, http.MethodPost, op, nil, form)
}

func (r *RedditClient) do(ctx context.Context, method string, op endpoint.Operation, params, form url.Values) (json.RawMessage, error) {
	apiURL := r.URL(op)
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: rate limiter: %w", op.Kind(), err)
	}

	token, err := r.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("%s: access token: %w", op.Kind(), err)
	}

	var req *http.Request
	if form != nil {
		req, err = http.NewRequestWithContext(ctx, method, apiURL, strings.NewReader(form.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, apiURL, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")
	token.SetAuthHeader(req)

	start := time.Now()
	resp, body, err := r.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(string(op.Kind()), 0, time.Since(start))
		return nil, fmt.Errorf("%s request: %w", op.Kind(), err)
	}
	metrics.ObserveUpstream(string(op.Kind()), resp.StatusCode, time.Since(start))

	logger.Debug().
		Str("op", string(op.Kind())).
		Str("method", method).
		Str("path", endpoint.Resolve(op)).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("reddit request")

	if resp.StatusCode >= 400 {
		return nil, newAPIError(op.Kind(), resp.StatusCode, body)
	}
	if method == http.MethodPost && envelopeErrors(body) {
		return nil, newAPIError(op.Kind(), resp.StatusCode, body)
	}

	return body, nil
}

func (r *RedditClient) GetListing(ctx context.Context, name, sort string, page Page) (json.RawMessage, error) {
	return r.get(ctx, endpoint.SubredditListing{Name: name, Sort: sort}, page.values())
}

// GetSubredditAbout is served from a TTL cache keyed by the lower-cased name.
func (r *RedditClient) GetSubredditAbout(ctx context.Context, name string) (json.RawMessage, error) {
	key := strings.ToLower(name)
	if item := r.aboutCache.Get(key); item != nil {
		metrics.CacheHit()
		return item.Value(), nil
	}
	metrics.CacheMiss()

	data, err := r.get(ctx, endpoint.SubredditAbout{Name: name}, nil)
	if err != nil {
		return nil, err
	}
	r.aboutCache.Set(key, data, ttlcache.DefaultTTL)
	return data, nil
}

func (r *RedditClient) SearchSubreddits(ctx context.Context, query string, includeNSFW bool) (json.RawMessage, error) {
	return r.post(ctx, endpoint.SearchSubreddit{}, url.Values{
		"query":                  {query},
		"include_over_18":        {strconv.FormatBool(includeNSFW)},
		"include_unadvertisable": {"true"},
		"exact":                  {"false"},
	})
}

func (r *RedditClient) GetComments(ctx context.Context, subreddit, id, sort string) (json.RawMessage, error) {
	params := url.Values{}
	if sort != "" {
		params.Set("sort", sort)
	}
	return r.get(ctx, endpoint.Comments{Name: subreddit, ID: id}, params)
}

func (r *RedditClient) GetMe(ctx context.Context) (json.RawMessage, error) {
	op := endpoint.Me{}
	if err := r.requireUser(op); err != nil {
		return nil, err
	}
	return r.get(ctx, op, nil)
}

func (r *RedditClient) GetSubscriptions(ctx context.Context, page Page) (json.RawMessage, error) {
	op := endpoint.MineSubscriptions{}
	if err := r.requireUser(op); err != nil {
		return nil, err
	}
	return r.get(ctx, op, page.values())
}

func (r *RedditClient) Vote(ctx context.Context, fullname string, dir VoteDirection) error {
	op := endpoint.Vote{}
	if !dir.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidVote, dir)
	}
	if err := r.requireUser(op); err != nil {
		return err
	}
	_, err := r.post(ctx, op, url.Values{
		"id":  {fullname},
		"dir": {strconv.Itoa(int(dir))},
	})
	return err
}

func (r *RedditClient) StoreVisits(ctx context.Context, fullnames []string) error {
	op := endpoint.Visits{}
	if len(fullnames) == 0 {
		return nil
	}
	if err := r.requireUser(op); err != nil {
		return err
	}
	_, err := r.post(ctx, op, url.Values{"links": {strings.Join(fullnames, ",")}})
	return err
}

func (r *RedditClient) Save(ctx context.Context, fullname string) error {
	op := endpoint.Save{}
	if err := r.requireUser(op); err != nil {
		return err
	}
	_, err := r.post(ctx, op, url.Values{"id": {fullname}})
	return err
}

func (r *RedditClient) Unsave(ctx context.Context, fullname string) error {
	op := endpoint.Unsave{}
	if err := r.requireUser(op); err != nil {
		return err
	}
	_, err := r.post(ctx, op, url.Values{"id": {fullname}})
	return err
}

func (r *RedditClient) GetUserSaved(ctx context.Context, username string, page Page) (json.RawMessage, error) {
	op := endpoint.UserSaved{Username: username}
	if err := r.requireUser(op); err != nil {
		return nil, err
	}
	return r.get(ctx, op, page.values())
}
