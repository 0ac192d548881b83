// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ClientID            string
	ClientSecret        string
	Username            string
	Password            string
	UserAgent           string
	ProxyURLs           []string
	MaxRetries          int
	DefaultListingLimit int
	ServerPort          string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	APIBaseURL          string
	AuthBaseURL         string
	WebBaseURL          string
	RequestTimeout      time.Duration
	RateLimitDelay      time.Duration
	AboutCacheTTL       time.Duration
	LogLevel            string
	SentryDSN           string
}

// UserContext reports whether credentials for the password grant are set.
func (c *Config) UserContext() bool {
	return c.Username != "" && c.Password != ""
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	clientID := os.Getenv("REDDIT_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("REDDIT_CLIENT_ID environment variable is required")
	}

	proxyURLs, err := parseProxyURLs(os.Getenv("REDDIT_PROXY_URLS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ClientID:            clientID,
		ClientSecret:        os.Getenv("REDDIT_CLIENT_SECRET"),
		Username:            os.Getenv("REDDIT_USERNAME"),
		Password:            os.Getenv("REDDIT_PASSWORD"),
		UserAgent:           getEnv("REDDIT_USER_AGENT", "reddit-browser/1.0"),
		ProxyURLs:           proxyURLs,
		MaxRetries:          getEnvInt("PROXY_MAX_RETRIES", 3),
		DefaultListingLimit: getEnvInt("DEFAULT_LISTING_LIMIT", 25),
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ReadTimeout:         getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		RateLimitDelay:      getEnvDuration("RATE_LIMIT_DELAY", 600*time.Millisecond),
		AboutCacheTTL:       getEnvDuration("ABOUT_CACHE_TTL", 10*time.Minute),
		APIBaseURL:          strings.TrimRight(getEnv("REDDIT_API_BASE_URL", "https://oauth.reddit.com"), "/"),
		AuthBaseURL:         strings.TrimRight(getEnv("REDDIT_AUTH_BASE_URL", "https://www.reddit.com"), "/"),
		WebBaseURL:          strings.TrimRight(getEnv("REDDIT_WEB_BASE_URL", "https://www.reddit.com"), "/"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		SentryDSN:           os.Getenv("SENTRY_DSN"),
	}

	if (cfg.Username == "") != (cfg.Password == "") {
		return nil, fmt.Errorf("REDDIT_USERNAME and REDDIT_PASSWORD must be set together")
	}
	if cfg.MaxRetries < 1 {
		return nil, fmt.Errorf("PROXY_MAX_RETRIES must be at least 1, got %d", cfg.MaxRetries)
	}
	for _, base := range []string{cfg.APIBaseURL, cfg.AuthBaseURL, cfg.WebBaseURL} {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid base URL %s: %w", base, err)
		}
	}

	return cfg, nil
}

func parseProxyURLs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var proxyURLs []string
	for _, proxy := range strings.Split(raw, ",") {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}

		if !strings.HasPrefix(proxy, "http://") && !strings.HasPrefix(proxy, "https://") && !strings.HasPrefix(proxy, "socks5://") {
			return nil, fmt.Errorf("invalid proxy URL format, must start with http://, https:// or socks5://: %s", proxy)
		}

		if _, err := url.Parse(proxy); err != nil {
			return nil, fmt.Errorf("invalid proxy URL %s: %w", proxy, err)
		}

		proxyURLs = append(proxyURLs, proxy)
	}
	return proxyURLs, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
