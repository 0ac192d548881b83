// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"reddit-browser/internal/client"
	"reddit-browser/internal/config"
	"reddit-browser/internal/parser"
	"reddit-browser/internal/router"
	"reddit-browser/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "app").Logger().Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
})

type App struct {
	Config  *config.Config
	Echo    *echo.Echo
	Service service.BrowseService
	Client  *client.RedditClient
	Parser  parser.Parser
}

// Initialize loads the configuration from the environment and builds the app.
func Initialize() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return New(cfg)
}

func New(cfg *config.Config) (*App, error) {
	setLogLevel(cfg.LogLevel)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			return nil, fmt.Errorf("failed to initialize sentry: %w", err)
		}
	}

	redditClient, err := client.NewRedditClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Reddit client: %w", err)
	}

	redditParser := parser.NewRedditParser(cfg.WebBaseURL)
	browseService := service.NewBrowseService(redditClient, redditParser, cfg.DefaultListingLimit)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(e)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	router.NewRouter(e, browseService)

	logger.Info().
		Bool("user_context", redditClient.UserContext()).
		Int("proxies", len(cfg.ProxyURLs)).
		Str("api", cfg.APIBaseURL).
		Msg("app initialized")

	return &App{
		Config:  cfg,
		Echo:    e,
		Service: browseService,
		Client:  redditClient,
		Parser:  redditParser,
	}, nil
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// errorHandler reports server-side failures to Sentry before echo writes the response.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		status := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}
		if status >= http.StatusInternalServerError {
			logger.Error().
				Err(err).
				Int("status", status).
				Str("path", c.Request().URL.Path).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")
			if hub := sentry.CurrentHub(); hub.Client() != nil {
				hub.CaptureException(err)
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func (a *App) Start() error {
	port := a.Config.ServerPort
	if port == "" {
		port = "8080"
	}
	a.Echo.Server.ReadTimeout = a.Config.ReadTimeout
	a.Echo.Server.WriteTimeout = a.Config.WriteTimeout
	return a.Echo.Start(":" + port)
}

// Shutdown stops the HTTP server, then releases the client and flushes Sentry.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Client.Close()
	sentry.Flush(2 * time.Second)
	return err
}
