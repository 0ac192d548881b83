// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "reddit-browser/docs"
	"reddit-browser/internal/app"
)

// @title Reddit Browser API
// @version 1.0
// @description Browse Reddit through the OAuth API: listings, comments, subreddit metadata, subscriptions, votes, saves and visits.
// @termsOfService http://swagger.io/terms/
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
//
// @BasePath /

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "server").Logger().Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
})

func main() {
	application, err := app.Initialize()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	go func() {
		if err := application.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server error")
		}
	}()

	logger.Info().Str("port", application.Config.ServerPort).Msg("Server started successfully")
	logger.Info().Msgf("Swagger documentation available at http://localhost:%s/swagger/index.html", application.Config.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown error")
	}

	logger.Info().Msg("Server stopped")
}
