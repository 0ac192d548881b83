// internal/router/router.go
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handler "reddit-browser/internal/handler/http"
	"reddit-browser/internal/service"
)

func NewRouter(e *echo.Echo, svc service.BrowseService) {
	sub := handler.NewSubredditHandler(svc)
	sch := handler.NewSearchHandler(svc)
	pst := handler.NewPostHandler(svc)
	usr := handler.NewUserHandler(svc)
	res := handler.NewResolveHandler(svc)

	e.GET("/listing", sub.GetListing)
	e.GET("/subreddit/about", sub.GetAbout)
	e.GET("/subreddits/search", sch.SearchSubreddits)
	e.GET("/comments", pst.GetComments)
	e.GET("/me", usr.GetMe)
	e.GET("/subscriptions", usr.GetSubscriptions)
	e.GET("/user/saved", usr.GetSaved)
	e.POST("/vote", usr.Vote)
	e.POST("/visits", usr.MarkVisited)
	e.POST("/save", usr.Save)
	e.POST("/unsave", usr.Unsave)
	e.GET("/resolve", res.Resolve)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}
