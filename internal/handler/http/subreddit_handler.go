// internal/handler/http/subreddit_handler.go
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-browser/internal/service"
)

// Upper bound for one request, generous enough for limit=-1 pagination.
const requestTimeout = 300 * time.Second

type SubredditHandler struct {
	svc service.BrowseService
}

func NewSubredditHandler(svc service.BrowseService) *SubredditHandler {
	return &SubredditHandler{svc: svc}
}

type listingQuery struct {
	Name  string `schema:"name" validate:"required,excludesall=/?#"`
	Sort  string `schema:"sort" validate:"omitempty,oneof=hot new top rising controversial best"`
	T     string `schema:"t" validate:"omitempty,oneof=hour day week month year all"`
	After string `schema:"after"`
	Limit int    `schema:"limit" validate:"gte=-1"`
}

type aboutQuery struct {
	Name string `schema:"name" validate:"required,excludesall=/?#"`
}

// GetListing godoc
// @Summary Get a subreddit or front-page listing
// @Description Retrieves posts from a subreddit, or from a front-page feed when name is one of top, best, new, rising or hot
// @Tags listing
// @Accept json
// @Produce json
// @Param name query string true "Subreddit name or front-page feed"
// @Param sort query string false "Sort order (hot, new, top, rising, controversial, best); ignored for front-page feeds"
// @Param t query string false "Time window for top and controversial (hour, day, week, month, year, all)"
// @Param after query string false "Pagination cursor"
// @Param limit query int false "0 for one page, N for N posts, -1 for everything"
// @Success 200 {object} models.ListingPage
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /listing [get]
func (h *SubredditHandler) GetListing(c echo.Context) error {
	var q listingQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	page, err := h.svc.Listing(ctx, service.ListingRequest{
		Name:  q.Name,
		Sort:  q.Sort,
		T:     q.T,
		After: q.After,
		Limit: q.Limit,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetAbout godoc
// @Summary Get subreddit metadata
// @Tags subreddit
// @Produce json
// @Param name query string true "Subreddit name"
// @Success 200 {object} models.Subreddit
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /subreddit/about [get]
func (h *SubredditHandler) GetAbout(c echo.Context) error {
	var q aboutQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	sub, err := h.svc.Subreddit(c.Request().Context(), q.Name)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, sub)
}
