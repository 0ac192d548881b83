// internal/handler/http/search_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

type SearchHandler struct {
	svc service.BrowseService
}

func NewSearchHandler(svc service.BrowseService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

type searchQuery struct {
	Query string `schema:"q" validate:"required"`
	NSFW  bool   `schema:"nsfw"`
}

// SearchSubreddits godoc
// @Summary Search subreddits by name
// @Description Autocompletes subreddit names for the given query
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param nsfw query bool false "Include NSFW subreddits"
// @Success 200 {array} models.Subreddit
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /subreddits/search [get]
func (h *SearchHandler) SearchSubreddits(c echo.Context) error {
	var q searchQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	subs, err := h.svc.SearchSubreddits(c.Request().Context(), q.Query, q.NSFW)
	if err != nil {
		return serviceError(err)
	}
	if subs == nil {
		subs = []models.Subreddit{}
	}
	return c.JSON(http.StatusOK, subs)
}
