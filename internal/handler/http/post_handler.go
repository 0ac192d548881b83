// internal/handler/http/post_handler.go
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-browser/internal/service"
)

type PostHandler struct {
	svc service.BrowseService
}

func NewPostHandler(svc service.BrowseService) *PostHandler {
	return &PostHandler{svc: svc}
}

type commentsQuery struct {
	Subreddit string `schema:"subreddit" validate:"required,excludesall=/?#"`
	ID        string `schema:"id" validate:"required,excludesall=/?#"`
	Sort      string `schema:"sort" validate:"omitempty,oneof=confidence top new controversial old qa"`
}

// GetComments godoc
// @Summary Get a Reddit post with comments
// @Description Retrieves a post and its comment tree from Reddit
// @Tags post
// @Accept json
// @Produce json
// @Param subreddit query string true "Subreddit name"
// @Param id query string true "Post ID, with or without the t3_ prefix"
// @Param sort query string false "Comment sort (confidence, top, new, controversial, old, qa)"
// @Success 200 {object} models.PostDetail
// @Failure 400 {object} models.HTTPError
// @Failure 404 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /comments [get]
func (h *PostHandler) GetComments(c echo.Context) error {
	var q commentsQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	detail, err := h.svc.Post(ctx, q.Subreddit, q.ID, q.Sort)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}
