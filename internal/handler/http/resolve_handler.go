// internal/handler/http/resolve_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

type ResolveHandler struct {
	svc service.BrowseService
}

func NewResolveHandler(svc service.BrowseService) *ResolveHandler {
	return &ResolveHandler{svc: svc}
}

type resolveQuery struct {
	Kind     string `schema:"kind" validate:"required"`
	Name     string `schema:"name"`
	Sort     string `schema:"sort"`
	ID       string `schema:"id"`
	Username string `schema:"username"`
}

func (q resolveQuery) args() map[string]string {
	return map[string]string{
		"name":     q.Name,
		"sort":     q.Sort,
		"id":       q.ID,
		"username": q.Username,
	}
}

// Resolve godoc
// @Summary Resolve an operation to its REST path
// @Description Returns the relative Reddit API path for an operation kind and its arguments. No request is sent to Reddit.
// @Tags resolve
// @Produce json
// @Param kind query string true "Operation kind, e.g. subreddit_listing, comments, me"
// @Param name query string false "Subreddit name"
// @Param sort query string false "Listing sort"
// @Param id query string false "Post ID"
// @Param username query string false "Username"
// @Success 200 {object} models.ResolveResponse
// @Failure 400 {object} models.HTTPError
// @Router /resolve [get]
func (h *ResolveHandler) Resolve(c echo.Context) error {
	var q resolveQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	op, err := endpoint.Parse(q.Kind, q.args())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, models.ResolveResponse{
		Kind: string(op.Kind()),
		Path: h.svc.Resolve(op),
	})
}
