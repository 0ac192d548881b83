// internal/handler/http/user_handler.go
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-browser/internal/client"
	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

// UserHandler serves the operations that act on behalf of the logged-in user.
type UserHandler struct {
	svc service.BrowseService
}

func NewUserHandler(svc service.BrowseService) *UserHandler {
	return &UserHandler{svc: svc}
}

type savedQuery struct {
	Username string `schema:"username" validate:"required,excludesall=/?#"`
	Limit    int    `schema:"limit" validate:"gte=-1"`
}

// GetMe godoc
// @Summary Get the logged-in account
// @Tags user
// @Produce json
// @Success 200 {object} models.Account
// @Failure 401 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	me, err := h.svc.Me(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, me)
}

// GetSubscriptions godoc
// @Summary List subscribed subreddits
// @Description Returns every subreddit the logged-in user subscribes to, sorted by name
// @Tags user
// @Produce json
// @Success 200 {array} models.Subreddit
// @Failure 401 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /subscriptions [get]
func (h *UserHandler) GetSubscriptions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	subs, err := h.svc.Subscriptions(ctx)
	if err != nil {
		return serviceError(err)
	}
	if subs == nil {
		subs = []models.Subreddit{}
	}
	return c.JSON(http.StatusOK, subs)
}

// GetSaved godoc
// @Summary List a user's saved posts and comments
// @Tags user
// @Produce json
// @Param username query string true "Reddit username"
// @Param limit query int false "0 for one page, N for N items, -1 for everything"
// @Success 200 {object} models.SavedItems
// @Failure 400 {object} models.HTTPError
// @Failure 401 {object} models.HTTPError
// @Failure 403 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user/saved [get]
func (h *UserHandler) GetSaved(c echo.Context) error {
	var q savedQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	saved, err := h.svc.UserSaved(ctx, q.Username, q.Limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// Vote godoc
// @Summary Vote on a post or comment
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.VoteRequest true "Fullname and direction (1, 0 or -1)"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.HTTPError
// @Failure 401 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /vote [post]
func (h *UserHandler) Vote(c echo.Context) error {
	var req models.VoteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.svc.Vote(c.Request().Context(), req.ID, client.VoteDirection(*req.Dir)); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// MarkVisited godoc
// @Summary Mark posts as visited
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.VisitsRequest true "Post fullnames"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.HTTPError
// @Failure 401 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /visits [post]
func (h *UserHandler) MarkVisited(c echo.Context) error {
	var req models.VisitsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	if err := h.svc.MarkVisited(c.Request().Context(), req.Links...); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Save godoc
// @Summary Save a post or comment
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.SaveRequest true "Fullname"
// @Success 200 {object} models.SaveResponse
// @Failure 400 {object} models.HTTPError
// @Failure 401 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /save [post]
func (h *UserHandler) Save(c echo.Context) error {
	return h.toggleSave(c, false)
}

// Unsave godoc
// @Summary Unsave a post or comment
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.SaveRequest true "Fullname"
// @Success 200 {object} models.SaveResponse
// @Failure 400 {object} models.HTTPError
// @Failure 401 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /unsave [post]
func (h *UserHandler) Unsave(c echo.Context) error {
	return h.toggleSave(c, true)
}

func (h *UserHandler) toggleSave(c echo.Context, saved bool) error {
	var req models.SaveRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	state, err := h.svc.ToggleSave(c.Request().Context(), req.ID, saved)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, models.SaveResponse{ID: req.ID, Saved: state})
}
