package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-browser/internal/client"
	handler "reddit-browser/internal/handler/http"
	"reddit-browser/internal/mocks"
	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

func newGet(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newPost(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he), "expected *echo.HTTPError, got %v", err)
	return he.Code
}

func TestListingHandler(t *testing.T) {
	var got service.ListingRequest
	svc := &mocks.MockBrowseService{
		ListingFunc: func(ctx context.Context, req service.ListingRequest) (models.ListingPage, error) {
			got = req
			return models.ListingPage{
				Posts: []models.Post{{ID: "123", Title: "Test Post", Author: "testuser"}},
				After: "t3_123",
			}, nil
		},
	}

	c, rec := newGet("/listing?name=golang&sort=top&t=week&limit=50&after=t3_1")
	h := handler.NewSubredditHandler(svc)
	if err := h.GetListing(c); err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	assert.Equal(t, service.ListingRequest{Name: "golang", Sort: "top", T: "week", After: "t3_1", Limit: 50}, got)

	var response map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	posts, ok := response["posts"].([]interface{})
	if !ok || len(posts) != 1 {
		t.Errorf("Expected 1 post in response, got %v", posts)
	}
	assert.Equal(t, "t3_123", response["after"])
}

func TestListingHandlerValidation(t *testing.T) {
	h := handler.NewSubredditHandler(&mocks.MockBrowseService{})

	tests := []struct {
		target string
		want   string
	}{
		{"/listing", "name: required"},
		{"/listing?name=golang&sort=sideways", "sort: must be one of"},
		{"/listing?name=golang&limit=-5", "limit: must be at least -1"},
		{"/listing?name=a/b", "name: must not contain"},
		{"/listing?name=golang&limit=lots", "failed to decode query"},
	}
	for _, tt := range tests {
		c, _ := newGet(tt.target)
		err := h.GetListing(c)
		require.Error(t, err, tt.target)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err), tt.target)
		assert.Contains(t, fmt.Sprint(err.(*echo.HTTPError).Message), tt.want, tt.target)
	}
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&client.APIError{Status: 404}, http.StatusNotFound},
		{&client.APIError{Status: 403}, http.StatusForbidden},
		{&client.APIError{Status: 429}, http.StatusTooManyRequests},
		{&client.APIError{Status: 401}, http.StatusUnauthorized},
		{&client.APIError{Status: 500}, http.StatusBadGateway},
		{fmt.Errorf("me: %w", client.ErrUserContextRequired), http.StatusUnauthorized},
		{service.ErrInvalidLimit, http.StatusBadRequest},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("connection reset"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		svc := &mocks.MockBrowseService{
			SubredditFunc: func(ctx context.Context, name string) (models.Subreddit, error) {
				return models.Subreddit{}, tt.err
			},
		}
		c, _ := newGet("/subreddit/about?name=golang")
		err := handler.NewSubredditHandler(svc).GetAbout(c)
		assert.Equal(t, tt.want, httpStatus(t, err), tt.err.Error())
	}
}

func TestSearchHandlerEmptyResult(t *testing.T) {
	var gotNSFW bool
	svc := &mocks.MockBrowseService{
		SearchSubredditsFunc: func(ctx context.Context, query string, includeNSFW bool) ([]models.Subreddit, error) {
			gotNSFW = includeNSFW
			return nil, nil
		},
	}

	c, rec := newGet("/subreddits/search?q=go&nsfw=true")
	require.NoError(t, handler.NewSearchHandler(svc).SearchSubreddits(c))
	assert.True(t, gotNSFW)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCommentsHandler(t *testing.T) {
	svc := &mocks.MockBrowseService{
		PostFunc: func(ctx context.Context, subreddit, id, sort string) (models.PostDetail, error) {
			assert.Equal(t, "programming", subreddit)
			assert.Equal(t, "abc", id)
			assert.Equal(t, "new", sort)
			return models.PostDetail{Post: models.Post{ID: "abc"}, Comments: []models.Comment{{ID: "c1"}}}, nil
		},
	}

	c, rec := newGet("/comments?subreddit=programming&id=abc&sort=new")
	require.NoError(t, handler.NewPostHandler(svc).GetComments(c))

	var detail models.PostDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "abc", detail.Post.ID)
	assert.Len(t, detail.Comments, 1)
}

func TestResolveHandler(t *testing.T) {
	h := handler.NewResolveHandler(&mocks.MockBrowseService{})

	c, rec := newGet("/resolve?kind=subreddit_listing&name=hot&sort=top")
	require.NoError(t, h.Resolve(c))
	assert.JSONEq(t, `{"kind":"subreddit_listing","path":"hot"}`, rec.Body.String())

	c, rec = newGet("/resolve?kind=user_saved&username=alice")
	require.NoError(t, h.Resolve(c))
	assert.JSONEq(t, `{"kind":"user_saved","path":"user/alice/saved"}`, rec.Body.String())

	c, _ = newGet("/resolve?kind=teleport")
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, h.Resolve(c)))

	c, _ = newGet("/resolve?kind=comments&name=golang")
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, h.Resolve(c)))
}

func TestVoteHandler(t *testing.T) {
	var gotDir client.VoteDirection
	svc := &mocks.MockBrowseService{
		VoteFunc: func(ctx context.Context, fullname string, dir client.VoteDirection) error {
			gotDir = dir
			return nil
		},
	}
	h := handler.NewUserHandler(svc)

	c, rec := newPost("/vote", `{"id":"t3_abc","dir":-1}`)
	require.NoError(t, h.Vote(c))
	assert.Equal(t, client.Downvote, gotDir)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	c, _ = newPost("/vote", `{"id":"t3_abc","dir":0}`)
	require.NoError(t, h.Vote(c))
	assert.Equal(t, client.Unvote, gotDir)

	c, _ = newPost("/vote", `{"id":"t3_abc"}`)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, h.Vote(c)))

	c, _ = newPost("/vote", `{"id":"t3_abc","dir":2}`)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, h.Vote(c)))
}

func TestSaveAndUnsaveHandlers(t *testing.T) {
	svc := &mocks.MockBrowseService{}
	h := handler.NewUserHandler(svc)

	c, rec := newPost("/save", `{"id":"t3_abc"}`)
	require.NoError(t, h.Save(c))
	assert.JSONEq(t, `{"id":"t3_abc","saved":true}`, rec.Body.String())

	c, rec = newPost("/unsave", `{"id":"t3_abc"}`)
	require.NoError(t, h.Unsave(c))
	assert.JSONEq(t, `{"id":"t3_abc","saved":false}`, rec.Body.String())

	c, _ = newPost("/save", `{}`)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, h.Save(c)))
}

func TestVisitsHandler(t *testing.T) {
	var got []string
	svc := &mocks.MockBrowseService{
		MarkVisitedFunc: func(ctx context.Context, fullnames ...string) error {
			got = fullnames
			return nil
		},
	}
	h := handler.NewUserHandler(svc)

	c, _ := newPost("/visits", `{"links":["t3_a","t3_b"]}`)
	require.NoError(t, h.MarkVisited(c))
	assert.Equal(t, []string{"t3_a", "t3_b"}, got)

	c, _ = newPost("/visits", `{"links":[]}`)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, h.MarkVisited(c)))
}

func TestMeRequiresUserContext(t *testing.T) {
	svc := &mocks.MockBrowseService{
		MeFunc: func(ctx context.Context) (models.Account, error) {
			return models.Account{}, fmt.Errorf("fetch me: %w", client.ErrUserContextRequired)
		},
	}
	c, _ := newGet("/me")
	assert.Equal(t, http.StatusUnauthorized, httpStatus(t, handler.NewUserHandler(svc).GetMe(c)))
}

func TestSavedHandler(t *testing.T) {
	svc := &mocks.MockBrowseService{
		UserSavedFunc: func(ctx context.Context, username string, limit int) (models.SavedItems, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, -1, limit)
			return models.SavedItems{Posts: []models.Post{{Name: "t3_a"}}, Comments: []models.SavedComment{}}, nil
		},
	}
	c, rec := newGet("/user/saved?username=alice&limit=-1")
	require.NoError(t, handler.NewUserHandler(svc).GetSaved(c))

	var items models.SavedItems
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items.Posts, 1)
}
