package mocks

import (
	"context"
	"encoding/json"

	"reddit-browser/internal/client"
)

type MockRedditClient struct {
	GetListingFunc        func(ctx context.Context, name, sort string, page client.Page) (json.RawMessage, error)
	GetSubredditAboutFunc func(ctx context.Context, name string) (json.RawMessage, error)
	SearchSubredditsFunc  func(ctx context.Context, query string, includeNSFW bool) (json.RawMessage, error)
	GetCommentsFunc       func(ctx context.Context, subreddit, id, sort string) (json.RawMessage, error)
	GetMeFunc             func(ctx context.Context) (json.RawMessage, error)
	GetSubscriptionsFunc  func(ctx context.Context, page client.Page) (json.RawMessage, error)
	VoteFunc              func(ctx context.Context, fullname string, dir client.VoteDirection) error
	StoreVisitsFunc       func(ctx context.Context, fullnames []string) error
	SaveFunc              func(ctx context.Context, fullname string) error
	UnsaveFunc            func(ctx context.Context, fullname string) error
	GetUserSavedFunc      func(ctx context.Context, username string, page client.Page) (json.RawMessage, error)
	UserContextFunc       func() bool
}

func (m *MockRedditClient) GetListing(ctx context.Context, name, sort string, page client.Page) (json.RawMessage, error) {
	return m.GetListingFunc(ctx, name, sort, page)
}

func (m *MockRedditClient) GetSubredditAbout(ctx context.Context, name string) (json.RawMessage, error) {
	return m.GetSubredditAboutFunc(ctx, name)
}

func (m *MockRedditClient) SearchSubreddits(ctx context.Context, query string, includeNSFW bool) (json.RawMessage, error) {
	return m.SearchSubredditsFunc(ctx, query, includeNSFW)
}

func (m *MockRedditClient) GetComments(ctx context.Context, subreddit, id, sort string) (json.RawMessage, error) {
	return m.GetCommentsFunc(ctx, subreddit, id, sort)
}

func (m *MockRedditClient) GetMe(ctx context.Context) (json.RawMessage, error) {
	return m.GetMeFunc(ctx)
}

func (m *MockRedditClient) GetSubscriptions(ctx context.Context, page client.Page) (json.RawMessage, error) {
	return m.GetSubscriptionsFunc(ctx, page)
}

func (m *MockRedditClient) Vote(ctx context.Context, fullname string, dir client.VoteDirection) error {
	return m.VoteFunc(ctx, fullname, dir)
}

func (m *MockRedditClient) StoreVisits(ctx context.Context, fullnames []string) error {
	return m.StoreVisitsFunc(ctx, fullnames)
}

func (m *MockRedditClient) Save(ctx context.Context, fullname string) error {
	return m.SaveFunc(ctx, fullname)
}

func (m *MockRedditClient) Unsave(ctx context.Context, fullname string) error {
	return m.UnsaveFunc(ctx, fullname)
}

func (m *MockRedditClient) GetUserSaved(ctx context.Context, username string, page client.Page) (json.RawMessage, error) {
	return m.GetUserSavedFunc(ctx, username, page)
}

func (m *MockRedditClient) UserContext() bool {
	if m.UserContextFunc == nil {
		return true
	}
	return m.UserContextFunc()
}
