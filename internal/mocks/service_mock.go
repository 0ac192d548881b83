package mocks

import (
	"context"

	"reddit-browser/internal/client"
	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

// MockBrowseService stubs service.BrowseService for handler tests.
// Unset funcs return zero values.
type MockBrowseService struct {
	ListingFunc          func(ctx context.Context, req service.ListingRequest) (models.ListingPage, error)
	SubredditFunc        func(ctx context.Context, name string) (models.Subreddit, error)
	SearchSubredditsFunc func(ctx context.Context, query string, includeNSFW bool) ([]models.Subreddit, error)
	PostFunc             func(ctx context.Context, subreddit, id, sort string) (models.PostDetail, error)
	MeFunc               func(ctx context.Context) (models.Account, error)
	SubscriptionsFunc    func(ctx context.Context) ([]models.Subreddit, error)
	VoteFunc             func(ctx context.Context, fullname string, dir client.VoteDirection) error
	ToggleSaveFunc       func(ctx context.Context, fullname string, saved bool) (bool, error)
	MarkVisitedFunc      func(ctx context.Context, fullnames ...string) error
	UserSavedFunc        func(ctx context.Context, username string, limit int) (models.SavedItems, error)
}

var _ service.BrowseService = (*MockBrowseService)(nil)

func (m *MockBrowseService) Listing(ctx context.Context, req service.ListingRequest) (models.ListingPage, error) {
	if m.ListingFunc == nil {
		return models.ListingPage{}, nil
	}
	return m.ListingFunc(ctx, req)
}

func (m *MockBrowseService) Subreddit(ctx context.Context, name string) (models.Subreddit, error) {
	if m.SubredditFunc == nil {
		return models.Subreddit{}, nil
	}
	return m.SubredditFunc(ctx, name)
}

func (m *MockBrowseService) SearchSubreddits(ctx context.Context, query string, includeNSFW bool) ([]models.Subreddit, error) {
	if m.SearchSubredditsFunc == nil {
		return nil, nil
	}
	return m.SearchSubredditsFunc(ctx, query, includeNSFW)
}

func (m *MockBrowseService) Post(ctx context.Context, subreddit, id, sort string) (models.PostDetail, error) {
	if m.PostFunc == nil {
		return models.PostDetail{}, nil
	}
	return m.PostFunc(ctx, subreddit, id, sort)
}

func (m *MockBrowseService) Me(ctx context.Context) (models.Account, error) {
	if m.MeFunc == nil {
		return models.Account{}, nil
	}
	return m.MeFunc(ctx)
}

func (m *MockBrowseService) Subscriptions(ctx context.Context) ([]models.Subreddit, error) {
	if m.SubscriptionsFunc == nil {
		return nil, nil
	}
	return m.SubscriptionsFunc(ctx)
}

func (m *MockBrowseService) Vote(ctx context.Context, fullname string, dir client.VoteDirection) error {
	if m.VoteFunc == nil {
		return nil
	}
	return m.VoteFunc(ctx, fullname, dir)
}

func (m *MockBrowseService) ToggleSave(ctx context.Context, fullname string, saved bool) (bool, error) {
	if m.ToggleSaveFunc == nil {
		return !saved, nil
	}
	return m.ToggleSaveFunc(ctx, fullname, saved)
}

func (m *MockBrowseService) MarkVisited(ctx context.Context, fullnames ...string) error {
	if m.MarkVisitedFunc == nil {
		return nil
	}
	return m.MarkVisitedFunc(ctx, fullnames...)
}

func (m *MockBrowseService) UserSaved(ctx context.Context, username string, limit int) (models.SavedItems, error) {
	if m.UserSavedFunc == nil {
		return models.SavedItems{}, nil
	}
	return m.UserSavedFunc(ctx, username, limit)
}

func (m *MockBrowseService) Resolve(op endpoint.Operation) string {
	return endpoint.Resolve(op)
}
