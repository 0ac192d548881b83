package mocks

import (
	"context"
	"encoding/json"

	"reddit-browser/internal/models"
)

type MockParser struct {
	ParseListingFunc          func(ctx context.Context, data json.RawMessage) ([]models.Post, string, error)
	ParseSubredditsFunc       func(ctx context.Context, data json.RawMessage) ([]models.Subreddit, string, error)
	ParseSearchSubredditsFunc func(ctx context.Context, data json.RawMessage) ([]models.Subreddit, error)
	ParseSubredditAboutFunc   func(ctx context.Context, data json.RawMessage) (models.Subreddit, error)
	ParseMeFunc               func(ctx context.Context, data json.RawMessage) (models.Account, error)
	ParsePostFunc             func(ctx context.Context, postData, commentData json.RawMessage) (models.PostDetail, error)
	ParseSavedFunc            func(ctx context.Context, data json.RawMessage) (models.SavedItems, error)
}

func (m *MockParser) ParseListing(ctx context.Context, data json.RawMessage) ([]models.Post, string, error) {
	return m.ParseListingFunc(ctx, data)
}

func (m *MockParser) ParseSubreddits(ctx context.Context, data json.RawMessage) ([]models.Subreddit, string, error) {
	return m.ParseSubredditsFunc(ctx, data)
}

func (m *MockParser) ParseSearchSubreddits(ctx context.Context, data json.RawMessage) ([]models.Subreddit, error) {
	return m.ParseSearchSubredditsFunc(ctx, data)
}

func (m *MockParser) ParseSubredditAbout(ctx context.Context, data json.RawMessage) (models.Subreddit, error) {
	return m.ParseSubredditAboutFunc(ctx, data)
}

func (m *MockParser) ParseMe(ctx context.Context, data json.RawMessage) (models.Account, error) {
	return m.ParseMeFunc(ctx, data)
}

func (m *MockParser) ParsePost(ctx context.Context, postData, commentData json.RawMessage) (models.PostDetail, error) {
	return m.ParsePostFunc(ctx, postData, commentData)
}

func (m *MockParser) ParseSaved(ctx context.Context, data json.RawMessage) (models.SavedItems, error) {
	return m.ParseSavedFunc(ctx, data)
}
