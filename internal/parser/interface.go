// internal/parser/interface.go
package parser

import (
	"context"
	stdjson "encoding/json"

	"reddit-browser/internal/models"
)

// Parser turns Reddit API responses into models.
type Parser interface {
	ParseListing(ctx context.Context, data stdjson.RawMessage) ([]models.Post, string, error)
	ParseSubreddits(ctx context.Context, data stdjson.RawMessage) ([]models.Subreddit, string, error)
	ParseSearchSubreddits(ctx context.Context, data stdjson.RawMessage) ([]models.Subreddit, error)
	ParseSubredditAbout(ctx context.Context, data stdjson.RawMessage) (models.Subreddit, error)
	ParseMe(ctx context.Context, data stdjson.RawMessage) (models.Account, error)
	ParsePost(ctx context.Context, postData, commentData stdjson.RawMessage) (models.PostDetail, error)
	ParseSaved(ctx context.Context, data stdjson.RawMessage) (models.SavedItems, error)
}
