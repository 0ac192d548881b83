// internal/client/interface.go
package client

import (
	"context"
	"encoding/json"
)

// Page selects one page of a listing. Zero values are omitted from the query.
type Page struct {
	Limit int
	After string
	// T is the time window for top and controversial sorts (hour, day, week, month, year, all).
	T string
}

type VoteDirection int

const (
	Downvote VoteDirection = -1
	Unvote   VoteDirection = 0
	Upvote   VoteDirection = 1
)

func (d VoteDirection) Valid() bool {
	return d >= Downvote && d <= Upvote
}

type RedditClientInterface interface {
	GetListing(ctx context.Context, name, sort string, page Page) (json.RawMessage, error)
	GetSubredditAbout(ctx context.Context, name string) (json.RawMessage, error)
	SearchSubreddits(ctx context.Context, query string, includeNSFW bool) (json.RawMessage, error)
	GetComments(ctx context.Context, subreddit, id, sort string) (json.RawMessage, error)
	GetMe(ctx context.Context) (json.RawMessage, error)
	GetSubscriptions(ctx context.Context, page Page) (json.RawMessage, error)
	Vote(ctx context.Context, fullname string, dir VoteDirection) error
	StoreVisits(ctx context.Context, fullnames []string) error
	Save(ctx context.Context, fullname string) error
	Unsave(ctx context.Context, fullname string) error
	GetUserSaved(ctx context.Context, username string, page Page) (json.RawMessage, error)
	UserContext() bool
}
