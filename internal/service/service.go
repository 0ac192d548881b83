// internal/service/service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"reddit-browser/internal/client"
	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/models"
	"reddit-browser/internal/parser"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "service").Logger().Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
})

// ErrInvalidLimit is returned for limits below -1.
var ErrInvalidLimit = errors.New("limit must be -1, 0 or a positive integer")

// BrowseService defines what a Reddit browsing front end can do.
type BrowseService interface {
	Listing(ctx context.Context, req ListingRequest) (models.ListingPage, error)
	Subreddit(ctx context.Context, name string) (models.Subreddit, error)
	SearchSubreddits(ctx context.Context, query string, includeNSFW bool) ([]models.Subreddit, error)
	Post(ctx context.Context, subreddit, id, sort string) (models.PostDetail, error)
	Me(ctx context.Context) (models.Account, error)
	Subscriptions(ctx context.Context) ([]models.Subreddit, error)
	Vote(ctx context.Context, fullname string, dir client.VoteDirection) error
	ToggleSave(ctx context.Context, fullname string, saved bool) (bool, error)
	MarkVisited(ctx context.Context, fullnames ...string) error
	UserSaved(ctx context.Context, username string, limit int) (models.SavedItems, error)
	Resolve(op endpoint.Operation) string
}

// ListingRequest selects a subreddit or front-page listing.
//
// Limit 0 fetches a single page of the default size, a positive Limit pages
// until that many posts are collected, and -1 pages until the listing ends.
type ListingRequest struct {
	Name  string
	Sort  string
	T     string
	After string
	Limit int
}

type browseService struct {
	client       client.RedditClientInterface
	parser       parser.Parser
	defaultLimit int
}

func NewBrowseService(client client.RedditClientInterface, parser parser.Parser, defaultLimit int) BrowseService {
	if defaultLimit <= 0 {
		defaultLimit = 25
	}
	return &browseService{
		client:       client,
		parser:       parser,
		defaultLimit: defaultLimit,
	}
}

func (s *browseService) Resolve(op endpoint.Operation) string {
	return endpoint.Resolve(op)
}

// Listing retrieves posts from a subreddit or front-page feed
func (s *browseService) Listing(ctx context.Context, req ListingRequest) (models.ListingPage, error) {
	startTime := time.Now()

	posts, after, err := paginate(ctx, req.Limit, s.defaultLimit, req.After,
		func(page client.Page) ([]models.Post, string, error) {
			page.T = req.T
			data, err := s.client.GetListing(ctx, req.Name, req.Sort, page)
			if err != nil {
				return nil, "", fmt.Errorf("fetch listing: %w", err)
			}
			posts, next, err := s.parser.ParseListing(ctx, data)
			if err != nil {
				return nil, "", fmt.Errorf("parse listing: %w", err)
			}
			return posts, next, nil
		},
		func(p models.Post) string { return p.Name },
	)
	if err != nil {
		return models.ListingPage{}, err
	}
	if posts == nil {
		posts = []models.Post{}
	}

	logger.Info().
		Str("path", endpoint.Resolve(endpoint.SubredditListing{Name: req.Name, Sort: req.Sort})).
		Int("posts", len(posts)).
		Dur("took", time.Since(startTime)).
		Msg("listing fetched")

	return models.ListingPage{Posts: posts, After: after}, nil
}

func (s *browseService) Subreddit(ctx context.Context, name string) (models.Subreddit, error) {
	data, err := s.client.GetSubredditAbout(ctx, name)
	if err != nil {
		return models.Subreddit{}, fmt.Errorf("fetch subreddit about: %w", err)
	}
	sub, err := s.parser.ParseSubredditAbout(ctx, data)
	if err != nil {
		return models.Subreddit{}, fmt.Errorf("parse subreddit about: %w", err)
	}
	return sub, nil
}

func (s *browseService) SearchSubreddits(ctx context.Context, query string, includeNSFW bool) ([]models.Subreddit, error) {
	data, err := s.client.SearchSubreddits(ctx, query, includeNSFW)
	if err != nil {
		return nil, fmt.Errorf("search subreddits: %w", err)
	}
	subs, err := s.parser.ParseSearchSubreddits(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("parse subreddit search: %w", err)
	}
	return subs, nil
}

// Post retrieves a post with its comment tree. id may carry the t3_ prefix.
func (s *browseService) Post(ctx context.Context, subreddit, id, sort string) (models.PostDetail, error) {
	id = strings.TrimPrefix(id, "t3_")

	data, err := s.client.GetComments(ctx, subreddit, id, sort)
	if err != nil {
		return models.PostDetail{}, fmt.Errorf("fetch comments: %w", err)
	}

	// The comments endpoint answers with [post listing, comment listing].
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.PostDetail{}, fmt.Errorf("invalid comments JSON format: %w", err)
	}
	if len(raw) < 2 {
		return models.PostDetail{}, fmt.Errorf("invalid comments JSON format: expected 2 listings, got %d", len(raw))
	}

	return s.parser.ParsePost(ctx, raw[0], raw[1])
}

func (s *browseService) Me(ctx context.Context) (models.Account, error) {
	data, err := s.client.GetMe(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("fetch me: %w", err)
	}
	me, err := s.parser.ParseMe(ctx, data)
	if err != nil {
		return models.Account{}, fmt.Errorf("parse me: %w", err)
	}
	return me, nil
}

// Subscriptions returns every subscribed subreddit ordered by name.
func (s *browseService) Subscriptions(ctx context.Context) ([]models.Subreddit, error) {
	subs, _, err := paginate(ctx, -1, 100, "",
		func(page client.Page) ([]models.Subreddit, string, error) {
			data, err := s.client.GetSubscriptions(ctx, page)
			if err != nil {
				return nil, "", fmt.Errorf("fetch subscriptions: %w", err)
			}
			subs, next, err := s.parser.ParseSubreddits(ctx, data)
			if err != nil {
				return nil, "", fmt.Errorf("parse subscriptions: %w", err)
			}
			return subs, next, nil
		},
		func(sub models.Subreddit) string { return sub.Name },
	)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return strings.ToLower(subs[i].DisplayName) < strings.ToLower(subs[j].DisplayName)
	})
	return subs, nil
}

func (s *browseService) Vote(ctx context.Context, fullname string, dir client.VoteDirection) error {
	if err := s.client.Vote(ctx, fullname, dir); err != nil {
		return fmt.Errorf("vote: %w", err)
	}
	return nil
}

// ToggleSave saves an unsaved thing and unsaves a saved one, returning the
// new state.
func (s *browseService) ToggleSave(ctx context.Context, fullname string, saved bool) (bool, error) {
	if saved {
		if err := s.client.Unsave(ctx, fullname); err != nil {
			return saved, fmt.Errorf("unsave: %w", err)
		}
		return false, nil
	}
	if err := s.client.Save(ctx, fullname); err != nil {
		return saved, fmt.Errorf("save: %w", err)
	}
	return true, nil
}

func (s *browseService) MarkVisited(ctx context.Context, fullnames ...string) error {
	seen := make(map[string]struct{}, len(fullnames))
	var unique []string
	for _, name := range fullnames {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	if len(unique) == 0 {
		return nil
	}
	if err := s.client.StoreVisits(ctx, unique); err != nil {
		return fmt.Errorf("store visits: %w", err)
	}
	return nil
}

// savedThing is one child of a saved listing, either a post or a comment.
type savedThing struct {
	post    *models.Post
	comment *models.SavedComment
}

func (t savedThing) name() string {
	if t.post != nil {
		return t.post.Name
	}
	return t.comment.Name
}

func (s *browseService) UserSaved(ctx context.Context, username string, limit int) (models.SavedItems, error) {
	things, after, err := paginate(ctx, limit, s.defaultLimit, "",
		func(page client.Page) ([]savedThing, string, error) {
			data, err := s.client.GetUserSaved(ctx, username, page)
			if err != nil {
				return nil, "", fmt.Errorf("fetch saved: %w", err)
			}
			items, err := s.parser.ParseSaved(ctx, data)
			if err != nil {
				return nil, "", fmt.Errorf("parse saved: %w", err)
			}
			things := make([]savedThing, 0, len(items.Posts)+len(items.Comments))
			for i := range items.Posts {
				things = append(things, savedThing{post: &items.Posts[i]})
			}
			for i := range items.Comments {
				things = append(things, savedThing{comment: &items.Comments[i]})
			}
			return things, items.After, nil
		},
		savedThing.name,
	)
	if err != nil {
		return models.SavedItems{}, err
	}

	saved := models.SavedItems{
		Posts:    []models.Post{},
		Comments: []models.SavedComment{},
		After:    after,
	}
	for _, t := range things {
		if t.post != nil {
			saved.Posts = append(saved.Posts, *t.post)
		} else {
			saved.Comments = append(saved.Comments, *t.comment)
		}
	}
	return saved, nil
}
