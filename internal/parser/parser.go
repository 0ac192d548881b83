// internal/parser/parser.go
package parser

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"reddit-browser/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "parser").Logger().Output(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
})

type RedditParser struct {
	webBaseURL string
}

func NewRedditParser(webBaseURL string) *RedditParser {
	return &RedditParser{webBaseURL: strings.TrimRight(webBaseURL, "/")}
}

type rawPost struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Selftext      string  `json:"selftext"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Score         int     `json:"score"`
	NumComments   int     `json:"num_comments"`
	CreatedUTC    float64 `json:"created_utc"`
	LinkFlairText string  `json:"link_flair_text"`
	Permalink     string  `json:"permalink"`
	URL           string  `json:"url"`
	Thumbnail     string  `json:"thumbnail"`
	Over18        bool    `json:"over_18"`
	Likes         *bool   `json:"likes"`
	Saved         bool    `json:"saved"`
	Visited       bool    `json:"visited"`
}

type rawSubreddit struct {
	Name              string  `json:"name"`
	DisplayName       string  `json:"display_name"`
	Title             string  `json:"title"`
	PublicDescription string  `json:"public_description"`
	Subscribers       int     `json:"subscribers"`
	ActiveUserCount   int     `json:"active_user_count"`
	IconImg           string  `json:"icon_img"`
	CommunityIcon     string  `json:"community_icon"`
	Over18            bool    `json:"over18"`
	UserIsSubscriber  bool    `json:"user_is_subscriber"`
	CreatedUTC        float64 `json:"created_utc"`
}

// listing is the generic {"kind":"Listing","data":{"after":...,"children":[...]}} envelope.
type listing struct {
	Data struct {
		Children []struct {
			Kind string             `json:"kind"`
			Data stdjson.RawMessage `json:"data"`
		} `json:"children"`
		After string `json:"after"`
	} `json:"data"`
}

func (p *RedditParser) ParseListing(ctx context.Context, data stdjson.RawMessage) ([]models.Post, string, error) {
	var l listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, "", fmt.Errorf("parse listing JSON: %w", err)
	}

	var posts []models.Post
	for _, child := range l.Data.Children {
		if ctx.Err() != nil {
			return posts, "", ctx.Err()
		}
		if child.Kind != "t3" {
			continue
		}
		var rp rawPost
		if err := json.Unmarshal(child.Data, &rp); err != nil {
			return nil, "", fmt.Errorf("parse post %s: %w", child.Kind, err)
		}
		posts = append(posts, p.toPost(rp))
	}

	return posts, l.Data.After, nil
}

func (p *RedditParser) toPost(rp rawPost) models.Post {
	permalink := p.webBaseURL + rp.Permalink
	link := rp.URL
	if link == "" {
		link = permalink
	}
	name := rp.Name
	if name == "" && rp.ID != "" {
		name = "t3_" + rp.ID
	}

	return models.Post{
		ID:          rp.ID,
		Name:        name,
		Title:       rp.Title,
		Body:        rp.Selftext,
		Author:      rp.Author,
		Subreddit:   rp.Subreddit,
		Score:       rp.Score,
		NumComments: rp.NumComments,
		CreatedAt:   time.Unix(int64(rp.CreatedUTC), 0),
		Flair:       rp.LinkFlairText,
		URL:         link,
		Permalink:   permalink,
		Thumbnail:   httpURL(rp.Thumbnail),
		Over18:      rp.Over18,
		Likes:       rp.Likes,
		Saved:       rp.Saved,
		Visited:     rp.Visited,
	}
}

// httpURL drops Reddit's placeholder thumbnails ("self", "default", "nsfw", ...).
func httpURL(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return ""
}

func toSubreddit(rs rawSubreddit) models.Subreddit {
	icon := rs.CommunityIcon
	if icon == "" {
		icon = rs.IconImg
	}
	var created time.Time
	if rs.CreatedUTC > 0 {
		created = time.Unix(int64(rs.CreatedUTC), 0)
	}
	return models.Subreddit{
		Name:              rs.Name,
		DisplayName:       rs.DisplayName,
		Title:             rs.Title,
		PublicDescription: rs.PublicDescription,
		Subscribers:       rs.Subscribers,
		ActiveUsers:       rs.ActiveUserCount,
		IconURL:           httpURL(icon),
		Over18:            rs.Over18,
		Subscribed:        rs.UserIsSubscriber,
		CreatedAt:         created,
	}
}

func (p *RedditParser) ParseSubreddits(ctx context.Context, data stdjson.RawMessage) ([]models.Subreddit, string, error) {
	var l listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, "", fmt.Errorf("parse subreddits JSON: %w", err)
	}

	var subs []models.Subreddit
	for _, child := range l.Data.Children {
		if child.Kind != "t5" {
			continue
		}
		var rs rawSubreddit
		if err := json.Unmarshal(child.Data, &rs); err != nil {
			return nil, "", fmt.Errorf("parse subreddit: %w", err)
		}
		subs = append(subs, toSubreddit(rs))
	}

	return subs, l.Data.After, nil
}

func (p *RedditParser) ParseSearchSubreddits(ctx context.Context, data stdjson.RawMessage) ([]models.Subreddit, error) {
	var result struct {
		Subreddits []struct {
			Name            string `json:"name"`
			SubscriberCount int    `json:"subscriber_count"`
			ActiveUserCount int    `json:"active_user_count"`
			IconImg         string `json:"icon_img"`
		} `json:"subreddits"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse subreddit search JSON: %w", err)
	}

	subs := make([]models.Subreddit, 0, len(result.Subreddits))
	for _, s := range result.Subreddits {
		subs = append(subs, models.Subreddit{
			DisplayName: s.Name,
			Subscribers: s.SubscriberCount,
			ActiveUsers: s.ActiveUserCount,
			IconURL:     httpURL(s.IconImg),
		})
	}
	return subs, nil
}

func (p *RedditParser) ParseSubredditAbout(ctx context.Context, data stdjson.RawMessage) (models.Subreddit, error) {
	var about struct {
		Kind string       `json:"kind"`
		Data rawSubreddit `json:"data"`
	}
	if err := json.Unmarshal(data, &about); err != nil {
		return models.Subreddit{}, fmt.Errorf("parse subreddit about JSON: %w", err)
	}
	if about.Kind != "t5" || about.Data.DisplayName == "" {
		return models.Subreddit{}, fmt.Errorf("subreddit not found")
	}
	return toSubreddit(about.Data), nil
}

func (p *RedditParser) ParseMe(ctx context.Context, data stdjson.RawMessage) (models.Account, error) {
	var me struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		LinkKarma    int     `json:"link_karma"`
		CommentKarma int     `json:"comment_karma"`
		InboxCount   int     `json:"inbox_count"`
		IsGold       bool    `json:"is_gold"`
		IconImg      string  `json:"icon_img"`
		CreatedUTC   float64 `json:"created_utc"`
	}
	if err := json.Unmarshal(data, &me); err != nil {
		return models.Account{}, fmt.Errorf("parse me JSON: %w", err)
	}
	if me.Name == "" {
		return models.Account{}, fmt.Errorf("me response has no user name")
	}

	return models.Account{
		ID:           me.ID,
		Username:     me.Name,
		LinkKarma:    me.LinkKarma,
		CommentKarma: me.CommentKarma,
		InboxCount:   me.InboxCount,
		IsGold:       me.IsGold,
		IconURL:      httpURL(me.IconImg),
		CreatedAt:    time.Unix(int64(me.CreatedUTC), 0),
	}, nil
}

func (p *RedditParser) ParsePost(ctx context.Context, postData, commentData stdjson.RawMessage) (models.PostDetail, error) {
	var l listing
	if err := json.Unmarshal(postData, &l); err != nil {
		return models.PostDetail{}, fmt.Errorf("parse post JSON: %w", err)
	}
	if len(l.Data.Children) == 0 {
		return models.PostDetail{}, fmt.Errorf("post not found")
	}

	var rp rawPost
	if err := json.Unmarshal(l.Data.Children[0].Data, &rp); err != nil {
		return models.PostDetail{}, fmt.Errorf("parse post JSON: %w", err)
	}
	post := p.toPost(rp)

	comments, err := p.parseCommentsTree(ctx, commentData)
	if err != nil {
		return models.PostDetail{Post: post}, fmt.Errorf("parse comments: %w", err)
	}

	return models.PostDetail{Post: post, Comments: comments}, nil
}

func (p *RedditParser) ParseSaved(ctx context.Context, data stdjson.RawMessage) (models.SavedItems, error) {
	var l listing
	if err := json.Unmarshal(data, &l); err != nil {
		return models.SavedItems{}, fmt.Errorf("parse saved JSON: %w", err)
	}

	items := models.SavedItems{After: l.Data.After}
	for _, child := range l.Data.Children {
		switch child.Kind {
		case "t3":
			var rp rawPost
			if err := json.Unmarshal(child.Data, &rp); err != nil {
				return models.SavedItems{}, fmt.Errorf("parse saved post: %w", err)
			}
			items.Posts = append(items.Posts, p.toPost(rp))
		case "t1":
			var rc struct {
				ID         string  `json:"id"`
				Name       string  `json:"name"`
				Author     string  `json:"author"`
				Body       string  `json:"body"`
				Score      int     `json:"score"`
				CreatedUTC float64 `json:"created_utc"`
				Subreddit  string  `json:"subreddit"`
				LinkID     string  `json:"link_id"`
				LinkTitle  string  `json:"link_title"`
				Permalink  string  `json:"permalink"`
			}
			if err := json.Unmarshal(child.Data, &rc); err != nil {
				return models.SavedItems{}, fmt.Errorf("parse saved comment: %w", err)
			}
			items.Comments = append(items.Comments, models.SavedComment{
				Comment: models.Comment{
					ID:        rc.ID,
					Name:      rc.Name,
					Author:    rc.Author,
					Body:      rc.Body,
					Score:     rc.Score,
					CreatedAt: time.Unix(int64(rc.CreatedUTC), 0),
					Saved:     true,
				},
				Subreddit: rc.Subreddit,
				LinkID:    rc.LinkID,
				LinkTitle: rc.LinkTitle,
				Permalink: p.webBaseURL + rc.Permalink,
			})
		}
	}
	return items, nil
}

func (p *RedditParser) parseCommentsTree(ctx context.Context, data stdjson.RawMessage) ([]models.Comment, error) {
	var commentsBlock struct {
		Data struct {
			Children []models.RawChild `json:"children"`
		} `json:"data"`
	}

	if err := json.Unmarshal(data, &commentsBlock); err != nil {
		return nil, fmt.Errorf("parse comments JSON: %w", err)
	}

	return p.processComments(ctx, commentsBlock.Data.Children), nil
}

func (p *RedditParser) processComments(ctx context.Context, children []models.RawChild) []models.Comment {
	var comments []models.Comment

	for _, child := range children {
		if ctx.Err() != nil {
			return comments
		}

		switch child.Kind {
		case "t1":
			comment := models.Comment{
				ID:        child.Data.ID,
				Name:      child.Data.Name,
				Author:    child.Data.Author,
				Body:      child.Data.Body,
				Score:     child.Data.Score,
				CreatedAt: time.Unix(int64(child.Data.CreatedUTC), 0),
				Likes:     child.Data.Likes,
				Saved:     child.Data.Saved,
			}

			// replies is "" when there are none, a listing otherwise
			if len(child.Data.Replies) > 0 && child.Data.Replies[0] == '{' {
				var replies struct {
					Data struct {
						Children []models.RawChild `json:"children"`
					} `json:"data"`
				}
				if err := json.Unmarshal(child.Data.Replies, &replies); err == nil {
					comment.Replies = p.processComments(ctx, replies.Data.Children)
				} else {
					logger.Debug().Err(err).Str("comment", child.Data.ID).Msg("skipping unreadable replies")
				}
			}

			comments = append(comments, comment)

		case "more":
			if len(child.Data.Children) == 0 {
				// "continue this thread": the remaining replies live under the parent
				comments = append(comments, models.Comment{
					ID:      "continue_" + uuid.New().String(),
					IsMore:  true,
					HasMore: true,
					MoreIDs: []string{child.Data.ParentID},
				})
				continue
			}
			comments = append(comments, models.Comment{
				ID:        "more_" + uuid.New().String(),
				IsMore:    true,
				MoreIDs:   child.Data.Children,
				MoreCount: child.Data.Count,
			})
		}
	}

	return comments
}
