package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"reddit-browser/internal/client"
	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/mocks"
	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

// pagedPosts serves numbered posts in pages until total is reached.
func pagedPosts(total int) (*mocks.MockRedditClient, *mocks.MockParser, *[]client.Page) {
	var pages []client.Page
	mockClient := &mocks.MockRedditClient{}
	mockParser := &mocks.MockParser{}

	mockClient.GetListingFunc = func(ctx context.Context, name, sort string, page client.Page) (json.RawMessage, error) {
		pages = append(pages, page)
		return json.RawMessage(`{"after":"` + page.After + `","limit":` + strconv.Itoa(page.Limit) + `}`), nil
	}
	mockParser.ParseListingFunc = func(ctx context.Context, data json.RawMessage) ([]models.Post, string, error) {
		var req struct {
			After string `json:"after"`
			Limit int    `json:"limit"`
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, "", err
		}
		start := 0
		if req.After != "" {
			start, _ = strconv.Atoi(req.After[len("t3_"):])
			start++
		}
		var posts []models.Post
		for i := start; i < total && len(posts) < req.Limit; i++ {
			posts = append(posts, models.Post{ID: strconv.Itoa(i), Name: fmt.Sprintf("t3_%d", i)})
		}
		next := ""
		if len(posts) > 0 && start+len(posts) < total {
			next = posts[len(posts)-1].Name
		}
		return posts, next, nil
	}
	return mockClient, mockParser, &pages
}

func TestListingSinglePageByDefault(t *testing.T) {
	mockClient, mockParser, pages := pagedPosts(500)

	var gotName, gotSort string
	listing := mockClient.GetListingFunc
	mockClient.GetListingFunc = func(ctx context.Context, name, sort string, page client.Page) (json.RawMessage, error) {
		gotName, gotSort = name, sort
		return listing(ctx, name, sort, page)
	}

	svc := service.NewBrowseService(mockClient, mockParser, 25)
	page, err := svc.Listing(context.Background(), service.ListingRequest{Name: "golang", Sort: "top", T: "week"})
	if err != nil {
		t.Fatalf("Failed to fetch listing: %v", err)
	}

	if len(*pages) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(*pages))
	}
	if (*pages)[0].Limit != 25 || (*pages)[0].T != "week" {
		t.Errorf("Unexpected page request: %+v", (*pages)[0])
	}
	if gotName != "golang" || gotSort != "top" {
		t.Errorf("Expected golang/top, got %s/%s", gotName, gotSort)
	}
	if len(page.Posts) != 25 {
		t.Errorf("Expected 25 posts, got %d", len(page.Posts))
	}
	if page.After != "t3_24" {
		t.Errorf("Expected after cursor t3_24, got %q", page.After)
	}
}

func TestListingEmptyEncodesAsArray(t *testing.T) {
	mockClient := &mocks.MockRedditClient{
		GetListingFunc: func(ctx context.Context, name, sort string, page client.Page) (json.RawMessage, error) {
			return json.RawMessage(`{}`), nil
		},
	}
	mockParser := &mocks.MockParser{
		ParseListingFunc: func(ctx context.Context, data json.RawMessage) ([]models.Post, string, error) {
			return nil, "", nil
		},
	}

	svc := service.NewBrowseService(mockClient, mockParser, 25)
	page, err := svc.Listing(context.Background(), service.ListingRequest{Name: "emptysub"})
	if err != nil {
		t.Fatalf("Failed to fetch listing: %v", err)
	}

	encoded, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Failed to encode listing: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("Failed to decode listing: %v", err)
	}
	if string(decoded["posts"]) != "[]" {
		t.Errorf("Expected posts to encode as [], got %s", decoded["posts"])
	}
}

func TestListingPaginatesToLimit(t *testing.T) {
	mockClient, mockParser, pages := pagedPosts(500)
	svc := service.NewBrowseService(mockClient, mockParser, 25)

	page, err := svc.Listing(context.Background(), service.ListingRequest{Name: "hot", Limit: 150})
	if err != nil {
		t.Fatalf("Failed to fetch listing: %v", err)
	}

	if len(*pages) != 2 {
		t.Errorf("Expected 2 requests, got %d", len(*pages))
	}
	for _, p := range *pages {
		if p.Limit != 100 {
			t.Errorf("Expected page size 100, got %d", p.Limit)
		}
	}
	if (*pages)[1].After != "t3_99" {
		t.Errorf("Expected second page after t3_99, got %q", (*pages)[1].After)
	}
	if len(page.Posts) != 150 {
		t.Fatalf("Expected 150 posts, got %d", len(page.Posts))
	}
	if page.After != "t3_149" {
		t.Errorf("Expected cursor to follow the last returned post, got %q", page.After)
	}
}

func TestListingSmallLimitUsesSmallPage(t *testing.T) {
	mockClient, mockParser, pages := pagedPosts(500)
	svc := service.NewBrowseService(mockClient, mockParser, 25)

	page, err := svc.Listing(context.Background(), service.ListingRequest{Name: "golang", Limit: 5})
	if err != nil {
		t.Fatalf("Failed to fetch listing: %v", err)
	}
	if len(*pages) != 1 || (*pages)[0].Limit != 5 {
		t.Errorf("Expected one request of 5, got %+v", *pages)
	}
	if len(page.Posts) != 5 {
		t.Errorf("Expected 5 posts, got %d", len(page.Posts))
	}
}

func TestListingAllUntilExhausted(t *testing.T) {
	mockClient, mockParser, pages := pagedPosts(250)
	svc := service.NewBrowseService(mockClient, mockParser, 25)

	page, err := svc.Listing(context.Background(), service.ListingRequest{Name: "golang", Limit: -1})
	if err != nil {
		t.Fatalf("Failed to fetch listing: %v", err)
	}
	if len(*pages) != 3 {
		t.Errorf("Expected 3 requests, got %d", len(*pages))
	}
	if len(page.Posts) != 250 {
		t.Errorf("Expected 250 posts, got %d", len(page.Posts))
	}
	if page.After != "" {
		t.Errorf("Expected empty cursor at the end of the listing, got %q", page.After)
	}
}

func TestListingStartsFromCursor(t *testing.T) {
	mockClient, mockParser, pages := pagedPosts(500)
	svc := service.NewBrowseService(mockClient, mockParser, 10)

	page, err := svc.Listing(context.Background(), service.ListingRequest{Name: "golang", After: "t3_9"})
	if err != nil {
		t.Fatalf("Failed to fetch listing: %v", err)
	}
	if (*pages)[0].After != "t3_9" {
		t.Errorf("Expected request after t3_9, got %q", (*pages)[0].After)
	}
	if len(page.Posts) == 0 || page.Posts[0].Name != "t3_10" {
		t.Errorf("Expected listing to resume at t3_10, got %+v", page.Posts)
	}
}

func TestListingInvalidLimit(t *testing.T) {
	mockClient, mockParser, pages := pagedPosts(10)
	svc := service.NewBrowseService(mockClient, mockParser, 25)

	_, err := svc.Listing(context.Background(), service.ListingRequest{Name: "golang", Limit: -2})
	if !errors.Is(err, service.ErrInvalidLimit) {
		t.Errorf("Expected ErrInvalidLimit, got %v", err)
	}
	if len(*pages) != 0 {
		t.Errorf("Expected no requests, got %d", len(*pages))
	}
}

func TestListingCancelledContext(t *testing.T) {
	mockClient, mockParser, _ := pagedPosts(500)
	svc := service.NewBrowseService(mockClient, mockParser, 25)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Listing(ctx, service.ListingRequest{Name: "golang", Limit: 200})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestListingClientError(t *testing.T) {
	mockClient := &mocks.MockRedditClient{
		GetListingFunc: func(ctx context.Context, name, sort string, page client.Page) (json.RawMessage, error) {
			return nil, &client.APIError{Status: 404, Op: endpoint.KindSubredditListing}
		},
	}
	svc := service.NewBrowseService(mockClient, &mocks.MockParser{}, 25)

	_, err := svc.Listing(context.Background(), service.ListingRequest{Name: "nope"})
	if !errors.Is(err, client.ErrNotFound) {
		t.Errorf("Expected ErrNotFound through the wrap chain, got %v", err)
	}
}

func TestPostSplitsListings(t *testing.T) {
	var gotID string
	mockClient := &mocks.MockRedditClient{
		GetCommentsFunc: func(ctx context.Context, subreddit, id, sort string) (json.RawMessage, error) {
			gotID = id
			return json.RawMessage(`[{"kind":"Listing","post":true},{"kind":"Listing","comments":true}]`), nil
		},
	}
	mockParser := &mocks.MockParser{
		ParsePostFunc: func(ctx context.Context, postData, commentData json.RawMessage) (models.PostDetail, error) {
			if string(postData) != `{"kind":"Listing","post":true}` {
				t.Errorf("Unexpected post data: %s", postData)
			}
			if string(commentData) != `{"kind":"Listing","comments":true}` {
				t.Errorf("Unexpected comment data: %s", commentData)
			}
			return models.PostDetail{Post: models.Post{ID: "abc"}}, nil
		},
	}

	svc := service.NewBrowseService(mockClient, mockParser, 25)
	detail, err := svc.Post(context.Background(), "golang", "t3_abc", "top")
	if err != nil {
		t.Fatalf("Failed to fetch post: %v", err)
	}
	if gotID != "abc" {
		t.Errorf("Expected t3_ prefix to be stripped, got %q", gotID)
	}
	if detail.Post.ID != "abc" {
		t.Errorf("Expected post abc, got %q", detail.Post.ID)
	}
}

func TestPostRejectsShortArray(t *testing.T) {
	mockClient := &mocks.MockRedditClient{
		GetCommentsFunc: func(ctx context.Context, subreddit, id, sort string) (json.RawMessage, error) {
			return json.RawMessage(`[{}]`), nil
		},
	}
	svc := service.NewBrowseService(mockClient, &mocks.MockParser{}, 25)

	if _, err := svc.Post(context.Background(), "golang", "abc", ""); err == nil {
		t.Error("Expected an error for a single listing")
	}
}

func TestSubscriptionsSortedAcrossPages(t *testing.T) {
	calls := 0
	mockClient := &mocks.MockRedditClient{
		GetSubscriptionsFunc: func(ctx context.Context, page client.Page) (json.RawMessage, error) {
			calls++
			if page.Limit != 100 {
				t.Errorf("Expected page size 100, got %d", page.Limit)
			}
			return json.RawMessage(`"` + page.After + `"`), nil
		},
	}
	mockParser := &mocks.MockParser{
		ParseSubredditsFunc: func(ctx context.Context, data json.RawMessage) ([]models.Subreddit, string, error) {
			if string(data) == `""` {
				return []models.Subreddit{{Name: "t5_1", DisplayName: "golang"}, {Name: "t5_2", DisplayName: "AskReddit"}}, "t5_2", nil
			}
			return []models.Subreddit{{Name: "t5_3", DisplayName: "Zig"}, {Name: "t5_4", DisplayName: "books"}}, "", nil
		},
	}

	svc := service.NewBrowseService(mockClient, mockParser, 25)
	subs, err := svc.Subscriptions(context.Background())
	if err != nil {
		t.Fatalf("Failed to fetch subscriptions: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 requests, got %d", calls)
	}

	want := []string{"AskReddit", "books", "golang", "Zig"}
	if len(subs) != len(want) {
		t.Fatalf("Expected %d subreddits, got %d", len(want), len(subs))
	}
	for i, name := range want {
		if subs[i].DisplayName != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, subs[i].DisplayName)
		}
	}
}

func TestToggleSave(t *testing.T) {
	var saved, unsaved []string
	mockClient := &mocks.MockRedditClient{
		SaveFunc: func(ctx context.Context, fullname string) error {
			saved = append(saved, fullname)
			return nil
		},
		UnsaveFunc: func(ctx context.Context, fullname string) error {
			unsaved = append(unsaved, fullname)
			return nil
		},
	}
	svc := service.NewBrowseService(mockClient, &mocks.MockParser{}, 25)

	state, err := svc.ToggleSave(context.Background(), "t3_a", false)
	if err != nil || !state {
		t.Errorf("Expected save to succeed with state true, got %v, %v", state, err)
	}
	state, err = svc.ToggleSave(context.Background(), "t3_b", true)
	if err != nil || state {
		t.Errorf("Expected unsave to succeed with state false, got %v, %v", state, err)
	}
	if len(saved) != 1 || saved[0] != "t3_a" {
		t.Errorf("Unexpected saves: %v", saved)
	}
	if len(unsaved) != 1 || unsaved[0] != "t3_b" {
		t.Errorf("Unexpected unsaves: %v", unsaved)
	}
}

func TestToggleSaveKeepsStateOnError(t *testing.T) {
	mockClient := &mocks.MockRedditClient{
		SaveFunc: func(ctx context.Context, fullname string) error {
			return client.ErrUserContextRequired
		},
	}
	svc := service.NewBrowseService(mockClient, &mocks.MockParser{}, 25)

	state, err := svc.ToggleSave(context.Background(), "t3_a", false)
	if !errors.Is(err, client.ErrUserContextRequired) {
		t.Errorf("Expected ErrUserContextRequired, got %v", err)
	}
	if state {
		t.Error("Expected state to stay unsaved")
	}
}

func TestMarkVisitedDeduplicates(t *testing.T) {
	var got []string
	calls := 0
	mockClient := &mocks.MockRedditClient{
		StoreVisitsFunc: func(ctx context.Context, fullnames []string) error {
			calls++
			got = fullnames
			return nil
		},
	}
	svc := service.NewBrowseService(mockClient, &mocks.MockParser{}, 25)

	if err := svc.MarkVisited(context.Background(), "t3_a", "", "t3_b", "t3_a"); err != nil {
		t.Fatalf("Failed to mark visited: %v", err)
	}
	if len(got) != 2 || got[0] != "t3_a" || got[1] != "t3_b" {
		t.Errorf("Expected [t3_a t3_b], got %v", got)
	}

	if err := svc.MarkVisited(context.Background()); err != nil {
		t.Fatalf("Unexpected error for no fullnames: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected empty call to skip the client, got %d calls", calls)
	}
}

func TestVotePassesDirection(t *testing.T) {
	var gotDir client.VoteDirection
	mockClient := &mocks.MockRedditClient{
		VoteFunc: func(ctx context.Context, fullname string, dir client.VoteDirection) error {
			gotDir = dir
			return nil
		},
	}
	svc := service.NewBrowseService(mockClient, &mocks.MockParser{}, 25)

	if err := svc.Vote(context.Background(), "t3_a", client.Downvote); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}
	if gotDir != client.Downvote {
		t.Errorf("Expected downvote, got %d", gotDir)
	}
}

func TestUserSavedSplitsKinds(t *testing.T) {
	mockClient := &mocks.MockRedditClient{
		GetUserSavedFunc: func(ctx context.Context, username string, page client.Page) (json.RawMessage, error) {
			if username != "alice" {
				t.Errorf("Expected alice, got %s", username)
			}
			return json.RawMessage(`{}`), nil
		},
	}
	mockParser := &mocks.MockParser{
		ParseSavedFunc: func(ctx context.Context, data json.RawMessage) (models.SavedItems, error) {
			return models.SavedItems{
				Posts: []models.Post{{Name: "t3_a"}, {Name: "t3_b"}},
				Comments: []models.SavedComment{
					{Comment: models.Comment{ID: "c", Name: "t1_c", CreatedAt: time.Unix(0, 0)}},
				},
				After: "t1_c",
			}, nil
		},
	}
	svc := service.NewBrowseService(mockClient, mockParser, 25)

	items, err := svc.UserSaved(context.Background(), "alice", 0)
	if err != nil {
		t.Fatalf("Failed to fetch saved items: %v", err)
	}
	if len(items.Posts) != 2 || len(items.Comments) != 1 {
		t.Errorf("Expected 2 posts and 1 comment, got %d and %d", len(items.Posts), len(items.Comments))
	}
	if items.After != "t1_c" {
		t.Errorf("Expected cursor t1_c, got %q", items.After)
	}
}

func TestResolveDelegates(t *testing.T) {
	svc := service.NewBrowseService(&mocks.MockRedditClient{}, &mocks.MockParser{}, 25)

	if got := svc.Resolve(endpoint.Comments{Name: "golang", ID: "abc"}); got != "r/golang/comments/abc" {
		t.Errorf("Expected r/golang/comments/abc, got %s", got)
	}
}
