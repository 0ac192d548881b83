package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/mocks"
	"reddit-browser/internal/models"
	"reddit-browser/internal/service"
)

func run(t *testing.T, svc service.BrowseService, args ...string) (string, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Name("redditctl"))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&runContext{
		ctx: context.Background(),
		out: &out,
		service: func() (service.BrowseService, error) {
			return svc, nil
		},
	})
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"resolve", "subreddit_listing", "--name", "golang", "--sort", "top"}, "r/golang/top\n"},
		{[]string{"resolve", "subreddit_listing", "-n", "hot", "-s", "top"}, "hot\n"},
		{[]string{"resolve", "comments", "--name", "programming", "--id", "abc123"}, "r/programming/comments/abc123\n"},
		{[]string{"resolve", "user_saved", "-u", "alice"}, "user/alice/saved\n"},
		{[]string{"resolve", "access_token"}, "api/v1/access_token\n"},
	}
	for _, tt := range tests {
		out, err := run(t, nil, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestResolveCommandErrors(t *testing.T) {
	_, err := run(t, nil, "resolve", "teleport")
	assert.ErrorIs(t, err, endpoint.ErrUnknownKind)

	_, err = run(t, nil, "resolve", "comments", "--name", "golang")
	assert.ErrorIs(t, err, endpoint.ErrMissingArgument)
}

func TestKindsCommand(t *testing.T) {
	out, err := run(t, nil, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "subreddit_listing\n")
	assert.Contains(t, out, "user_saved\n")
}

func TestListingCommand(t *testing.T) {
	var got service.ListingRequest
	svc := &mocks.MockBrowseService{
		ListingFunc: func(ctx context.Context, req service.ListingRequest) (models.ListingPage, error) {
			got = req
			return models.ListingPage{Posts: []models.Post{{ID: "abc", Title: "Hello"}}, After: "t3_abc"}, nil
		},
	}

	out, err := run(t, svc, "listing", "golang", "--sort", "new", "--limit=-1")
	require.NoError(t, err)
	assert.Equal(t, service.ListingRequest{Name: "golang", Sort: "new", Limit: -1}, got)

	var page models.ListingPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "t3_abc", page.After)
	assert.Len(t, page.Posts, 1)
}

func TestSubscriptionsCommand(t *testing.T) {
	svc := &mocks.MockBrowseService{
		SubscriptionsFunc: func(ctx context.Context) ([]models.Subreddit, error) {
			return []models.Subreddit{{DisplayName: "golang"}}, nil
		},
	}
	out, err := run(t, svc, "subscriptions")
	require.NoError(t, err)
	assert.Contains(t, out, `"display_name": "golang"`)
}
