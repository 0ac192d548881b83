package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"reddit-browser/internal/client"
	"reddit-browser/internal/config"
	"reddit-browser/internal/endpoint"
	"reddit-browser/internal/parser"
	"reddit-browser/internal/service"
)

type CLI struct {
	Resolve       ResolveCmd       `cmd:"" help:"Print the REST path of an operation without calling Reddit."`
	Kinds         KindsCmd         `cmd:"" help:"List operation kinds."`
	Listing       ListingCmd       `cmd:"" help:"Fetch a subreddit or front-page listing."`
	Comments      CommentsCmd      `cmd:"" help:"Fetch a post and its comments."`
	Me            MeCmd            `cmd:"" help:"Show the logged-in account."`
	Subscriptions SubscriptionsCmd `cmd:"" help:"List subscribed subreddits."`
}

// runContext is bound into every command's Run.
type runContext struct {
	ctx     context.Context
	out     io.Writer
	service func() (service.BrowseService, error)
}

func (rc *runContext) printJSON(v any) error {
	enc := json.NewEncoder(rc.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type ResolveCmd struct {
	Kind     string `arg:"" help:"Operation kind, see 'redditctl kinds'."`
	Name     string `help:"Subreddit name." short:"n"`
	Sort     string `help:"Listing sort." short:"s"`
	ID       string `help:"Post ID." name:"id"`
	Username string `help:"Username." short:"u"`
}

func (c *ResolveCmd) Run(rc *runContext) error {
	op, err := endpoint.Parse(c.Kind, map[string]string{
		"name":     c.Name,
		"sort":     c.Sort,
		"id":       c.ID,
		"username": c.Username,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rc.out, endpoint.Resolve(op))
	return err
}

type KindsCmd struct{}

func (c *KindsCmd) Run(rc *runContext) error {
	for _, k := range endpoint.Kinds() {
		if _, err := fmt.Fprintln(rc.out, k); err != nil {
			return err
		}
	}
	return nil
}

type ListingCmd struct {
	Name  string `arg:"" help:"Subreddit name, or one of top, best, new, rising, hot."`
	Sort  string `help:"Sort order." short:"s"`
	T     string `help:"Time window for top and controversial." name:"t"`
	After string `help:"Pagination cursor."`
	Limit int    `help:"0 for one page, N for N posts, -1 for everything." short:"l"`
}

func (c *ListingCmd) Run(rc *runContext) error {
	svc, err := rc.service()
	if err != nil {
		return err
	}
	page, err := svc.Listing(rc.ctx, service.ListingRequest{
		Name:  c.Name,
		Sort:  c.Sort,
		T:     c.T,
		After: c.After,
		Limit: c.Limit,
	})
	if err != nil {
		return err
	}
	return rc.printJSON(page)
}

type CommentsCmd struct {
	Subreddit string `arg:"" help:"Subreddit name."`
	ID        string `arg:"" help:"Post ID."`
	Sort      string `help:"Comment sort." short:"s"`
}

func (c *CommentsCmd) Run(rc *runContext) error {
	svc, err := rc.service()
	if err != nil {
		return err
	}
	detail, err := svc.Post(rc.ctx, c.Subreddit, c.ID, c.Sort)
	if err != nil {
		return err
	}
	return rc.printJSON(detail)
}

type MeCmd struct{}

func (c *MeCmd) Run(rc *runContext) error {
	svc, err := rc.service()
	if err != nil {
		return err
	}
	me, err := svc.Me(rc.ctx)
	if err != nil {
		return err
	}
	return rc.printJSON(me)
}

type SubscriptionsCmd struct{}

func (c *SubscriptionsCmd) Run(rc *runContext) error {
	svc, err := rc.service()
	if err != nil {
		return err
	}
	subs, err := svc.Subscriptions(rc.ctx)
	if err != nil {
		return err
	}
	return rc.printJSON(subs)
}

// newService builds the service from the environment. Only commands that
// talk to Reddit call it, so resolve works without credentials.
func newService(ctx context.Context) (service.BrowseService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	c, err := client.NewRedditClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return service.NewBrowseService(c, parser.NewRedditParser(cfg.WebBaseURL), cfg.DefaultListingLimit), nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("redditctl"),
		kong.Description("Command line client for the Reddit API."),
		kong.UsageOnError(),
	)

	bg := context.Background()
	err := ctx.Run(&runContext{
		ctx:     bg,
		out:     os.Stdout,
		service: func() (service.BrowseService, error) { return newService(bg) },
	})
	ctx.FatalIfErrorf(err)
}
