// Package endpoint maps every Reddit API call the browser makes to its REST path.
//
// Paths are relative: no leading slash, no host and no query string. Callers
// join them onto a base URL and attach query parameters and auth headers.
// Identifiers are used verbatim; nothing is validated or escaped here.
package endpoint

import "fmt"

// Operation is one of the API call shapes below. The set is closed: the
// unexported path method means only this package can add variants, and a
// variant without a path rule does not satisfy the interface.
type Operation interface {
	Kind() Kind
	path() string
}

// Kind is the stable snake_case name of an Operation variant.
type Kind string

const (
	KindSubredditListing  Kind = "subreddit_listing"
	KindSubredditAbout    Kind = "subreddit_about"
	KindSearchSubreddit   Kind = "search_subreddit"
	KindComments          Kind = "comments"
	KindAccessToken       Kind = "access_token"
	KindMe                Kind = "me"
	KindMineSubscriptions Kind = "mine_subscriptions"
	KindVote              Kind = "vote"
	KindVisits            Kind = "visits"
	KindSave              Kind = "save"
	KindUnsave            Kind = "unsave"
	KindUserSaved         Kind = "user_saved"
)

// frontPages are the aggregate feeds addressed without the r/ prefix.
var frontPages = map[string]struct{}{
	"top":    {},
	"best":   {},
	"new":    {},
	"rising": {},
	"hot":    {},
}

// IsFrontPage reports whether name is one of the pseudo-subreddit feeds.
// The match is exact and case-sensitive.
func IsFrontPage(name string) bool {
	_, ok := frontPages[name]
	return ok
}

// SubredditListing fetches the posts of a subreddit or front-page feed.
// An empty Sort means no sort segment.
type SubredditListing struct {
	Name string
	Sort string
}

func (SubredditListing) Kind() Kind { return KindSubredditListing }

// The front-page check runs first, so Sort is dropped for those feeds.
func (o SubredditListing) path() string {
	if IsFrontPage(o.Name) {
		return o.Name
	}
	if o.Sort != "" {
		return fmt.Sprintf("r/%s/%s", o.Name, o.Sort)
	}
	return "r/" + o.Name
}

type SubredditAbout struct {
	Name string
}

func (SubredditAbout) Kind() Kind { return KindSubredditAbout }

func (o SubredditAbout) path() string { return fmt.Sprintf("r/%s/about", o.Name) }

type SearchSubreddit struct{}

func (SearchSubreddit) Kind() Kind { return KindSearchSubreddit }

func (SearchSubreddit) path() string { return "api/search_subreddits" }

// Comments is the comment tree of post ID in subreddit Name.
type Comments struct {
	Name string
	ID   string
}

func (Comments) Kind() Kind { return KindComments }

func (o Comments) path() string { return fmt.Sprintf("r/%s/comments/%s", o.Name, o.ID) }

type AccessToken struct{}

func (AccessToken) Kind() Kind { return KindAccessToken }

func (AccessToken) path() string { return "api/v1/access_token" }

type Me struct{}

func (Me) Kind() Kind { return KindMe }

func (Me) path() string { return "api/v1/me" }

type MineSubscriptions struct{}

func (MineSubscriptions) Kind() Kind { return KindMineSubscriptions }

func (MineSubscriptions) path() string { return "subreddits/mine/subscriber" }

type Vote struct{}

func (Vote) Kind() Kind { return KindVote }

func (Vote) path() string { return "api/vote" }

type Visits struct{}

func (Visits) Kind() Kind { return KindVisits }

func (Visits) path() string { return "api/store_visits" }

type Save struct{}

func (Save) Kind() Kind { return KindSave }

func (Save) path() string { return "api/save" }

type Unsave struct{}

func (Unsave) Kind() Kind { return KindUnsave }

func (Unsave) path() string { return "api/unsave" }

type UserSaved struct {
	Username string
}

func (UserSaved) Kind() Kind { return KindUserSaved }

func (o UserSaved) path() string { return fmt.Sprintf("user/%s/saved", o.Username) }

// Resolve returns the REST path for op. It never fails; a nil op yields "".
func Resolve(op Operation) string {
	if op == nil {
		return ""
	}
	return op.path()
}
