package endpoint

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var frontPageNames = []string{"top", "best", "new", "rising", "hot"}

func TestResolveFrontPageWithoutSort(t *testing.T) {
	for _, name := range frontPageNames {
		assert.Equal(t, name, Resolve(SubredditListing{Name: name}))
	}
}

func TestResolveFrontPageIgnoresSort(t *testing.T) {
	for _, name := range frontPageNames {
		for _, sort := range []string{"week", "top", "new", "controversial"} {
			assert.Equal(t, name, Resolve(SubredditListing{Name: name, Sort: sort}), "name=%s sort=%s", name, sort)
		}
	}
}

func TestResolveFrontPageIsCaseSensitive(t *testing.T) {
	assert.Equal(t, "r/Hot", Resolve(SubredditListing{Name: "Hot"}))
	assert.Equal(t, "r/TOP/new", Resolve(SubredditListing{Name: "TOP", Sort: "new"}))
}

func TestResolveSubredditListing(t *testing.T) {
	assert.Equal(t, "r/programming", Resolve(SubredditListing{Name: "programming"}))
	assert.Equal(t, "r/programming/top", Resolve(SubredditListing{Name: "programming", Sort: "top"}))
}

func TestResolveParameterized(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{Comments{Name: "programming", ID: "abc123"}, "r/programming/comments/abc123"},
		{UserSaved{Username: "alice"}, "user/alice/saved"},
		{SubredditAbout{Name: "pics"}, "r/pics/about"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.op))
	}
}

func TestResolveFixedPaths(t *testing.T) {
	tests := map[Operation]string{
		SearchSubreddit{}:   "api/search_subreddits",
		AccessToken{}:       "api/v1/access_token",
		Me{}:                "api/v1/me",
		MineSubscriptions{}: "subreddits/mine/subscriber",
		Vote{}:              "api/vote",
		Visits{}:            "api/store_visits",
		Save{}:              "api/save",
		Unsave{}:            "api/unsave",
	}
	for op, want := range tests {
		got := Resolve(op)
		assert.Equal(t, want, got)
		assert.False(t, strings.HasPrefix(got, "/") || strings.HasSuffix(got, "/"), got)
	}
}

func TestResolveDoesNotEscape(t *testing.T) {
	assert.Equal(t, "r/a%20b/comments/x/y", Resolve(Comments{Name: "a%20b", ID: "x/y"}))
}

func TestResolveNil(t *testing.T) {
	assert.Equal(t, "", Resolve(nil))
}

func TestResolveDeterministic(t *testing.T) {
	a := Comments{Name: "golang", ID: "q1"}
	b := Comments{Name: "golang", ID: "q1"}
	assert.Equal(t, Resolve(a), Resolve(b))
	assert.Equal(t, Resolve(a), Resolve(a))
}

func TestResolveConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Resolve(SubredditListing{Name: "golang", Sort: "new"}); got != "r/golang/new" {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKindsCoverEveryVariant(t *testing.T) {
	ops := []Operation{
		SubredditListing{}, SubredditAbout{}, SearchSubreddit{}, Comments{},
		AccessToken{}, Me{}, MineSubscriptions{}, Vote{}, Visits{}, Save{},
		Unsave{}, UserSaved{},
	}
	kinds := Kinds()
	assert.Len(t, kinds, len(ops))
	for _, op := range ops {
		assert.Contains(t, kinds, op.Kind())
		assert.NotPanics(t, func() { Resolve(op) })
	}
}
