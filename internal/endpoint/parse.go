package endpoint

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownKind     = errors.New("unknown operation kind")
	ErrMissingArgument = errors.New("missing argument")
)

var (
	_ Operation = SubredditListing{}
	_ Operation = SubredditAbout{}
	_ Operation = SearchSubreddit{}
	_ Operation = Comments{}
	_ Operation = AccessToken{}
	_ Operation = Me{}
	_ Operation = MineSubscriptions{}
	_ Operation = Vote{}
	_ Operation = Visits{}
	_ Operation = Save{}
	_ Operation = Unsave{}
	_ Operation = UserSaved{}
)

// builders constructs each variant from named string arguments.
var builders = map[Kind]func(args map[string]string) (Operation, error){
	KindSubredditListing: func(args map[string]string) (Operation, error) {
		name, err := required(args, "name")
		if err != nil {
			return nil, err
		}
		return SubredditListing{Name: name, Sort: args["sort"]}, nil
	},
	KindSubredditAbout: func(args map[string]string) (Operation, error) {
		name, err := required(args, "name")
		if err != nil {
			return nil, err
		}
		return SubredditAbout{Name: name}, nil
	},
	KindSearchSubreddit: func(map[string]string) (Operation, error) { return SearchSubreddit{}, nil },
	KindComments: func(args map[string]string) (Operation, error) {
		name, err := required(args, "name")
		if err != nil {
			return nil, err
		}
		id, err := required(args, "id")
		if err != nil {
			return nil, err
		}
		return Comments{Name: name, ID: id}, nil
	},
	KindAccessToken:       func(map[string]string) (Operation, error) { return AccessToken{}, nil },
	KindMe:                func(map[string]string) (Operation, error) { return Me{}, nil },
	KindMineSubscriptions: func(map[string]string) (Operation, error) { return MineSubscriptions{}, nil },
	KindVote:              func(map[string]string) (Operation, error) { return Vote{}, nil },
	KindVisits:            func(map[string]string) (Operation, error) { return Visits{}, nil },
	KindSave:              func(map[string]string) (Operation, error) { return Save{}, nil },
	KindUnsave:            func(map[string]string) (Operation, error) { return Unsave{}, nil },
	KindUserSaved: func(args map[string]string) (Operation, error) {
		username, err := required(args, "username")
		if err != nil {
			return nil, err
		}
		return UserSaved{Username: username}, nil
	},
}

// Parse builds an Operation from a kind name and its named arguments
// ("name", "sort", "id", "username"). Unused arguments are ignored.
func Parse(kind string, args map[string]string) (Operation, error) {
	build, ok := builders[Kind(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	op, err := build(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return op, nil
}

// Kinds lists every operation kind in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func required(args map[string]string, key string) (string, error) {
	v := args[key]
	if v == "" {
		return "", fmt.Errorf("%w %q", ErrMissingArgument, key)
	}
	return v, nil
}
