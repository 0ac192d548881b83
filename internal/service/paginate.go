package service

import (
	"context"
	"time"

	"reddit-browser/internal/client"
)

const (
	maxPageSize    = 100 // Reddit caps listings at 100 per request
	maxPages       = 20
	maxPagesAll    = 1000
	pageTimeout    = 30 * time.Second
	pageTimeoutAll = 3 * time.Minute
)

// paginate walks an after-cursor listing.
//
// limit 0 fetches one page of defaultLimit items, a positive limit keeps
// fetching until that many items are collected and -1 drains the listing.
// The returned cursor continues right after the last returned item.
func paginate[T any](
	ctx context.Context,
	limit, defaultLimit int,
	after string,
	fetch func(page client.Page) ([]T, string, error),
	name func(T) string,
) ([]T, string, error) {
	if limit < -1 {
		return nil, "", ErrInvalidLimit
	}

	if limit == 0 {
		items, next, err := fetch(client.Page{Limit: defaultLimit, After: after})
		if err != nil {
			return nil, "", err
		}
		return items, next, nil
	}

	apiLimit := maxPageSize
	if limit > 0 && limit < apiLimit {
		apiLimit = limit
	}

	pages, timeout := maxPages, pageTimeout
	if limit == -1 {
		pages, timeout = maxPagesAll, pageTimeoutAll
	}

	startTime := time.Now()
	var items []T
	pageCount := 0

	for pageCount < pages {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		pageCount++

		pageItems, next, err := fetch(client.Page{Limit: apiLimit, After: after})
		if err != nil {
			return nil, "", err
		}
		items = append(items, pageItems...)
		after = next

		logger.Debug().
			Int("page", pageCount).
			Int("items", len(pageItems)).
			Int("total", len(items)).
			Int("limit", limit).
			Msg("page fetched")

		if limit > 0 && len(items) >= limit {
			break
		}
		if next == "" || len(pageItems) == 0 {
			break
		}
		if time.Since(startTime) > timeout {
			logger.Warn().Dur("timeout", timeout).Int("total", len(items)).Msg("pagination time limit reached, returning results so far")
			break
		}
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
		after = name(items[limit-1])
	}

	return items, after, nil
}
