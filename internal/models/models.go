package models

import (
	"encoding/json"
	"time"
)

// Post represents a Reddit link (t3)
// swagger:model Post
type Post struct {
	// Post ID without the t3_ prefix
	ID string `json:"id"`
	// Fullname, e.g. t3_abc123; used by vote, save and visits
	Name string `json:"name"`
	// Post title
	Title string `json:"title"`
	// Self text, empty for link posts
	Body string `json:"body,omitempty"`
	// Author's username
	Author string `json:"author"`
	// Subreddit name without the r/ prefix
	Subreddit string `json:"subreddit"`
	// Score (upvotes minus downvotes)
	Score int `json:"score"`
	// Number of comments
	NumComments int `json:"num_comments"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// Post flair text
	Flair string `json:"flair,omitempty"`
	// Linked URL for link posts, the permalink for self posts
	URL string `json:"url,omitempty"`
	// Full URL of the comments page
	Permalink string `json:"permalink"`
	// Thumbnail URL, if any
	Thumbnail string `json:"thumbnail,omitempty"`
	// NSFW flag
	Over18 bool `json:"over_18"`
	// Current user's vote: true up, false down, null none
	Likes *bool `json:"likes"`
	// Saved by the current user
	Saved bool `json:"saved"`
	// Visited by the current user
	Visited bool `json:"visited"`
}

// Comment represents a Reddit comment (t1)
// swagger:model Comment
type Comment struct {
	// Comment ID
	ID string `json:"id"`
	// Fullname, e.g. t1_xyz
	Name string `json:"name,omitempty"`
	// Comment author's username
	Author string `json:"author,omitempty"`
	// Comment body text
	Body string `json:"body,omitempty"`
	// Comment score
	Score int `json:"score"`
	// Comment creation timestamp
	CreatedAt time.Time `json:"created_at"`
	// Current user's vote
	Likes *bool `json:"likes,omitempty"`
	// Saved by the current user
	Saved bool `json:"saved,omitempty"`
	// Nested comment replies
	Replies []Comment `json:"replies,omitempty"`
	// Flag indicating if this is a "more comments" placeholder
	IsMore bool `json:"is_more,omitempty"`
	// IDs of additional comments that need to be loaded
	MoreIDs []string `json:"more_ids,omitempty"`
	// Flag indicating a "continue this thread" link
	HasMore bool `json:"has_more,omitempty"`
	// Count of remaining comments in a "more" object
	MoreCount int `json:"more_count,omitempty"`
}

// PostDetail represents a Reddit post with its comments
// swagger:model PostDetail
type PostDetail struct {
	// Post information
	Post Post `json:"post"`
	// Comments on the post
	Comments []Comment `json:"comments"`
}

// Subreddit represents subreddit metadata (t5)
// swagger:model Subreddit
type Subreddit struct {
	// Fullname, e.g. t5_2qh1i
	Name string `json:"name,omitempty"`
	// Display name without the r/ prefix
	DisplayName string `json:"display_name"`
	// Title shown in the header
	Title string `json:"title,omitempty"`
	// Short description
	PublicDescription string `json:"public_description,omitempty"`
	// Subscriber count
	Subscribers int `json:"subscribers"`
	// Users online, when reported
	ActiveUsers int `json:"active_users,omitempty"`
	// Icon URL
	IconURL string `json:"icon_url,omitempty"`
	// NSFW flag
	Over18 bool `json:"over_18"`
	// Current user is subscribed
	Subscribed bool `json:"subscribed"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Account represents the authenticated user
// swagger:model Account
type Account struct {
	// Account ID
	ID string `json:"id"`
	// Username
	Username string `json:"username"`
	// Link karma score
	LinkKarma int `json:"link_karma"`
	// Comment karma score
	CommentKarma int `json:"comment_karma"`
	// Unread inbox count
	InboxCount int `json:"inbox_count"`
	// Has Reddit premium
	IsGold bool `json:"is_gold"`
	// Avatar URL
	IconURL string `json:"icon_url,omitempty"`
	// Account creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// SavedComment is a comment found in a user's saved listing
// swagger:model SavedComment
type SavedComment struct {
	Comment
	// Subreddit of the parent post
	Subreddit string `json:"subreddit"`
	// Fullname of the parent post
	LinkID string `json:"link_id"`
	// Title of the parent post
	LinkTitle string `json:"link_title"`
	// Full URL to the comment
	Permalink string `json:"permalink"`
}

// SavedItems is everything a user has saved
// swagger:model SavedItems
type SavedItems struct {
	// Saved posts
	Posts []Post `json:"posts"`
	// Saved comments
	Comments []SavedComment `json:"comments"`
	// Pagination cursor for the next page, empty when exhausted
	After string `json:"after,omitempty"`
}

// ListingPage is one or more pages of a listing
// swagger:model ListingPage
type ListingPage struct {
	// Posts in listing order
	Posts []Post `json:"posts"`
	// Pagination cursor for the next page, empty when exhausted
	After string `json:"after,omitempty"`
}

// RawChild is an internal structure used for parsing Reddit API responses
type RawChild struct {
	Kind string `json:"kind"`
	Data struct {
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		Author     string          `json:"author"`
		Body       string          `json:"body"`
		Score      int             `json:"score"`
		CreatedUTC float64         `json:"created_utc"`
		Likes      *bool           `json:"likes"`
		Saved      bool            `json:"saved"`
		Replies    json.RawMessage `json:"replies"`
		Children   []string        `json:"children"`
		ParentID   string          `json:"parent_id"`
		Count      int             `json:"count"`
		Permalink  string          `json:"permalink"`
	} `json:"data"`
}
