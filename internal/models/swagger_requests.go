package models

// VoteRequest is the body of the vote endpoint
// swagger:model VoteRequest
type VoteRequest struct {
	// Fullname of the post or comment
	ID string `json:"id" validate:"required"`
	// 1 upvotes, -1 downvotes, 0 clears the vote
	Dir *int `json:"dir" validate:"required,min=-1,max=1"`
}

// VisitsRequest is the body of the visits endpoint
// swagger:model VisitsRequest
type VisitsRequest struct {
	// Post fullnames
	Links []string `json:"links" validate:"required,min=1,dive,required"`
}

// SaveRequest is the body of the save and unsave endpoints
// swagger:model SaveRequest
type SaveRequest struct {
	// Fullname of the post or comment
	ID string `json:"id" validate:"required"`
}
