package models

// ResolveResponse is the result of the resolve endpoint
// swagger:model ResolveResponse
type ResolveResponse struct {
	// Operation kind
	Kind string `json:"kind"`
	// Relative REST path
	Path string `json:"path"`
}

// SaveResponse reports the saved state after a save or unsave
// swagger:model SaveResponse
type SaveResponse struct {
	// Fullname of the thing
	ID string `json:"id"`
	// Saved state after the call
	Saved bool `json:"saved"`
}

// StatusResponse acknowledges a write
// swagger:model StatusResponse
type StatusResponse struct {
	// Always "ok"
	Status string `json:"status"`
}
