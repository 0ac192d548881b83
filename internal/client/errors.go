package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"reddit-browser/internal/endpoint"
)

var (
	ErrUnauthorized        = errors.New("reddit: unauthorized")
	ErrForbidden           = errors.New("reddit: forbidden")
	ErrNotFound            = errors.New("reddit: not found")
	ErrRateLimited         = errors.New("reddit: rate limited")
	ErrUserContextRequired = errors.New("reddit: operation requires a logged-in user")
	ErrInvalidVote         = errors.New("reddit: vote direction must be -1, 0 or 1")
)

// APIError is a non-2xx response, or a 200 response whose body carries
// Reddit's {"json":{"errors":[...]}} envelope.
type APIError struct {
	Status  int
	Op      endpoint.Kind
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reddit %s: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("reddit %s: HTTP %d: %s", e.Op, e.Status, e.Message)
}

// Is lets callers match status classes with the sentinel errors.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrRateLimited:
		return e.Status == http.StatusTooManyRequests
	}
	return false
}

func newAPIError(op endpoint.Kind, status int, body []byte) *APIError {
	return &APIError{Status: status, Op: op, Message: errorMessage(body)}
}

// errorMessage digs the human readable part out of the shapes Reddit uses:
// {"message": ..., "error": 404}, {"error": "invalid_grant"} and
// {"json": {"errors": [["CODE", "message", "field"]]}}.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	res := gjson.ParseBytes(body)
	if m := res.Get("json.errors.0.1"); m.Exists() {
		return m.String()
	}
	if m := res.Get("message"); m.Type == gjson.String {
		return m.String()
	}
	if m := res.Get("error"); m.Type == gjson.String {
		return m.String()
	}
	return ""
}

// envelopeErrors reports whether a 2xx POST body lists errors.
func envelopeErrors(body []byte) bool {
	return gjson.GetBytes(body, "json.errors.#").Int() > 0
}
