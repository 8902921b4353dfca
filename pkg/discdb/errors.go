package discdb

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors. The typed errors below match them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInconsistentResult = errors.New("inconsistent result")
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrNoExternalIDs      = errors.New("at least one external id is required")
)

// HTTPError is returned when the server answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("discdb: %s", e.Status)
	}
	return fmt.Sprintf("discdb: %s: %s", e.Status, e.Body)
}

// IsNotFound reports whether the server answered 404.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError reports whether the server answered with a 5xx status.
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}

// NotFoundError is returned when a single-result lookup matched nothing.
type NotFoundError struct {
	Lookup string   // e.g. "disc hash", "release", "external ids"
	Keys   []string // the lookup keys that were used
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %s", e.Lookup, strings.Join(quoteAll(e.Keys), " / "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InconsistentResultError is returned when a media item matched a release
// query but none of its releases carries the requested slug.
type InconsistentResultError struct {
	MediaItemSlug string
	Slug          string
}

func (e *InconsistentResultError) Error() string {
	return fmt.Sprintf("media item %q matched but has no release with slug %q", e.MediaItemSlug, e.Slug)
}

func (e *InconsistentResultError) Is(target error) bool {
	return target == ErrInconsistentResult
}

// UnknownOperationError is returned when a GraphQL operation has no document.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown graphql operation %q", e.Operation)
}

func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}

func quoteAll(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%q", k)
	}
	return out
}
