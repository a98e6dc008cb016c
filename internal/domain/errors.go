package domain

import (
	"errors"
	"fmt"
)

// Pipeline outcome errors. The HTTP layer is the only place these are mapped
// to user-facing responses; lower-level components return them untranslated.
var (
	// ErrInvalidLink means the supplied reference carries no recognizable
	// content identifier.
	ErrInvalidLink = errors.New("invalid media link")

	// ErrRateLimited means the client exceeded the resolution request budget.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPrivate means the owning account restricts access to the content.
	ErrPrivate = errors.New("content is private")

	// ErrNotFound means the upstream reports no content for the identifier.
	ErrNotFound = errors.New("content not found")

	// ErrRejectedURL means a media URL failed the upstream host allow-list.
	ErrRejectedURL = errors.New("url not allowed")
)

// MismatchError reports that content exists but not in the requested
// category. ReelSpecific distinguishes the reel marker check from an empty
// video/photo bucket, so the two cases can surface different messages.
type MismatchError struct {
	Requested    Kind
	ReelSpecific bool
}

func (e *MismatchError) Error() string {
	if e.ReelSpecific {
		return "content is not a reel"
	}
	return fmt.Sprintf("content has no %s items", e.Requested)
}

// UpstreamError wraps a transient upstream failure (rate limiting, network
// errors, 5xx responses). The orchestrator retries these a bounded number of
// times before surfacing them.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a retryable upstream failure.
func IsTransient(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
