// Package domain defines the core types shared across the resolve and
// streaming pipeline.
package domain

import (
	"regexp"
	"strings"
	"time"
)

// Kind is a media category as requested by the client or carried by an item.
type Kind string

const (
	// KindVideo is ordinary video content.
	KindVideo Kind = "video"
	// KindPhoto is still image content.
	KindPhoto Kind = "photo"
	// KindReels is short-form vertical video content.
	KindReels Kind = "reels"
)

// ParseKind normalizes a user-supplied media type string.
// Unknown values fall back to video, matching the public form behavior.
func ParseKind(value string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindPhoto:
		return KindPhoto
	case KindReels:
		return KindReels
	default:
		return KindVideo
	}
}

// WantsVideo reports whether the requested kind selects the video bucket.
func (k Kind) WantsVideo() bool {
	return k == KindVideo || k == KindReels
}

// ContentReference identifies one piece of upstream content, extracted from a
// user-supplied link. The claimed kind is implied by the URL path shape alone
// and may disagree with what the upstream metadata later reports.
type ContentReference struct {
	Shortcode   string
	ClaimedKind Kind
}

// MediaItem is one downloadable media asset belonging to a resolved post.
type MediaItem struct {
	Kind      Kind   `json:"kind"`
	SourceURL string `json:"source_url"`
	Filename  string `json:"filename"`
}

// ResolvedContent is the normalized result of one upstream metadata fetch.
// Once cached it is read-only to all consumers.
type ResolvedContent struct {
	Shortcode string      `json:"shortcode"`
	IsPrivate bool        `json:"is_private"`
	IsReel    bool        `json:"is_reel"`
	Videos    []MediaItem `json:"videos"`
	Photos    []MediaItem `json:"photos"`
	CreatedAt time.Time   `json:"created_at"`
}

// unsafeFilenameChars collapses every run of characters outside the safe set.
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// defaultFilename is used when sanitizing leaves nothing usable.
const defaultFilename = "instagram_media"

// SafeFilename sanitizes a filename for use in a Content-Disposition header
// or a suggested download name.
func SafeFilename(name string) string {
	cleaned := strings.Trim(unsafeFilenameChars.ReplaceAllString(name, "_"), "_")
	if cleaned == "" {
		return defaultFilename
	}
	return cleaned
}
