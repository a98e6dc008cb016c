// Package parser extracts a content reference from free-form user input.
package parser

import (
	"regexp"
	"strings"

	"github.com/mediavault/instafetch/internal/domain"
)

// mediaURLRe recognizes post, reel, and tv links with optional scheme and
// www prefix. Group 1 is the path kind, group 2 the shortcode.
var mediaURLRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?instagram\.com/(p|reel|reels|tv)/([^/?#]+)/?`)

// Parse extracts the content shortcode and the kind claimed by the URL path
// from arbitrary untrusted text. It is a pure function: no I/O, no side
// effects. Returns domain.ErrInvalidLink when no recognizable reference is
// present.
func Parse(raw string) (domain.ContentReference, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return domain.ContentReference{}, domain.ErrInvalidLink
	}

	match := mediaURLRe.FindStringSubmatch(value)
	if match == nil {
		return domain.ContentReference{}, domain.ErrInvalidLink
	}

	return domain.ContentReference{
		Shortcode:   match[2],
		ClaimedKind: claimedKind(match[1]),
	}, nil
}

// claimedKind maps a URL path segment onto a canonical kind. The plural
// "reels" segment is an alias for "reel". A plain /p/ path claims photo;
// the claim only matters for the reel mismatch check downstream.
func claimedKind(pathKind string) domain.Kind {
	switch strings.ToLower(pathKind) {
	case "reel", "reels":
		return domain.KindReels
	case "tv":
		return domain.KindVideo
	default:
		return domain.KindPhoto
	}
}
