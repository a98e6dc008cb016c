// Package resolver turns a content shortcode into a classified set of
// downloadable media items via a single upstream metadata fetch per call.
// Callers are responsible for not calling it redundantly; the cache layer in
// front of it owns that concern.
package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/mediavault/instafetch/internal/domain"
)

// Resolver resolves shortcodes into normalized media descriptors.
type Resolver struct {
	client *client
	now    func() time.Time
}

// New creates a Resolver with the given upstream options.
func New(opts Options) *Resolver {
	return &Resolver{
		client: newClient(opts),
		now:    time.Now,
	}
}

// Resolve fetches and classifies one piece of content.
//
// Returns domain.ErrPrivate when the owning account is non-public; privacy
// short-circuits all media extraction. Returns domain.ErrNotFound when the
// upstream has no such content, and a transient domain.UpstreamError for
// failures worth retrying.
func (r *Resolver) Resolve(ctx context.Context, shortcode string) (*domain.ResolvedContent, error) {
	media, err := r.client.fetchMedia(ctx, shortcode)
	if err != nil {
		return nil, err
	}

	if media.Owner.IsPrivate {
		return nil, domain.ErrPrivate
	}

	content := &domain.ResolvedContent{
		Shortcode: shortcode,
		IsReel:    media.ProductType == productTypeClips,
		CreatedAt: r.now().UTC(),
	}

	if media.Typename == typenameSidecar {
		// A carousel may mix photos and videos; each sub-item is classified
		// independently by its own flag.
		for idx, edge := range media.Sidecar.Edges {
			node := edge.Node
			sourceURL := node.DisplayURL
			if node.IsVideo {
				sourceURL = node.VideoURL
			}
			appendItem(content, node.IsVideo, sourceURL, fmt.Sprintf("%s_%d", shortcode, idx+1))
		}
	} else {
		sourceURL := media.DisplayURL
		if media.IsVideo {
			sourceURL = media.VideoURL
		}
		appendItem(content, media.IsVideo, sourceURL, shortcode)
	}

	return content, nil
}

// appendItem classifies one media asset into the matching bucket. Assets
// without a source URL are skipped.
func appendItem(content *domain.ResolvedContent, isVideo bool, sourceURL, baseName string) {
	if sourceURL == "" {
		return
	}

	if isVideo {
		content.Videos = append(content.Videos, domain.MediaItem{
			Kind:      domain.KindVideo,
			SourceURL: sourceURL,
			Filename:  domain.SafeFilename(baseName + ".mp4"),
		})
		return
	}

	content.Photos = append(content.Photos, domain.MediaItem{
		Kind:      domain.KindPhoto,
		SourceURL: sourceURL,
		Filename:  domain.SafeFilename(baseName + ".jpg"),
	})
}
