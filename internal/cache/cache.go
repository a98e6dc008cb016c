// Package cache provides the resolution cache: resolver results keyed by
// shortcode with a fixed time-to-live. Implementations are safe for
// concurrent use. The cache never calls the resolver itself; the pipeline
// uses it as a read-through layer.
package cache

import (
	"context"
	"time"

	"github.com/mediavault/instafetch/internal/domain"
)

// Store is the resolution cache contract. Get treats expired entries as
// absent; Put unconditionally replaces any existing entry for the key.
type Store interface {
	Get(ctx context.Context, shortcode string) (*domain.ResolvedContent, bool)
	Put(ctx context.Context, shortcode string, content *domain.ResolvedContent, ttl time.Duration)
	Close() error
}
