// Package pipeline orchestrates one resolution request: parse the
// reference, check the client's rate budget, consult the resolution cache,
// resolve on miss, and classify the result against the requested kind.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/mediavault/instafetch/internal/cache"
	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/logger"
	"github.com/mediavault/instafetch/internal/parser"
	"github.com/mediavault/instafetch/internal/ratelimit"
	"github.com/mediavault/instafetch/internal/retry"
	"github.com/mediavault/instafetch/internal/telemetry"
	"golang.org/x/sync/singleflight"
)

// Resolver performs one upstream metadata fetch per call.
type Resolver interface {
	Resolve(ctx context.Context, shortcode string) (*domain.ResolvedContent, error)
}

// Options configures a Pipeline.
type Options struct {
	Cache    cache.Store
	Limiter  *ratelimit.Limiter
	Resolver Resolver
	// CacheTTL is how long resolver results stay visible to lookups.
	CacheTTL time.Duration
	// RetryAttempts bounds retries of transient upstream failures.
	RetryAttempts int
	// RetryDelay is the initial backoff delay between retries.
	RetryDelay time.Duration
	Metrics    *telemetry.Metrics
	Logger     logger.Logger
}

// Pipeline wires the resolve pipeline components into one request flow.
type Pipeline struct {
	cache    cache.Store
	limiter  *ratelimit.Limiter
	resolver Resolver
	ttl      time.Duration
	retryCfg retry.Config
	metrics  *telemetry.Metrics
	logger   logger.Logger
	group    singleflight.Group
}

// New creates a Pipeline. Cache, Limiter, and Resolver are required.
func New(opts Options) *Pipeline {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	return &Pipeline{
		cache:    opts.Cache,
		limiter:  opts.Limiter,
		resolver: opts.Resolver,
		ttl:      ttl,
		retryCfg: retry.Config{
			MaxAttempts:  opts.RetryAttempts,
			InitialDelay: opts.RetryDelay,
			IsRetryable:  domain.IsTransient,
		},
		metrics: opts.Metrics,
		logger:  log,
	}
}

// Process runs one resolution request and returns the media items matching
// the requested kind. All terminal failures are typed domain errors; the
// HTTP layer maps them to user-facing responses.
func (p *Pipeline) Process(ctx context.Context, clientID, rawURL string, requested domain.Kind) ([]domain.MediaItem, error) {
	ref, err := parser.Parse(rawURL)
	if err != nil {
		p.metrics.ObserveOutcome("invalid_link")
		return nil, err
	}

	if !p.limiter.Allow(clientID) {
		p.metrics.ObserveRateLimited()
		p.metrics.ObserveOutcome("rate_limited")
		p.logger.Warn("Resolution rate limit exceeded",
			logger.String("client", clientID),
			logger.String("shortcode", ref.Shortcode),
		)
		return nil, domain.ErrRateLimited
	}

	content, hit := p.cache.Get(ctx, ref.Shortcode)
	p.metrics.ObserveCache(hit)
	if !hit {
		content, err = p.resolveShared(ctx, ref.Shortcode)
		if err != nil {
			p.metrics.ObserveOutcome(outcomeOf(err))
			return nil, err
		}
	}

	items, err := classify(ref, content, requested)
	if err != nil {
		p.metrics.ObserveOutcome(outcomeOf(err))
		return nil, err
	}

	p.metrics.ObserveOutcome("success")
	return items, nil
}

// resolveShared resolves one shortcode with bounded retry, de-duplicating
// concurrent misses for the same key so a stampede costs one upstream call.
func (p *Pipeline) resolveShared(ctx context.Context, shortcode string) (*domain.ResolvedContent, error) {
	start := time.Now()
	v, err, _ := p.group.Do(shortcode, func() (any, error) {
		var content *domain.ResolvedContent
		retryErr := retry.Do(ctx, p.retryCfg, func() error {
			var resolveErr error
			content, resolveErr = p.resolver.Resolve(ctx, shortcode)
			return resolveErr
		})

		if errors.Is(retryErr, domain.ErrPrivate) {
			// Privacy verdicts are cached like media lists, so repeat
			// requests for a private post do not hammer the upstream.
			p.cache.Put(ctx, shortcode, &domain.ResolvedContent{
				Shortcode: shortcode,
				IsPrivate: true,
				CreatedAt: time.Now().UTC(),
			}, p.ttl)
			return nil, retryErr
		}
		if retryErr != nil {
			return nil, retryErr
		}

		p.cache.Put(ctx, shortcode, content, p.ttl)
		return content, nil
	})
	p.metrics.ObserveResolveDuration(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	return v.(*domain.ResolvedContent), nil
}

// classify selects the bucket matching the requested kind. A reels request
// is a mismatch only when neither the URL path kind nor the upstream
// short-form marker agrees; the path claim covers posts where the marker is
// absent despite genuinely short-form content.
func classify(ref domain.ContentReference, content *domain.ResolvedContent, requested domain.Kind) ([]domain.MediaItem, error) {
	if content.IsPrivate {
		return nil, domain.ErrPrivate
	}

	if requested == domain.KindReels && ref.ClaimedKind != domain.KindReels && !content.IsReel {
		return nil, &domain.MismatchError{Requested: requested, ReelSpecific: true}
	}

	items := content.Photos
	if requested.WantsVideo() {
		items = content.Videos
	}
	if len(items) == 0 {
		return nil, &domain.MismatchError{Requested: requested}
	}
	return items, nil
}

// outcomeOf maps a pipeline error onto a metrics outcome label.
func outcomeOf(err error) string {
	var mismatch *domain.MismatchError
	switch {
	case errors.Is(err, domain.ErrPrivate):
		return "private"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.As(err, &mismatch):
		return "mismatch"
	case domain.IsTransient(err):
		return "upstream_error"
	default:
		return "internal_error"
	}
}
