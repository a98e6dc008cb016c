package resolver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"context"

	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/logger"
	"golang.org/x/time/rate"
)

// Options configures the upstream metadata client.
type Options struct {
	// HTTPClient performs the metadata fetches. It should carry the upstream
	// call timeout.
	HTTPClient *http.Client
	// BaseURL is the upstream origin, overridable for tests.
	BaseURL string
	// UserAgent is sent on every metadata request.
	UserAgent string
	// MaxConcurrent bounds in-flight upstream fetches so slow responses
	// cannot exhaust server capacity.
	MaxConcurrent int
	// RequestsPerSecond throttles calls against the upstream provider.
	RequestsPerSecond int
	// Logger is used for fetch diagnostics.
	Logger logger.Logger
}

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	sem        chan struct{}
	throttle   *rate.Limiter
	logger     logger.Logger
}

func newClient(opts Options) *client {
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 16
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return &client{
		httpClient: opts.HTTPClient,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		sem:        make(chan struct{}, maxConcurrent),
		throttle:   rate.NewLimiter(rate.Limit(rps), rps),
		logger:     log,
	}
}

// fetchMedia performs exactly one upstream metadata fetch for the shortcode.
func (c *client) fetchMedia(ctx context.Context, shortcode string) (*shortcodeMedia, error) {
	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, &domain.UpstreamError{Op: "metadata fetch", Err: ctx.Err()}
	}

	if err := c.throttle.Wait(ctx); err != nil {
		return nil, &domain.UpstreamError{Op: "metadata fetch", Err: err}
	}

	reqURL := fmt.Sprintf("%s/p/%s/?__a=1&__d=dis", c.baseURL, shortcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build metadata request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Op: "metadata fetch", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		// Login walls show up as 401/403 and only affect restricted content.
		return nil, domain.ErrPrivate
	case resp.StatusCode != http.StatusOK:
		return nil, &domain.UpstreamError{
			Op:  "metadata fetch",
			Err: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var doc mediaDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &domain.UpstreamError{Op: "metadata decode", Err: err}
	}
	if doc.Graphql.ShortcodeMedia == nil {
		return nil, domain.ErrNotFound
	}

	c.logger.Debug("Metadata fetched",
		logger.String("shortcode", shortcode),
		logger.String("typename", doc.Graphql.ShortcodeMedia.Typename),
	)

	return doc.Graphql.ShortcodeMedia, nil
}
