// Package stream forwards media bytes from an approved upstream URL to the
// client, preserving HTTP range semantics so seeking players work
// end-to-end. Callers must validate URLs against the host allow-list before
// invoking the gateway.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/logger"
)

// ErrUpstreamStatus is returned when the upstream answers with a status
// other than 200 or 206.
var ErrUpstreamStatus = errors.New("unexpected upstream status")

// Disposition selects how the browser should handle the streamed bytes.
type Disposition int

const (
	// Inline lets the browser render the media for preview and scrubbing.
	Inline Disposition = iota
	// Attachment forces a download with a suggested filename.
	Attachment
)

// Request describes one streaming pass-through.
type Request struct {
	// URL is the upstream media URL, already validated by the guard.
	URL string
	// RangeHeader is the inbound Range header, forwarded verbatim when set.
	RangeHeader string
	// Disposition selects inline preview or attachment download.
	Disposition Disposition
	// Filename is the suggested attachment name; sanitized before use.
	Filename string
}

// forwardedHeaders are copied from the upstream response when present so
// range-seeking clients see the upstream's own framing.
var forwardedHeaders = []string{"Content-Range", "Accept-Ranges", "Content-Length"}

// Gateway streams upstream media responses to clients chunk by chunk.
type Gateway struct {
	client *http.Client
	logger logger.Logger
}

// New creates a Gateway using the given HTTP client. The client must not
// carry an overall timeout; large transfers are bounded by the request
// context instead.
func New(client *http.Client, log logger.Logger) *Gateway {
	if log == nil {
		log = logger.NewNop()
	}
	return &Gateway{client: client, logger: log}
}

// Stream fetches req.URL and forwards status, headers, and body to w,
// returning the number of body bytes written. The body is copied as it
// arrives, so slow client reads throttle the upstream fetch, and a client
// disconnect cancels it via ctx.
func (g *Gateway) Stream(ctx context.Context, w http.ResponseWriter, req Request) (int64, error) {
	outReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("build media request: %w", err)
	}
	if req.RangeHeader != "" {
		outReq.Header.Set("Range", req.RangeHeader)
	}

	resp, err := g.client.Do(outReq)
	if err != nil {
		return 0, &domain.UpstreamError{Op: "media fetch", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return 0, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	for _, name := range forwardedHeaders {
		if value := resp.Header.Get(name); value != "" {
			w.Header().Set(name, value)
		}
	}

	switch req.Disposition {
	case Attachment:
		filename := domain.SafeFilename(req.Filename)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	case Inline:
		w.Header().Set("Content-Disposition", "inline")
	}

	w.WriteHeader(resp.StatusCode)

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		// Headers are already on the wire; a broken copy usually means the
		// client went away. Log and move on.
		g.logger.Debug("Media stream interrupted",
			logger.Int64("bytes_written", written),
			logger.Error(err),
		)
	}

	return written, nil
}
