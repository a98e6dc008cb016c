// Package httpx provides shared HTTP client construction with sane
// transport defaults for upstream calls.
package httpx

import (
	"net/http"
	"time"
)

const (
	// DefaultMaxIdleConns is the default maximum number of idle connections.
	DefaultMaxIdleConns = 100

	// DefaultMaxIdleConnsPerHost is the default idle connection cap per host.
	DefaultMaxIdleConnsPerHost = 10

	// DefaultIdleConnTimeout is the default idle connection timeout.
	DefaultIdleConnTimeout = 90 * time.Second

	// DefaultTLSHandshakeTimeout is the default TLS handshake timeout.
	DefaultTLSHandshakeTimeout = 10 * time.Second
)

func newTransport(responseHeaderTimeout time.Duration) *http.Transport {
	return &http.Transport{
		MaxIdleConns:          DefaultMaxIdleConns,
		MaxIdleConnsPerHost:   DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:       DefaultIdleConnTimeout,
		TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: responseHeaderTimeout,
	}
}

// NewClient creates an HTTP client with an overall request timeout. Use it
// for bounded calls such as metadata fetches.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(timeout),
	}
}

// NewStreamingClient creates an HTTP client without an overall timeout.
// Large media transfers can legitimately outlive any fixed deadline, so only
// the wait for response headers is bounded; body reads are governed by the
// request context.
func NewStreamingClient(headerTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: newTransport(headerTimeout),
	}
}
