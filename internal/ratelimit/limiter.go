// Package ratelimit bounds how many resolution requests a single client may
// issue within a sliding time window.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a per-client sliding window rate limiter. Buckets are created
// lazily on a client's first request and garbage-collected once idle.
// Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	buckets map[string][]time.Time
	now     func() time.Time
}

// New creates a Limiter admitting at most max requests per client within
// the trailing window.
func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		window:  window,
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow reports whether clientID may issue another resolution request now.
// Timestamps older than the window are dropped before the count is
// evaluated; denied requests are not recorded.
func (l *Limiter) Allow(clientID string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.buckets[clientID][:0]
	for _, ts := range l.buckets[clientID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		l.buckets[clientID] = recent
		return false
	}

	l.buckets[clientID] = append(recent, now)
	return true
}

// StartGC periodically drops buckets whose every timestamp has aged out of
// the window, until done is closed.
func (l *Limiter) StartGC(interval time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				l.collect()
			}
		}
	}()
}

func (l *Limiter) collect() {
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for clientID, timestamps := range l.buckets {
		idle := true
		for _, ts := range timestamps {
			if ts.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(l.buckets, clientID)
		}
	}
}
