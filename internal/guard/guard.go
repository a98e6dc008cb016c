// Package guard validates that media URLs point at approved upstream hosts.
// This is the only gate between an arbitrary user-supplied URL and the
// server fetching it, so it runs before every upstream byte fetch.
package guard

import (
	"net/url"
	"strings"
)

// Guard holds the approved upstream host suffix set.
type Guard struct {
	suffixes []string
}

// New creates a Guard for the given host suffixes. A host passes when it
// equals a suffix exactly or ends with "." plus the suffix.
func New(suffixes []string) *Guard {
	normalized := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			normalized = append(normalized, s)
		}
	}
	return &Guard{suffixes: normalized}
}

// Allowed reports whether rawURL uses http(s) and targets an approved host.
func (g *Guard) Allowed(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	switch parsed.Scheme {
	case "http", "https":
	default:
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return false
	}

	for _, suffix := range g.suffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}
