package resolver_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/resolver"
)

func newResolver(t *testing.T, handler http.HandlerFunc) *resolver.Resolver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return resolver.New(resolver.Options{
		HTTPClient:        srv.Client(),
		BaseURL:           srv.URL,
		UserAgent:         "test-agent",
		MaxConcurrent:     4,
		RequestsPerSecond: 100,
	})
}

func mediaJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}
}

func TestResolve_SingleVideo(t *testing.T) {
	res := newResolver(t, mediaJSON(`{
		"graphql": {"shortcode_media": {
			"__typename": "GraphVideo",
			"shortcode": "Cvid1",
			"is_video": true,
			"video_url": "https://cdn.example/Cvid1.mp4",
			"display_url": "https://cdn.example/Cvid1.jpg",
			"product_type": "feed",
			"owner": {"username": "alice", "is_private": false}
		}}
	}`))

	content, err := res.Resolve(context.Background(), "Cvid1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if content.IsReel {
		t.Error("feed video should not be flagged as reel")
	}
	if len(content.Videos) != 1 || len(content.Photos) != 0 {
		t.Fatalf("buckets = %d videos / %d photos, want 1/0", len(content.Videos), len(content.Photos))
	}
	item := content.Videos[0]
	if item.SourceURL != "https://cdn.example/Cvid1.mp4" {
		t.Errorf("source url = %q", item.SourceURL)
	}
	if item.Filename != "Cvid1.mp4" {
		t.Errorf("filename = %q, want Cvid1.mp4", item.Filename)
	}
}

func TestResolve_ClipsMarkedAsReel(t *testing.T) {
	res := newResolver(t, mediaJSON(`{
		"graphql": {"shortcode_media": {
			"__typename": "GraphVideo",
			"shortcode": "Creel1",
			"is_video": true,
			"video_url": "https://cdn.example/Creel1.mp4",
			"product_type": "clips",
			"owner": {"username": "alice", "is_private": false}
		}}
	}`))

	content, err := res.Resolve(context.Background(), "Creel1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !content.IsReel {
		t.Error("clips product type should mark the content as a reel")
	}
}

func TestResolve_SidecarMixedCarousel(t *testing.T) {
	res := newResolver(t, mediaJSON(`{
		"graphql": {"shortcode_media": {
			"__typename": "GraphSidecar",
			"shortcode": "Cmix1",
			"owner": {"username": "alice", "is_private": false},
			"edge_sidecar_to_children": {"edges": [
				{"node": {"is_video": true, "video_url": "https://cdn.example/a.mp4"}},
				{"node": {"is_video": false, "display_url": "https://cdn.example/b.jpg"}},
				{"node": {"is_video": true, "video_url": "https://cdn.example/c.mp4"}}
			]}
		}}
	}`))

	content, err := res.Resolve(context.Background(), "Cmix1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(content.Videos) != 2 || len(content.Photos) != 1 {
		t.Fatalf("buckets = %d videos / %d photos, want 2/1", len(content.Videos), len(content.Photos))
	}
	// Filenames carry the 1-based carousel position.
	if content.Videos[0].Filename != "Cmix1_1.mp4" {
		t.Errorf("first video filename = %q, want Cmix1_1.mp4", content.Videos[0].Filename)
	}
	if content.Photos[0].Filename != "Cmix1_2.jpg" {
		t.Errorf("photo filename = %q, want Cmix1_2.jpg", content.Photos[0].Filename)
	}
	if content.Videos[1].Filename != "Cmix1_3.mp4" {
		t.Errorf("second video filename = %q, want Cmix1_3.mp4", content.Videos[1].Filename)
	}
}

func TestResolve_SidecarSkipsEmptyURLs(t *testing.T) {
	res := newResolver(t, mediaJSON(`{
		"graphql": {"shortcode_media": {
			"__typename": "GraphSidecar",
			"shortcode": "Cgap1",
			"owner": {"username": "alice", "is_private": false},
			"edge_sidecar_to_children": {"edges": [
				{"node": {"is_video": true, "video_url": ""}},
				{"node": {"is_video": false, "display_url": "https://cdn.example/b.jpg"}}
			]}
		}}
	}`))

	content, err := res.Resolve(context.Background(), "Cgap1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(content.Videos) != 0 || len(content.Photos) != 1 {
		t.Fatalf("buckets = %d videos / %d photos, want 0/1", len(content.Videos), len(content.Photos))
	}
}

func TestResolve_PrivateOwner(t *testing.T) {
	res := newResolver(t, mediaJSON(`{
		"graphql": {"shortcode_media": {
			"__typename": "GraphImage",
			"shortcode": "Cpriv1",
			"display_url": "https://cdn.example/Cpriv1.jpg",
			"owner": {"username": "bob", "is_private": true}
		}}
	}`))

	_, err := res.Resolve(context.Background(), "Cpriv1")
	if !errors.Is(err, domain.ErrPrivate) {
		t.Fatalf("error = %v, want ErrPrivate", err)
	}
}

func TestResolve_StatusMapping(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		transient bool
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound, false},
		{"login wall 401", http.StatusUnauthorized, domain.ErrPrivate, false},
		{"login wall 403", http.StatusForbidden, domain.ErrPrivate, false},
		{"upstream throttle", http.StatusTooManyRequests, nil, true},
		{"upstream outage", http.StatusServiceUnavailable, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := res.Resolve(context.Background(), "Cany")
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.transient && !domain.IsTransient(err) {
				t.Fatalf("error = %v, want a transient upstream error", err)
			}
		})
	}
}

func TestResolve_NullMediaIsNotFound(t *testing.T) {
	res := newResolver(t, mediaJSON(`{"graphql": {"shortcode_media": null}}`))

	_, err := res.Resolve(context.Background(), "Cgone")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestResolve_MalformedBodyIsTransient(t *testing.T) {
	res := newResolver(t, mediaJSON(`<html>login wall</html>`))

	_, err := res.Resolve(context.Background(), "Cwall")
	if !domain.IsTransient(err) {
		t.Fatalf("error = %v, want a transient upstream error", err)
	}
}

func TestResolve_RequestShape(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	res := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		mediaJSON(`{"graphql": {"shortcode_media": {
			"__typename": "GraphImage",
			"display_url": "https://cdn.example/x.jpg",
			"owner": {"is_private": false}
		}}}`)(w, r)
	})

	if _, err := res.Resolve(context.Background(), "Cshape"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if gotPath != "/p/Cshape/" {
		t.Errorf("path = %q, want /p/Cshape/", gotPath)
	}
	if gotQuery != "__a=1&__d=dis" {
		t.Errorf("query = %q, want __a=1&__d=dis", gotQuery)
	}
	if gotUA != "test-agent" {
		t.Errorf("user agent = %q, want test-agent", gotUA)
	}
}

func TestResolve_ContextCancelled(t *testing.T) {
	res := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := res.Resolve(ctx, "Cslow")
	if err == nil {
		t.Fatal("expected error with cancelled context")
	}
}
