package stream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/stream"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*stream.Gateway, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return stream.New(srv.Client(), nil), srv.URL
}

func TestStream_InlinePassThrough(t *testing.T) {
	body := "fake video bytes"
	gw, upstream := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Accept-Ranges", "bytes")
		_, _ = w.Write([]byte(body))
	})

	rec := httptest.NewRecorder()
	written, err := gw.Stream(context.Background(), rec, stream.Request{
		URL:         upstream + "/clip.mp4",
		Disposition: stream.Inline,
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	if written != int64(len(body)) {
		t.Errorf("written = %d, want %d", written, len(body))
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "video/mp4" {
		t.Errorf("content type = %q, want video/mp4", got)
	}
	if got := rec.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("accept-ranges = %q, want bytes", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != "inline" {
		t.Errorf("disposition = %q, want inline", got)
	}
	if rec.Body.String() != body {
		t.Errorf("body = %q, want %q", rec.Body.String(), body)
	}
}

func TestStream_RangeForwarded(t *testing.T) {
	var gotRange string
	gw, upstream := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		w.Header().Set("Content-Range", "bytes 0-3/16")
		w.WriteHeader(http.StatusPartialContent)
		_, _ = w.Write([]byte("fake"))
	})

	rec := httptest.NewRecorder()
	_, err := gw.Stream(context.Background(), rec, stream.Request{
		URL:         upstream + "/clip.mp4",
		RangeHeader: "bytes=0-3",
		Disposition: stream.Inline,
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	if gotRange != "bytes=0-3" {
		t.Errorf("forwarded range = %q, want bytes=0-3", gotRange)
	}
	if rec.Code != http.StatusPartialContent {
		t.Errorf("status = %d, want 206", rec.Code)
	}
	if got := rec.Header().Get("Content-Range"); got != "bytes 0-3/16" {
		t.Errorf("content-range = %q, want bytes 0-3/16", got)
	}
}

func TestStream_AttachmentDisposition(t *testing.T) {
	gw, upstream := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg"))
	})

	rec := httptest.NewRecorder()
	_, err := gw.Stream(context.Background(), rec, stream.Request{
		URL:         upstream + "/photo.jpg",
		Disposition: stream.Attachment,
		Filename:    "my photo (1).jpg",
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	want := `attachment; filename="my_photo_1_.jpg"`
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Errorf("disposition = %q, want %q", got, want)
	}
}

func TestStream_AttachmentDefaultFilename(t *testing.T) {
	gw, upstream := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg"))
	})

	rec := httptest.NewRecorder()
	_, err := gw.Stream(context.Background(), rec, stream.Request{
		URL:         upstream + "/photo.jpg",
		Disposition: stream.Attachment,
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	want := `attachment; filename="instagram_media"`
	if got := rec.Header().Get("Content-Disposition"); got != want {
		t.Errorf("disposition = %q, want %q", got, want)
	}
}

func TestStream_DefaultContentType(t *testing.T) {
	gw, upstream := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte{0x00, 0x01})
	})

	rec := httptest.NewRecorder()
	if _, err := gw.Stream(context.Background(), rec, stream.Request{
		URL:         upstream + "/blob",
		Disposition: stream.Inline,
	}); err != nil {
		t.Fatalf("Stream: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/octet-stream" {
		t.Errorf("content type = %q, want application/octet-stream", got)
	}
}

func TestStream_RejectsUnexpectedStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
		gw, upstream := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		rec := httptest.NewRecorder()
		written, err := gw.Stream(context.Background(), rec, stream.Request{
			URL:         upstream + "/gone.mp4",
			Disposition: stream.Inline,
		})
		if !errors.Is(err, stream.ErrUpstreamStatus) {
			t.Fatalf("status %d: error = %v, want ErrUpstreamStatus", status, err)
		}
		if written != 0 {
			t.Errorf("status %d: written = %d, want 0", status, written)
		}
	}
}

func TestStream_ConnectFailureIsTransient(t *testing.T) {
	gw := stream.New(http.DefaultClient, nil)

	rec := httptest.NewRecorder()
	_, err := gw.Stream(context.Background(), rec, stream.Request{
		URL:         "http://127.0.0.1:1/unreachable.mp4",
		Disposition: stream.Inline,
	})
	if !domain.IsTransient(err) {
		t.Fatalf("error = %v, want a transient upstream error", err)
	}
}
