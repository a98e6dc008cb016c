package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/handler"
	"github.com/mediavault/instafetch/internal/logger"
)

// fakePipeline returns a canned outcome for every request.
type fakePipeline struct {
	items []domain.MediaItem
	err   error

	gotRawURL string
	gotKind   domain.Kind
}

func (f *fakePipeline) Process(_ context.Context, _, rawURL string, requested domain.Kind) ([]domain.MediaItem, error) {
	f.gotRawURL = rawURL
	f.gotKind = requested
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func setupResolveRouter(t *testing.T, p handler.Pipeline) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewResolveHandler(p, logger.NewNop())
	r.POST("/api/v1/resolve", h.Resolve)
	return r
}

func postResolve(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resolve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestResolve_Success(t *testing.T) {
	p := &fakePipeline{items: []domain.MediaItem{
		{Kind: domain.KindVideo, SourceURL: "https://scontent.cdninstagram.com/v/clip.mp4?sig=a&b=c", Filename: "Cxyz123.mp4"},
	}}
	r := setupResolveRouter(t, p)

	rec := postResolve(t, r, url.Values{
		"mediaUrl":  {"https://www.instagram.com/p/Cxyz123/"},
		"mediaType": {"video"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if p.gotKind != domain.KindVideo {
		t.Errorf("requested kind = %q, want video", p.gotKind)
	}

	body := decodeBody(t, rec)
	items, ok := body["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one entry", body["items"])
	}

	item := items[0].(map[string]any)
	proxyURL, _ := item["proxyUrl"].(string)
	if !strings.HasPrefix(proxyURL, "/media-proxy?url=") {
		t.Errorf("proxyUrl = %q", proxyURL)
	}
	if strings.Contains(proxyURL, "sig=a&b=c") {
		t.Error("source URL query must be escaped inside proxyUrl")
	}

	downloadURL, _ := item["downloadUrl"].(string)
	if !strings.HasPrefix(downloadURL, "/download-file?url=") || !strings.Contains(downloadURL, "&name=Cxyz123.mp4") {
		t.Errorf("downloadUrl = %q", downloadURL)
	}
}

func TestResolve_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid link", domain.ErrInvalidLink, http.StatusBadRequest, "INVALID_LINK"},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"private", domain.ErrPrivate, http.StatusForbidden, "PRIVATE"},
		{"mismatch", &domain.MismatchError{Requested: domain.KindPhoto}, http.StatusUnprocessableEntity, "KIND_MISMATCH"},
		{"not found", domain.ErrNotFound, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"upstream error", &domain.UpstreamError{Op: "metadata fetch", Err: domain.ErrNotFound}, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupResolveRouter(t, &fakePipeline{err: tt.err})

			rec := postResolve(t, r, url.Values{
				"mediaUrl":  {"https://www.instagram.com/p/Cxyz123/"},
				"mediaType": {"photo"},
			})

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeBody(t, rec)
			if body["code"] != tt.wantCode {
				t.Errorf("code = %v, want %s", body["code"], tt.wantCode)
			}
		})
	}
}

func TestResolve_LocalizedErrorMessage(t *testing.T) {
	r := setupResolveRouter(t, &fakePipeline{err: domain.ErrPrivate})

	rec := postResolve(t, r, url.Values{
		"mediaUrl":  {"https://www.instagram.com/p/Cxyz123/"},
		"mediaType": {"video"},
		"lang":      {"de"},
	})

	body := decodeBody(t, rec)
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "privat") {
		t.Errorf("message = %q, want the German private-account text", msg)
	}
}

func TestResolve_UnknownLangFallsBackToEnglish(t *testing.T) {
	r := setupResolveRouter(t, &fakePipeline{err: domain.ErrPrivate})

	rec := postResolve(t, r, url.Values{
		"mediaUrl":  {"https://www.instagram.com/p/Cxyz123/"},
		"mediaType": {"video"},
		"lang":      {"xx"},
	})

	body := decodeBody(t, rec)
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "private") {
		t.Errorf("message = %q, want the English fallback", msg)
	}
}

func TestResolve_ReelMismatchMessage(t *testing.T) {
	r := setupResolveRouter(t, &fakePipeline{
		err: &domain.MismatchError{Requested: domain.KindReels, ReelSpecific: true},
	})

	rec := postResolve(t, r, url.Values{
		"mediaUrl":  {"https://www.instagram.com/p/Cxyz123/"},
		"mediaType": {"reels"},
	})

	body := decodeBody(t, rec)
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "not a reel") {
		t.Errorf("message = %q, want the reel-specific text", msg)
	}
}
