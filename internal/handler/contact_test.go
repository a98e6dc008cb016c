package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/handler"
	"github.com/mediavault/instafetch/internal/logger"
	"github.com/mediavault/instafetch/internal/mailer"
)

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func setupContactRouter(t *testing.T, sender handler.Sender) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewContactHandler(sender, logger.NewNop())
	r.POST("/api/v1/contact", h.Submit)
	return r
}

func postContact(t *testing.T, r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmit_DeliversMessage(t *testing.T) {
	sender := &fakeSender{}
	r := setupContactRouter(t, sender)

	rec := postContact(t, r, url.Values{
		"name":    {"Alice"},
		"email":   {"alice@example.com"},
		"message": {"  hello there  "},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent = %d messages, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.Name != "Alice" || msg.Email != "alice@example.com" {
		t.Errorf("sender fields = %+v", msg)
	}
	if msg.Body != "hello there" {
		t.Errorf("body = %q, want trimmed message", msg.Body)
	}
}

func TestSubmit_RequiresMessage(t *testing.T) {
	sender := &fakeSender{}
	r := setupContactRouter(t, sender)

	rec := postContact(t, r, url.Values{"name": {"Alice"}, "message": {"   "}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(sender.sent) != 0 {
		t.Error("nothing should be sent for an empty message")
	}
}

func TestSubmit_RejectsOversizedMessage(t *testing.T) {
	sender := &fakeSender{}
	r := setupContactRouter(t, sender)

	rec := postContact(t, r, url.Values{"message": {strings.Repeat("x", 5001)}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubmit_MailNotConfigured(t *testing.T) {
	r := setupContactRouter(t, &fakeSender{err: mailer.ErrNotConfigured})

	rec := postContact(t, r, url.Values{"message": {"hello"}})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}
