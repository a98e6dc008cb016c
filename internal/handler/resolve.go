package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/i18n"
	"github.com/mediavault/instafetch/internal/logger"
)

// Pipeline resolves one media reference into downloadable items.
type Pipeline interface {
	Process(ctx context.Context, clientID, rawURL string, requested domain.Kind) ([]domain.MediaItem, error)
}

// ResolveHandler handles media resolution requests.
type ResolveHandler struct {
	pipeline Pipeline
	logger   logger.Logger
}

// NewResolveHandler creates a ResolveHandler with the given dependencies.
func NewResolveHandler(pipeline Pipeline, log logger.Logger) *ResolveHandler {
	return &ResolveHandler{pipeline: pipeline, logger: log}
}

// resolveRequest is the form payload accepted by Resolve.
type resolveRequest struct {
	MediaURL  string `form:"mediaUrl" json:"mediaUrl"`
	MediaType string `form:"mediaType" json:"mediaType"`
	Lang      string `form:"lang" json:"lang"`
}

// resolvedItem is one downloadable media entry in the response.
type resolvedItem struct {
	Kind        string `json:"kind"`
	ProxyURL    string `json:"proxyUrl"`
	DownloadURL string `json:"downloadUrl"`
	Filename    string `json:"filename"`
}

// Resolve parses the submitted reference, runs it through the pipeline,
// and returns the matching media items or a localized error.
func (h *ResolveHandler) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "INVALID_LINK", i18n.T(i18n.DefaultLang, i18n.KeyInvalidLink))
		return
	}

	lang := i18n.Normalize(req.Lang)
	requested := domain.ParseKind(req.MediaType)

	items, err := h.pipeline.Process(c.Request.Context(), c.ClientIP(), strings.TrimSpace(req.MediaURL), requested)
	if err != nil {
		h.respondError(c, lang, requested, err)
		return
	}

	out := make([]resolvedItem, 0, len(items))
	for _, item := range items {
		out = append(out, resolvedItem{
			Kind:        string(item.Kind),
			ProxyURL:    "/media-proxy?url=" + url.QueryEscape(item.SourceURL),
			DownloadURL: "/download-file?url=" + url.QueryEscape(item.SourceURL) + "&name=" + url.QueryEscape(item.Filename),
			Filename:    item.Filename,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": out})
}

// respondError maps a pipeline error onto an HTTP status, a stable error
// code, and a localized user-facing message.
func (h *ResolveHandler) respondError(c *gin.Context, lang string, requested domain.Kind, err error) {
	var mismatch *domain.MismatchError

	switch {
	case errors.Is(err, domain.ErrInvalidLink):
		h.fail(c, http.StatusBadRequest, "INVALID_LINK", i18n.T(lang, i18n.KeyInvalidLink))

	case errors.Is(err, domain.ErrRateLimited):
		h.fail(c, http.StatusTooManyRequests, "RATE_LIMITED", i18n.T(lang, i18n.KeyRateLimited))

	case errors.Is(err, domain.ErrPrivate):
		h.fail(c, http.StatusForbidden, "PRIVATE", i18n.T(lang, i18n.KeyPrivateBody))

	case errors.As(err, &mismatch):
		h.fail(c, http.StatusUnprocessableEntity, "KIND_MISMATCH", i18n.T(lang, mismatchKey(requested, mismatch)))

	case errors.Is(err, domain.ErrNotFound), domain.IsTransient(err):
		_ = c.Error(err)
		h.fail(c, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "The upstream service is unavailable. Please try again later.")

	default:
		_ = c.Error(err)
		h.fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}

// mismatchKey picks the message matching what the user asked for: a reel
// request gets the reel-specific text, otherwise the text names the kind
// that was actually found.
func mismatchKey(requested domain.Kind, mismatch *domain.MismatchError) string {
	switch {
	case mismatch.ReelSpecific:
		return i18n.KeyMismatchReel
	case requested.WantsVideo():
		return i18n.KeyMismatchVideo
	default:
		return i18n.KeyMismatchPhoto
	}
}

func (h *ResolveHandler) fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":   http.StatusText(status),
		"code":    code,
		"message": message,
	})
}
