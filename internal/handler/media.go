package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/domain"
	"github.com/mediavault/instafetch/internal/guard"
	"github.com/mediavault/instafetch/internal/logger"
	"github.com/mediavault/instafetch/internal/stream"
	"github.com/mediavault/instafetch/internal/telemetry"
)

// MediaHandler streams upstream media through the service, as inline
// previews or forced downloads.
type MediaHandler struct {
	guard   *guard.Guard
	gateway *stream.Gateway
	metrics *telemetry.Metrics
	logger  logger.Logger
}

// NewMediaHandler creates a MediaHandler with the given dependencies.
func NewMediaHandler(g *guard.Guard, gw *stream.Gateway, metrics *telemetry.Metrics, log logger.Logger) *MediaHandler {
	return &MediaHandler{guard: g, gateway: gw, metrics: metrics, logger: log}
}

// Proxy streams the media at ?url= inline, forwarding the client's Range
// header so previews can seek.
func (h *MediaHandler) Proxy(c *gin.Context) {
	h.stream(c, stream.Request{
		URL:         c.Query("url"),
		RangeHeader: c.GetHeader("Range"),
		Disposition: stream.Inline,
	}, "inline")
}

// Download streams the media at ?url= as an attachment named ?name=.
func (h *MediaHandler) Download(c *gin.Context) {
	h.stream(c, stream.Request{
		URL:         c.Query("url"),
		RangeHeader: c.GetHeader("Range"),
		Disposition: stream.Attachment,
		Filename:    c.Query("name"),
	}, "attachment")
}

func (h *MediaHandler) stream(c *gin.Context, req stream.Request, disposition string) {
	if !h.guard.Allowed(req.URL) {
		h.logger.Warn("Rejected media URL outside allow-list",
			logger.String("url", req.URL),
			logger.String("client_ip", c.ClientIP()),
		)
		_ = c.Error(domain.ErrRejectedURL)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   http.StatusText(http.StatusBadRequest),
			"code":    "INVALID_LINK",
			"message": "URL is not a recognized media host",
		})
		return
	}

	written, err := h.gateway.Stream(c.Request.Context(), c.Writer, req)
	h.metrics.ObserveProxiedBytes(disposition, written)
	if err == nil {
		return
	}

	// Headers are already sent once streaming started; only report errors
	// that happened before the first byte.
	if written > 0 || c.Writer.Written() {
		_ = c.Error(err)
		return
	}

	if errors.Is(err, stream.ErrUpstreamStatus) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   http.StatusText(http.StatusNotFound),
			"code":    "UPSTREAM_UNAVAILABLE",
			"message": "Media is no longer available",
		})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusBadGateway, gin.H{
		"error":   http.StatusText(http.StatusBadGateway),
		"code":    "UPSTREAM_UNAVAILABLE",
		"message": "The upstream service is unavailable. Please try again later.",
	})
}
