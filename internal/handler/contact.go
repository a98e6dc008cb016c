package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mediavault/instafetch/internal/logger"
	"github.com/mediavault/instafetch/internal/mailer"
)

// maxContactMessageLen bounds the contact message body.
const maxContactMessageLen = 5000

// Sender delivers one contact message.
type Sender interface {
	Send(msg mailer.Message) error
}

// ContactHandler accepts contact-form submissions and forwards them by mail.
type ContactHandler struct {
	sender Sender
	logger logger.Logger
}

// NewContactHandler creates a ContactHandler with the given dependencies.
func NewContactHandler(sender Sender, log logger.Logger) *ContactHandler {
	return &ContactHandler{sender: sender, logger: log}
}

type contactRequest struct {
	Name    string `form:"name"    json:"name"`
	Email   string `form:"email"   json:"email"`
	Message string `form:"message" json:"message"`
}

// Submit validates and forwards one contact-form submission.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if len(req.Message) > maxContactMessageLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is too long"})
		return
	}

	err := h.sender.Send(mailer.Message{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Body:  req.Message,
	})
	if errors.Is(err, mailer.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "contact mail is not configured"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to deliver message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
