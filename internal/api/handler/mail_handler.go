package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// MailHandler serves the station-mailbox preview endpoint.
type MailHandler struct {
	mailSvc service.MailService
}

// NewMailHandler creates the MailHandler.
func NewMailHandler(mailSvc service.MailService) *MailHandler {
	return &MailHandler{mailSvc: mailSvc}
}

// Unseen lists unread messages from the station mailbox.
// GET /api/v1/mail/unseen
func (h *MailHandler) Unseen(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	messages, err := h.mailSvc.Unseen(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMailDisabled):
			response.Error(c, http.StatusNotImplemented, 19001, service.ErrMailDisabled.Error())
		case errors.Is(err, service.ErrMailUnavailable):
			response.Error(c, http.StatusBadGateway, 19002, service.ErrMailUnavailable.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, messages)
}
