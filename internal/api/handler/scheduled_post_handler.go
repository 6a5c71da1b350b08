package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// ScheduledPostHandler serves the content-calendar endpoints.
type ScheduledPostHandler struct {
	postSvc service.ScheduledPostService
}

// NewScheduledPostHandler creates the ScheduledPostHandler.
func NewScheduledPostHandler(postSvc service.ScheduledPostService) *ScheduledPostHandler {
	return &ScheduledPostHandler{postSvc: postSvc}
}

// Create adds a calendar entry.
// POST /api/v1/scheduled-posts
func (h *ScheduledPostHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateScheduledPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.postSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	response.Created(c, result)
}

// List returns all calendar entries.
// GET /api/v1/scheduled-posts
func (h *ScheduledPostHandler) List(c *gin.Context) {
	result, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Get returns a single calendar entry.
// GET /api/v1/scheduled-posts/:id
func (h *ScheduledPostHandler) Get(c *gin.Context) {
	result, err := h.postSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	response.OK(c, result)
}

// Update applies a partial edit. A version mismatch is a stale edit and
// returns 409; the client should reload and retry.
// PATCH /api/v1/scheduled-posts/:id
func (h *ScheduledPostHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateScheduledPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.postSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.handlePostError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete removes a calendar entry.
// DELETE /api/v1/scheduled-posts/:id
func (h *ScheduledPostHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.postSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.handlePostError(c, err)
		return
	}

	response.OKMessage(c, "Geplanter Beitrag gelöscht.", nil)
}

func (h *ScheduledPostHandler) handlePostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, 15001, service.ErrPostNotFound.Error())
	case errors.Is(err, service.ErrPostStatusInvalid):
		response.BadRequest(c, 15002, service.ErrPostStatusInvalid.Error())
	case errors.Is(err, service.ErrPostTimeInvalid):
		response.BadRequest(c, 15003, service.ErrPostTimeInvalid.Error())
	case errors.Is(err, service.ErrPostStaleEdit):
		response.Conflict(c, 15004, "Der Beitrag wurde zwischenzeitlich geändert. Bitte laden Sie ihn neu.")
	default:
		response.InternalError(c)
	}
}
