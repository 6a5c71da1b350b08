package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// ApplicationHandler serves the job-posting endpoints.
type ApplicationHandler struct {
	appSvc service.ApplicationService
}

// NewApplicationHandler creates the ApplicationHandler.
func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

// Create adds a job posting.
// POST /api/v1/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.appSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List returns all job postings.
// GET /api/v1/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	result, err := h.appSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update edits a job posting.
// PATCH /api/v1/applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.appSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, result)
}

// SetArchived toggles the archive flag.
// PATCH /api/v1/applications/:id/archive
func (h *ApplicationHandler) SetArchived(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetArchivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.appSvc.SetArchived(c.Request.Context(), c.Param("id"), *req.Archived, userID)
	if err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete removes a job posting.
// DELETE /api/v1/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.appSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		h.handleApplicationError(c, err)
		return
	}

	response.OKMessage(c, "Bewerbung gelöscht.", nil)
}

func (h *ApplicationHandler) handleApplicationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrApplicationNotFound) {
		response.NotFound(c, 16001, service.ErrApplicationNotFound.Error())
		return
	}
	response.InternalError(c)
}
