package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// AbsenceHandler serves the absence-request endpoints.
type AbsenceHandler struct {
	absenceSvc service.AbsenceService
}

// NewAbsenceHandler creates the AbsenceHandler.
func NewAbsenceHandler(absenceSvc service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{absenceSvc: absenceSvc}
}

// Submit files a new absence request for the caller.
// POST /api/v1/team/absences
func (h *AbsenceHandler) Submit(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.SubmitAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.absenceSvc.Submit(c.Request.Context(), principal, &req)
	if err != nil {
		h.handleAbsenceError(c, err)
		return
	}

	response.Created(c, result)
}

// List returns the requests visible to the caller, optionally narrowed to a
// date window via ?start=YYYY-MM-DD&end=YYYY-MM-DD. ?all_summary=true adds
// other users' requests in reduced form for the calendar.
// GET /api/v1/team/absences
func (h *AbsenceHandler) List(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.AbsenceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.absenceSvc.List(c.Request.Context(), principal, &req)
	if err != nil {
		h.handleAbsenceError(c, err)
		return
	}

	response.OK(c, result)
}

// Get returns a single absence request.
// GET /api/v1/team/absences/:id
func (h *AbsenceHandler) Get(c *gin.Context) {
	if _, ok := MustGetPrincipal(c); !ok {
		return
	}

	result, err := h.absenceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleAbsenceError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateStatus decides a request (Management only).
// PUT /api/v1/team/absences/:id/status
func (h *AbsenceHandler) UpdateStatus(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.UpdateAbsenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.absenceSvc.UpdateStatus(c.Request.Context(), principal, c.Param("id"), req.NewStatus)
	if err != nil {
		h.handleAbsenceError(c, err)
		return
	}

	response.OK(c, result)
}

// Session returns the role/user projection the UI renders controls from.
// GET /api/v1/team/absences/session
func (h *AbsenceHandler) Session(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	response.OK(c, h.absenceSvc.SessionInfo(principal))
}

func (h *AbsenceHandler) handleAbsenceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAbsenceNotAuthenticated):
		response.Unauthorized(c, 10002, service.ErrAbsenceNotAuthenticated.Error())
	case errors.Is(err, service.ErrAbsenceDatesRequired):
		response.BadRequest(c, 13001, service.ErrAbsenceDatesRequired.Error())
	case errors.Is(err, service.ErrAbsenceDatesInvalid):
		response.BadRequest(c, 13002, service.ErrAbsenceDatesInvalid.Error())
	case errors.Is(err, service.ErrAbsenceEndBeforeStart):
		response.BadRequest(c, 13003, service.ErrAbsenceEndBeforeStart.Error())
	case errors.Is(err, service.ErrAbsenceInvalidStatus):
		response.BadRequest(c, 13004, service.ErrAbsenceInvalidStatus.Error())
	case errors.Is(err, service.ErrAbsenceNotAuthorized):
		response.Forbidden(c, 10003, service.ErrAbsenceNotAuthorized.Error())
	case errors.Is(err, service.ErrAbsenceNotFound):
		response.NotFound(c, 13005, service.ErrAbsenceNotFound.Error())
	default:
		response.InternalError(c)
	}
}
