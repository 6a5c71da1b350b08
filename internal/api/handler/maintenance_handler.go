package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// MaintenanceHandler serves the maintenance-mode endpoints.
type MaintenanceHandler struct {
	maintSvc service.MaintenanceService
}

// NewMaintenanceHandler creates the MaintenanceHandler.
func NewMaintenanceHandler(maintSvc service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintSvc: maintSvc}
}

// Status returns the current maintenance state. Public so the frontend can
// show the maintenance page before login.
// GET /api/v1/maintenance
func (h *MaintenanceHandler) Status(c *gin.Context) {
	result, err := h.maintSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// SetMode toggles maintenance mode (Management only).
// PUT /api/v1/maintenance
func (h *MaintenanceHandler) SetMode(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.SetMaintenanceModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.maintSvc.SetMode(c.Request.Context(), principal, *req.Active)
	if err != nil {
		h.handleMaintenanceError(c, err)
		return
	}

	response.OK(c, result)
}

// SetPassword replaces the maintenance bypass password (Management only).
// PUT /api/v1/maintenance/password
func (h *MaintenanceHandler) SetPassword(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.SetMaintenancePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	if err := h.maintSvc.SetPassword(c.Request.Context(), principal, req.Password); err != nil {
		h.handleMaintenanceError(c, err)
		return
	}

	response.OKMessage(c, "Wartungspasswort aktualisiert.", nil)
}

func (h *MaintenanceHandler) handleMaintenanceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrMaintenanceNotAuthorized) {
		response.Forbidden(c, 10003, service.ErrMaintenanceNotAuthorized.Error())
		return
	}
	response.InternalError(c)
}
