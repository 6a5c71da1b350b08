package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// UserHandler serves the user-administration endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List returns all dashboard accounts.
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	users, err := h.userSvc.List(c.Request.Context(), principal)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, users)
}

// Create adds a dashboard account.
// POST /api/v1/users
func (h *UserHandler) Create(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), principal, &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.Created(c, user)
}

// ChangeRole assigns a new role.
// PATCH /api/v1/users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	user, err := h.userSvc.ChangeRole(c.Request.Context(), principal, c.Param("id"), req.Role)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// Delete removes an account.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OKMessage(c, "Benutzer gelöscht.", nil)
}

// ResetPassword generates a new password and returns it once.
// POST /api/v1/users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	result, err := h.userSvc.ResetPassword(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotManagement):
		response.Forbidden(c, 10003, service.ErrNotManagement.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 12001, service.ErrUserNotFound.Error())
	case errors.Is(err, service.ErrUserNameTaken):
		response.Conflict(c, 12002, service.ErrUserNameTaken.Error())
	case errors.Is(err, service.ErrRoleInvalid):
		response.BadRequest(c, 12003, service.ErrRoleInvalid.Error())
	case errors.Is(err, service.ErrSelfDeletion):
		response.BadRequest(c, 12004, service.ErrSelfDeletion.Error())
	default:
		response.InternalError(c)
	}
}
