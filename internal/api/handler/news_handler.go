package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// NewsHandler serves the news endpoints.
type NewsHandler struct {
	newsSvc service.NewsService
}

// NewNewsHandler creates the NewsHandler.
func NewNewsHandler(newsSvc service.NewsService) *NewsHandler {
	return &NewsHandler{newsSvc: newsSvc}
}

// Create adds a news post.
// POST /api/v1/news
func (h *NewsHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Ungültige Anfrageparameter.")
		return
	}

	result, err := h.newsSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List returns all news posts, newest first.
// GET /api/v1/news
func (h *NewsHandler) List(c *gin.Context) {
	result, err := h.newsSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Delete removes a news post.
// DELETE /api/v1/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.newsSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.NotFound(c, 14001, service.ErrNewsNotFound.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "News-Beitrag gelöscht.", nil)
}
