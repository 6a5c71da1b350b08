package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

// CloudHandler serves the external file-browser endpoints.
type CloudHandler struct {
	cloudSvc service.CloudService
}

// NewCloudHandler creates the CloudHandler.
func NewCloudHandler(cloudSvc service.CloudService) *CloudHandler {
	return &CloudHandler{cloudSvc: cloudSvc}
}

// List returns the caller's files from the external storage.
// GET /api/v1/cloud/files
func (h *CloudHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.cloudSvc.ListFiles(c.Request.Context(), userID)
	if err != nil {
		h.handleCloudError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete removes one of the caller's files from the external storage.
// DELETE /api/v1/cloud/files/:id
func (h *CloudHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.cloudSvc.DeleteFile(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.handleCloudError(c, err)
		return
	}

	response.OKMessage(c, "Datei gelöscht.", nil)
}

func (h *CloudHandler) handleCloudError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCloudDisabled):
		response.Error(c, http.StatusNotImplemented, 20001, service.ErrCloudDisabled.Error())
	case errors.Is(err, service.ErrCloudUnavailable):
		response.Error(c, http.StatusBadGateway, 20002, service.ErrCloudUnavailable.Error())
	case errors.Is(err, service.ErrCloudFileMissing):
		response.NotFound(c, 20003, service.ErrCloudFileMissing.Error())
	default:
		response.InternalError(c)
	}
}
