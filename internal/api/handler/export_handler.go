package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/internal/service"
	"funkdesk/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the absence-export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// AbsencesXLSX downloads all requests overlapping a month as a spreadsheet.
// GET /api/v1/export/absences?month=YYYY-MM
func (h *ExportHandler) AbsencesXLSX(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 10001, "Der Parameter month ist erforderlich.")
		return
	}

	buf, filename, err := h.exportSvc.ExportAbsencesXLSX(c.Request.Context(), principal, month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// AbsencesICS serves the approved-absences calendar feed.
// GET /api/v1/export/absences.ics
func (h *ExportHandler) AbsencesICS(c *gin.Context) {
	principal, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	feed, err := h.exportSvc.AbsenceICS(c.Request.Context(), principal)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="abwesenheiten.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNotAuthorized):
		response.Forbidden(c, 10003, service.ErrExportNotAuthorized.Error())
	case errors.Is(err, service.ErrExportMonthInvalid):
		response.BadRequest(c, 18001, service.ErrExportMonthInvalid.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
