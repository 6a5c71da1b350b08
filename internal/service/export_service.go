package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/repository"
)

// ── export business errors ──

var (
	ErrExportNotAuthorized = errors.New("Nicht autorisiert. Nur Management-Benutzer können exportieren.")
	ErrExportMonthInvalid  = errors.New("Ungültiger Monat. Erwartet wird JJJJ-MM.")
	ErrExportGenerateFail  = errors.New("Die Exportdatei konnte nicht erzeugt werden.")
)

// ExportService renders absence requests for use outside the dashboard.
//
// Two formats:
//   - a monthly .xlsx sheet for planning meetings (one row per request
//     overlapping the month)
//   - an iCalendar feed of approved absences the station calendar
//     subscribes to
type ExportService interface {
	// ExportAbsencesXLSX exports all requests overlapping the month given
	// as "YYYY-MM". Returns the file content and a suggested filename.
	ExportAbsencesXLSX(ctx context.Context, principal Principal, month string) (*bytes.Buffer, string, error)
	// AbsenceICS serializes every approved absence as an all-day event.
	AbsenceICS(ctx context.Context, principal Principal) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const monthLayout = "2006-01"

func (s *exportService) ExportAbsencesXLSX(ctx context.Context, principal Principal, month string) (*bytes.Buffer, string, error) {
	if !Allowed(OpExportAbsences, principal.Role) {
		return nil, "", ErrExportNotAuthorized
	}

	monthStart, err := time.ParseInLocation(monthLayout, month, time.UTC)
	if err != nil {
		return nil, "", ErrExportMonthInvalid
	}
	monthEnd := monthStart.AddDate(0, 1, -1)

	requests, err := s.repo.Absence.ListOverlapping(ctx, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("listing absences for export failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Abwesenheiten"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Mitarbeiter", "Von", "Bis", "Status", "Grund", "Entschieden von"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, req := range requests {
		decider := ""
		if req.ApprovedOrRejectedBy != nil {
			decider = req.ApprovedOrRejectedBy.Name
		}
		values := []interface{}{
			displayName(req.RequestedBy),
			FormatDay(req.StartDate),
			FormatDay(req.EndDate),
			germanAbsenceStatus(req.Status),
			req.Reason,
			decider,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("writing xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("abwesenheiten-%s.xlsx", month)
	return buf, filename, nil
}

func (s *exportService) AbsenceICS(ctx context.Context, principal Principal) (string, error) {
	if !Allowed(OpExportAbsences, principal.Role) {
		return "", ErrExportNotAuthorized
	}

	requests, err := s.repo.Absence.List(ctx)
	if err != nil {
		s.logger.Error("listing absences for ics failed", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Funkdesk//Abwesenheitskalender//DE")

	for i := range requests {
		req := &requests[i]
		if req.Status != model.AbsenceStatusApproved {
			continue
		}
		event := cal.AddEvent(req.AbsenceRequestID + "@funkdesk")
		event.SetCreatedTime(req.CreatedAt)
		event.SetDtStampTime(req.UpdatedAt)
		event.SetAllDayStartAt(StartOfDay(req.StartDate))
		// DTEND is exclusive in iCalendar; the stored end date is inclusive.
		event.SetAllDayEndAt(StartOfDay(req.EndDate).AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Abwesend: %s", displayName(req.RequestedBy)))
		if req.Reason != "" {
			event.SetDescription(req.Reason)
		}
	}

	return cal.Serialize(), nil
}

func germanAbsenceStatus(status string) string {
	switch status {
	case model.AbsenceStatusPending:
		return "Ausstehend"
	case model.AbsenceStatusApproved:
		return "Genehmigt"
	case model.AbsenceStatusRejected:
		return "Abgelehnt"
	}
	return status
}
