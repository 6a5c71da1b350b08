package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/repository"
	"funkdesk/backend/pkg/notify"
	"funkdesk/backend/pkg/redis"
)

// ── absence business errors ──

var (
	ErrAbsenceNotAuthenticated = errors.New("Nicht authentifiziert. Bitte melden Sie sich an.")
	ErrAbsenceDatesRequired    = errors.New("Start- und Enddatum sind erforderlich.")
	ErrAbsenceDatesInvalid     = errors.New("Ungültiges Datumsformat. Erwartet wird JJJJ-MM-TT.")
	ErrAbsenceEndBeforeStart   = errors.New("Das Enddatum darf nicht vor dem Startdatum liegen.")
	ErrAbsenceNotAuthorized    = errors.New("Nicht autorisiert. Nur Management-Benutzer können Anträge bearbeiten.")
	ErrAbsenceInvalidStatus    = errors.New("Ungültige Anfrageparameter.")
	ErrAbsenceNotFound         = errors.New("Antrag nicht gefunden.")
)

// AbsenceListCacheKey is the listing key mutations invalidate so cached
// dashboard views refresh after a submit or decision.
const AbsenceListCacheKey = "absences:list"

// AbsenceService owns the absence-request workflow: submission by any
// authenticated user, listing with date-window filtering, and the
// Management-gated decision.
type AbsenceService interface {
	Submit(ctx context.Context, principal Principal, req *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error)
	List(ctx context.Context, principal Principal, req *dto.AbsenceListRequest) (*dto.AbsenceListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AbsenceResponse, error)
	UpdateStatus(ctx context.Context, principal Principal, requestID, newStatus string) (*dto.AbsenceResponse, error)
	SessionInfo(principal Principal) *dto.SessionResponse
}

type absenceService struct {
	repo     *repository.Repository
	rdb      *redis.Client
	notifier *notify.Notifier
	logger   *zap.Logger
	now      func() time.Time // injectable for tests
}

// NewAbsenceService creates the AbsenceService. rdb and notifier may be nil.
func NewAbsenceService(repo *repository.Repository, rdb *redis.Client, notifier *notify.Notifier, logger *zap.Logger) AbsenceService {
	return &absenceService{
		repo:     repo,
		rdb:      rdb,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// ────────────────────── Submit ──────────────────────

func (s *absenceService) Submit(ctx context.Context, principal Principal, req *dto.SubmitAbsenceRequest) (*dto.AbsenceResponse, error) {
	if !principal.Authenticated() {
		return nil, ErrAbsenceNotAuthenticated
	}
	if req.StartDate == "" || req.EndDate == "" {
		return nil, ErrAbsenceDatesRequired
	}

	start, err := ParseDay(req.StartDate)
	if err != nil {
		return nil, ErrAbsenceDatesInvalid
	}
	end, err := ParseDay(req.EndDate)
	if err != nil {
		return nil, ErrAbsenceDatesInvalid
	}
	if end.Before(start) {
		return nil, ErrAbsenceEndBeforeStart
	}

	record := &model.AbsenceRequest{
		RequestedByID: principal.UserID,
		StartDate:     start,
		EndDate:       end,
		Reason:        req.Reason,
		Status:        model.AbsenceStatusPending,
	}
	record.CreatedBy = &principal.UserID
	record.UpdatedBy = &principal.UserID

	if err := s.repo.Absence.Create(ctx, record); err != nil {
		s.logger.Error("creating absence request failed", zap.Error(err))
		return nil, err
	}

	s.invalidateListing(ctx)
	s.notifier.Send(fmt.Sprintf(
		"Neuer Abwesenheitsantrag: %s bis %s", FormatDay(start), FormatDay(end)))

	// Reload with the requester resolved for display.
	created, err := s.repo.Absence.GetByID(ctx, record.AbsenceRequestID)
	if err != nil {
		s.logger.Error("reloading created absence request failed",
			zap.String("id", record.AbsenceRequestID), zap.Error(err))
		return s.toAbsenceResponse(record), nil
	}
	return s.toAbsenceResponse(created), nil
}

// ────────────────────── List ──────────────────────

// List returns absence requests visible to the principal, ascending by start
// date. Without a window only current and future requests are returned.
// Non-Management callers always receive their own requests in full; other
// users' records are included only as date/status summaries, and only when
// the caller asked for them (calendar view).
func (s *absenceService) List(ctx context.Context, principal Principal, req *dto.AbsenceListRequest) (*dto.AbsenceListResponse, error) {
	if !principal.Authenticated() {
		return nil, ErrAbsenceNotAuthenticated
	}

	var (
		records []model.AbsenceRequest
		err     error
	)
	switch {
	case req.StartDate != "" && req.EndDate != "":
		var qStart, qEnd time.Time
		if qStart, err = ParseDay(req.StartDate); err != nil {
			return nil, ErrAbsenceDatesInvalid
		}
		if qEnd, err = ParseDay(req.EndDate); err != nil {
			return nil, ErrAbsenceDatesInvalid
		}
		if qEnd.Before(qStart) {
			return nil, ErrAbsenceEndBeforeStart
		}
		records, err = s.repo.Absence.ListOverlapping(ctx, qStart, qEnd)
	case req.StartDate != "" || req.EndDate != "":
		return nil, ErrAbsenceDatesRequired
	default:
		records, err = s.repo.Absence.ListCurrentAndFuture(ctx, StartOfDay(s.now().UTC()))
	}
	if err != nil {
		s.logger.Error("listing absence requests failed", zap.Error(err))
		return nil, err
	}

	seeAll := Allowed(OpViewAllAbsences, principal.Role)

	result := &dto.AbsenceListResponse{Requests: []dto.AbsenceResponse{}}
	for i := range records {
		r := &records[i]
		if seeAll || r.RequestedByID == principal.UserID {
			result.Requests = append(result.Requests, *s.toAbsenceResponse(r))
			continue
		}
		if req.AllSummary {
			result.Summaries = append(result.Summaries, dto.AbsenceSummaryResponse{
				ID:          r.AbsenceRequestID,
				StartDate:   FormatDay(r.StartDate),
				EndDate:     FormatDay(r.EndDate),
				Status:      r.Status,
				RequestedBy: displayName(r.RequestedBy),
			})
		}
	}

	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *absenceService) GetByID(ctx context.Context, id string) (*dto.AbsenceResponse, error) {
	record, err := s.repo.Absence.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsenceNotFound
		}
		s.logger.Error("fetching absence request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toAbsenceResponse(record), nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus decides a request. Re-decision is allowed: an earlier
// APPROVED or REJECTED may be overwritten by any later authorized call.
// Concurrent decisions are last-writer-wins.
func (s *absenceService) UpdateStatus(ctx context.Context, principal Principal, requestID, newStatus string) (*dto.AbsenceResponse, error) {
	if !principal.Authenticated() || !Allowed(OpDecideAbsence, principal.Role) {
		return nil, ErrAbsenceNotAuthorized
	}
	if requestID == "" || !model.ValidAbsenceStatus(newStatus) {
		return nil, ErrAbsenceInvalidStatus
	}

	record, err := s.repo.Absence.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAbsenceNotFound
		}
		s.logger.Error("fetching absence request failed", zap.String("id", requestID), zap.Error(err))
		return nil, err
	}

	record.Status = newStatus
	record.ApprovedOrRejectedByID = &principal.UserID
	record.UpdatedBy = &principal.UserID
	record.UpdatedAt = s.now()

	if err := s.repo.Absence.Update(ctx, record); err != nil {
		s.logger.Error("updating absence status failed", zap.String("id", requestID), zap.Error(err))
		return nil, err
	}

	s.invalidateListing(ctx)
	if newStatus != model.AbsenceStatusPending {
		action := "abgelehnt"
		if newStatus == model.AbsenceStatusApproved {
			action = "genehmigt"
		}
		s.notifier.Send(fmt.Sprintf("Abwesenheitsantrag %s (%s bis %s)",
			action, FormatDay(record.StartDate), FormatDay(record.EndDate)))
	}

	updated, err := s.repo.Absence.GetByID(ctx, requestID)
	if err != nil {
		return s.toAbsenceResponse(record), nil
	}
	return s.toAbsenceResponse(updated), nil
}

// ────────────────────── SessionInfo ──────────────────────

// SessionInfo is a pure projection for the UI; enforcement happens in
// UpdateStatus, never here.
func (s *absenceService) SessionInfo(principal Principal) *dto.SessionResponse {
	if !principal.Authenticated() || principal.Role == "" {
		return &dto.SessionResponse{}
	}
	role := principal.Role
	userID := principal.UserID
	return &dto.SessionResponse{Role: &role, UserID: &userID}
}

// ── helpers ──

func (s *absenceService) invalidateListing(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.InvalidateListing(ctx, AbsenceListCacheKey)
	}
}

func displayName(u *model.User) string {
	if u == nil {
		return "Unbekannt"
	}
	return u.Name
}

func (s *absenceService) toAbsenceResponse(r *model.AbsenceRequest) *dto.AbsenceResponse {
	resp := &dto.AbsenceResponse{
		ID:        r.AbsenceRequestID,
		StartDate: FormatDay(r.StartDate),
		EndDate:   FormatDay(r.EndDate),
		Reason:    r.Reason,
		Status:    r.Status,
		RequestedBy: dto.UserRef{
			ID:   r.RequestedByID,
			Name: displayName(r.RequestedBy),
		},
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if r.ApprovedOrRejectedByID != nil {
		resp.ApprovedOrRejectedBy = &dto.UserRef{
			ID:   *r.ApprovedOrRejectedByID,
			Name: displayName(r.ApprovedOrRejectedBy),
		}
	}
	return resp
}
