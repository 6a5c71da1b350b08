package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/repository"
)

func setupTestAbsenceService() (*absenceService, *mockUserRepo, *mockAbsenceRepo) {
	userRepo := newMockUserRepo()
	absenceRepo := newMockAbsenceRepo(userRepo)
	repo := &repository.Repository{
		User:          userRepo,
		Absence:       absenceRepo,
		News:          newMockNewsRepo(),
		ScheduledPost: newMockScheduledPostRepo(),
		Application:   newMockApplicationRepo(),
		Maintenance:   newMockMaintenanceRepo(),
	}

	svc := NewAbsenceService(repo, nil, nil, zap.NewNop()).(*absenceService)
	return svc, userRepo, absenceRepo
}

func seedUser(userRepo *mockUserRepo, id, name, role string) *model.User {
	user := &model.User{UserID: id, Name: name, Role: role, PasswordHash: "x"}
	userRepo.users[id] = user
	return user
}

func seedAbsence(t *testing.T, svc *absenceService, userID, start, end string) *dto.AbsenceResponse {
	t.Helper()
	resp, err := svc.Submit(context.Background(), Principal{UserID: userID, Role: model.RoleContent},
		&dto.SubmitAbsenceRequest{StartDate: start, EndDate: end})
	if err != nil {
		t.Fatalf("seeding absence failed: %v", err)
	}
	return resp
}

// ── Submit ──

func TestSubmit_CreatesPending(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	resp, err := svc.Submit(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.SubmitAbsenceRequest{StartDate: "2026-09-10", EndDate: "2026-09-12", Reason: "Urlaub"})
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}
	if resp.Status != model.AbsenceStatusPending {
		t.Errorf("expected status PENDING, got %s", resp.Status)
	}
	if resp.RequestedBy.ID != "u1" || resp.RequestedBy.Name != "Anna" {
		t.Errorf("requester not resolved: %+v", resp.RequestedBy)
	}
	if resp.ApprovedOrRejectedBy != nil {
		t.Error("a new request must not carry a decider")
	}
	if resp.StartDate != "2026-09-10" || resp.EndDate != "2026-09-12" {
		t.Errorf("dates not round-tripped: %s..%s", resp.StartDate, resp.EndDate)
	}
}

func TestSubmit_AuditFields(t *testing.T) {
	svc, userRepo, absenceRepo := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	resp := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-10")

	stored := absenceRepo.requests[resp.ID]
	if stored.CreatedBy == nil || *stored.CreatedBy != "u1" {
		t.Error("created_by should be the requester")
	}
	if stored.UpdatedBy == nil || *stored.UpdatedBy != "u1" {
		t.Error("updated_by should be the requester")
	}
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	svc, userRepo, absenceRepo := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	_, err := svc.Submit(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.SubmitAbsenceRequest{StartDate: "2026-09-12", EndDate: "2026-09-10"})
	if !errors.Is(err, ErrAbsenceEndBeforeStart) {
		t.Errorf("expected ErrAbsenceEndBeforeStart, got %v", err)
	}
	if len(absenceRepo.requests) != 0 {
		t.Error("a rejected submission must not create a record")
	}
}

func TestSubmit_SingleDayAllowed(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	// start == end is a one-day absence, not an inverted range
	if _, err := svc.Submit(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.SubmitAbsenceRequest{StartDate: "2026-09-10", EndDate: "2026-09-10"}); err != nil {
		t.Errorf("single-day request should succeed: %v", err)
	}
}

func TestSubmit_MissingDates(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	_, err := svc.Submit(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.SubmitAbsenceRequest{StartDate: "2026-09-10"})
	if !errors.Is(err, ErrAbsenceDatesRequired) {
		t.Errorf("expected ErrAbsenceDatesRequired, got %v", err)
	}
}

func TestSubmit_MalformedDate(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	_, err := svc.Submit(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.SubmitAbsenceRequest{StartDate: "10.09.2026", EndDate: "2026-09-12"})
	if !errors.Is(err, ErrAbsenceDatesInvalid) {
		t.Errorf("expected ErrAbsenceDatesInvalid, got %v", err)
	}
}

func TestSubmit_Unauthenticated(t *testing.T) {
	svc, _, _ := setupTestAbsenceService()

	_, err := svc.Submit(context.Background(), Principal{},
		&dto.SubmitAbsenceRequest{StartDate: "2026-09-10", EndDate: "2026-09-12"})
	if !errors.Is(err, ErrAbsenceNotAuthenticated) {
		t.Errorf("expected ErrAbsenceNotAuthenticated, got %v", err)
	}
}

// ── List ──

func TestList_DefaultsToCurrentAndFuture(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleManagement)

	svc.now = func() time.Time { return time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC) }

	seedAbsence(t, svc, "u1", "2026-09-01", "2026-09-05") // fully past
	ongoing := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-20")
	future := seedAbsence(t, svc, "u1", "2026-10-01", "2026-10-03")
	endsToday := seedAbsence(t, svc, "u1", "2026-09-14", "2026-09-15")

	result, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleManagement},
		&dto.AbsenceListRequest{})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}

	if len(result.Requests) != 3 {
		t.Fatalf("expected 3 current/future requests, got %d", len(result.Requests))
	}
	// ascending by start date
	if result.Requests[0].ID != ongoing.ID ||
		result.Requests[1].ID != endsToday.ID ||
		result.Requests[2].ID != future.ID {
		t.Errorf("unexpected order: %s, %s, %s",
			result.Requests[0].ID, result.Requests[1].ID, result.Requests[2].ID)
	}
}

func TestList_WindowOverlap(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleManagement)

	before := seedAbsence(t, svc, "u1", "2026-08-01", "2026-08-05")
	touchesStart := seedAbsence(t, svc, "u1", "2026-08-28", "2026-09-01")
	inside := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")
	touchesEnd := seedAbsence(t, svc, "u1", "2026-09-30", "2026-10-02")
	after := seedAbsence(t, svc, "u1", "2026-10-10", "2026-10-12")

	result, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleManagement},
		&dto.AbsenceListRequest{StartDate: "2026-09-01", EndDate: "2026-09-30"})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}

	got := make(map[string]bool)
	for _, r := range result.Requests {
		got[r.ID] = true
	}
	if !got[touchesStart.ID] || !got[inside.ID] || !got[touchesEnd.ID] {
		t.Error("boundary-touching requests must be included")
	}
	if got[before.ID] || got[after.ID] {
		t.Error("requests outside the window must be excluded")
	}
}

func TestList_OneSidedWindowRejected(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	_, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.AbsenceListRequest{StartDate: "2026-09-01"})
	if !errors.Is(err, ErrAbsenceDatesRequired) {
		t.Errorf("expected ErrAbsenceDatesRequired, got %v", err)
	}
}

func TestList_InvertedWindowRejected(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	_, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.AbsenceListRequest{StartDate: "2026-09-30", EndDate: "2026-09-01"})
	if !errors.Is(err, ErrAbsenceEndBeforeStart) {
		t.Errorf("expected ErrAbsenceEndBeforeStart, got %v", err)
	}
}

func TestList_NonManagementSeesOwnOnly(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)
	seedUser(userRepo, "u2", "Ben", model.RoleDeveloper)

	svc.now = func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) }

	own := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")
	seedAbsence(t, svc, "u2", "2026-09-11", "2026-09-13")

	result, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.AbsenceListRequest{})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}

	if len(result.Requests) != 1 || result.Requests[0].ID != own.ID {
		t.Errorf("non-Management caller should receive only own requests in full, got %d", len(result.Requests))
	}
	if len(result.Summaries) != 0 {
		t.Errorf("summaries must be opt-in, got %d", len(result.Summaries))
	}
}

func TestList_SummariesOmitReason(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)
	seedUser(userRepo, "u2", "Ben", model.RoleDeveloper)

	svc.now = func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) }

	seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")
	other, err := svc.Submit(context.Background(), Principal{UserID: "u2", Role: model.RoleDeveloper},
		&dto.SubmitAbsenceRequest{StartDate: "2026-09-11", EndDate: "2026-09-13", Reason: "Arzttermin"})
	if err != nil {
		t.Fatalf("Submit should succeed: %v", err)
	}

	result, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleContent},
		&dto.AbsenceListRequest{AllSummary: true})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}

	if len(result.Summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(result.Summaries))
	}
	s := result.Summaries[0]
	if s.ID != other.ID || s.RequestedBy != "Ben" {
		t.Errorf("unexpected summary: %+v", s)
	}
	if s.StartDate != "2026-09-11" || s.EndDate != "2026-09-13" || s.Status != model.AbsenceStatusPending {
		t.Errorf("summary should carry dates and status: %+v", s)
	}
}

func TestList_ManagementSeesAllInFull(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleManagement)
	seedUser(userRepo, "u2", "Ben", model.RoleContent)

	svc.now = func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) }

	seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")
	seedAbsence(t, svc, "u2", "2026-09-11", "2026-09-13")

	result, err := svc.List(context.Background(), Principal{UserID: "u1", Role: model.RoleManagement},
		&dto.AbsenceListRequest{})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}

	if len(result.Requests) != 2 {
		t.Errorf("Management should see every request in full, got %d", len(result.Requests))
	}
	if len(result.Summaries) != 0 {
		t.Errorf("Management receives no summaries, got %d", len(result.Summaries))
	}
}

// ── UpdateStatus ──

func TestUpdateStatus_Approve(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "mgr", "Maria", model.RoleManagement)
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	decidedAt := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return decidedAt }

	created := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")

	resp, err := svc.UpdateStatus(context.Background(),
		Principal{UserID: "mgr", Role: model.RoleManagement}, created.ID, model.AbsenceStatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus should succeed: %v", err)
	}
	if resp.Status != model.AbsenceStatusApproved {
		t.Errorf("expected APPROVED, got %s", resp.Status)
	}
	if resp.ApprovedOrRejectedBy == nil || resp.ApprovedOrRejectedBy.ID != "mgr" {
		t.Errorf("decider not recorded: %+v", resp.ApprovedOrRejectedBy)
	}
	if resp.UpdatedAt != decidedAt.Format("2006-01-02T15:04:05Z") {
		t.Errorf("updated_at should reflect the decision time, got %s", resp.UpdatedAt)
	}
}

func TestUpdateStatus_NonManagementForbidden(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleAdmin)

	created := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")

	for _, role := range []string{model.RoleAdmin, model.RoleDeveloper, model.RoleContent} {
		_, err := svc.UpdateStatus(context.Background(),
			Principal{UserID: "u1", Role: role}, created.ID, model.AbsenceStatusApproved)
		if !errors.Is(err, ErrAbsenceNotAuthorized) {
			t.Errorf("role %s: expected ErrAbsenceNotAuthorized, got %v", role, err)
		}
	}

	// target record untouched
	unchanged, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID should succeed: %v", err)
	}
	if unchanged.Status != model.AbsenceStatusPending || unchanged.ApprovedOrRejectedBy != nil {
		t.Errorf("forbidden call must not mutate the record: %+v", unchanged)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "mgr", "Maria", model.RoleManagement)
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	created := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")

	_, err := svc.UpdateStatus(context.Background(),
		Principal{UserID: "mgr", Role: model.RoleManagement}, created.ID, "MAYBE")
	if !errors.Is(err, ErrAbsenceInvalidStatus) {
		t.Errorf("expected ErrAbsenceInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "mgr", "Maria", model.RoleManagement)

	_, err := svc.UpdateStatus(context.Background(),
		Principal{UserID: "mgr", Role: model.RoleManagement}, "missing", model.AbsenceStatusApproved)
	if !errors.Is(err, ErrAbsenceNotFound) {
		t.Errorf("expected ErrAbsenceNotFound, got %v", err)
	}
}

func TestUpdateStatus_RedecisionOverwrites(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "mgr1", "Maria", model.RoleManagement)
	seedUser(userRepo, "mgr2", "Martin", model.RoleManagement)
	seedUser(userRepo, "u1", "Anna", model.RoleContent)

	created := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")

	if _, err := svc.UpdateStatus(context.Background(),
		Principal{UserID: "mgr1", Role: model.RoleManagement}, created.ID, model.AbsenceStatusApproved); err != nil {
		t.Fatalf("first decision should succeed: %v", err)
	}

	resp, err := svc.UpdateStatus(context.Background(),
		Principal{UserID: "mgr2", Role: model.RoleManagement}, created.ID, model.AbsenceStatusRejected)
	if err != nil {
		t.Fatalf("re-decision should succeed: %v", err)
	}
	if resp.Status != model.AbsenceStatusRejected {
		t.Errorf("re-decision should overwrite, got %s", resp.Status)
	}
	if resp.ApprovedOrRejectedBy == nil || resp.ApprovedOrRejectedBy.ID != "mgr2" {
		t.Errorf("decider should be the later manager: %+v", resp.ApprovedOrRejectedBy)
	}
}

// ── SessionInfo ──

func TestSessionInfo(t *testing.T) {
	svc, _, _ := setupTestAbsenceService()

	anon := svc.SessionInfo(Principal{})
	if anon.Role != nil || anon.UserID != nil {
		t.Errorf("anonymous session should be empty: %+v", anon)
	}

	info := svc.SessionInfo(Principal{UserID: "u1", Role: model.RoleDeveloper})
	if info.Role == nil || *info.Role != model.RoleDeveloper {
		t.Errorf("expected role Developer, got %v", info.Role)
	}
	if info.UserID == nil || *info.UserID != "u1" {
		t.Errorf("expected userId u1, got %v", info.UserID)
	}
}

// ── GetByID ──

func TestGetByID_Stable(t *testing.T) {
	svc, userRepo, _ := setupTestAbsenceService()
	seedUser(userRepo, "u1", "Anna", model.RoleContent)
	created := seedAbsence(t, svc, "u1", "2026-09-10", "2026-09-12")

	first, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID should succeed: %v", err)
	}
	second, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID should succeed: %v", err)
	}
	if *first != *second {
		t.Errorf("repeated reads must match: %+v vs %+v", first, second)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _ := setupTestAbsenceService()

	_, err := svc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrAbsenceNotFound) {
		t.Errorf("expected ErrAbsenceNotFound, got %v", err)
	}
}
