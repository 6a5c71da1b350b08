package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/repository"
)

func setupTestApplicationService() ApplicationService {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:          userRepo,
		Absence:       newMockAbsenceRepo(userRepo),
		News:          newMockNewsRepo(),
		ScheduledPost: newMockScheduledPostRepo(),
		Application:   newMockApplicationRepo(),
		Maintenance:   newMockMaintenanceRepo(),
	}
	return NewApplicationService(repo, zap.NewNop())
}

func TestApplication_CreateAndArchive(t *testing.T) {
	svc := setupTestApplicationService()

	app, err := svc.Create(context.Background(), &dto.CreateApplicationRequest{
		Title:       "Moderator:in gesucht",
		Description: "Für die Morgensendung.",
	}, "u1")
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if app.Archived {
		t.Error("new postings start unarchived")
	}

	archived, err := svc.SetArchived(context.Background(), app.ID, true, "u1")
	if err != nil {
		t.Fatalf("SetArchived should succeed: %v", err)
	}
	if !archived.Archived {
		t.Error("posting should be archived")
	}
}

func TestApplication_PartialUpdate(t *testing.T) {
	svc := setupTestApplicationService()

	app, err := svc.Create(context.Background(), &dto.CreateApplicationRequest{
		Title:       "Technik",
		Description: "Studio-Technik.",
	}, "u1")
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	title := "Technik (m/w/d)"
	updated, err := svc.Update(context.Background(), app.ID, &dto.UpdateApplicationRequest{
		Title: &title,
	}, "u1")
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.Title != title {
		t.Errorf("title not applied: %s", updated.Title)
	}
	if updated.Description != "Studio-Technik." {
		t.Errorf("untouched field changed: %s", updated.Description)
	}
}

func TestApplication_NotFound(t *testing.T) {
	svc := setupTestApplicationService()

	if err := svc.Delete(context.Background(), "missing", "u1"); !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("expected ErrApplicationNotFound, got %v", err)
	}
}
