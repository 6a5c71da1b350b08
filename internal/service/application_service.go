package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/repository"
)

var ErrApplicationNotFound = errors.New("Bewerbung nicht gefunden.")

// ApplicationService manages job postings.
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest, callerID string) (*dto.ApplicationResponse, error)
	List(ctx context.Context) ([]dto.ApplicationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateApplicationRequest, callerID string) (*dto.ApplicationResponse, error)
	SetArchived(ctx context.Context, id string, archived bool, callerID string) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type applicationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewApplicationService creates the ApplicationService.
func NewApplicationService(repo *repository.Repository, logger *zap.Logger) ApplicationService {
	return &applicationService{repo: repo, logger: logger}
}

func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest, callerID string) (*dto.ApplicationResponse, error) {
	app := &model.Application{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
	app.CreatedBy = &callerID
	app.UpdatedBy = &callerID

	if err := s.repo.Application.Create(ctx, app); err != nil {
		s.logger.Error("creating application failed", zap.Error(err))
		return nil, err
	}

	return toApplicationResponse(app), nil
}

func (s *applicationService) List(ctx context.Context) ([]dto.ApplicationResponse, error) {
	apps, err := s.repo.Application.List(ctx)
	if err != nil {
		s.logger.Error("listing applications failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, *toApplicationResponse(&apps[i]))
	}
	return result, nil
}

func (s *applicationService) Update(ctx context.Context, id string, req *dto.UpdateApplicationRequest, callerID string) (*dto.ApplicationResponse, error) {
	app, err := s.getApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		app.Title = *req.Title
	}
	if req.Description != nil {
		app.Description = *req.Description
	}
	if req.Image != nil {
		app.Image = req.Image
	}
	app.UpdatedBy = &callerID

	if err := s.repo.Application.Update(ctx, app); err != nil {
		s.logger.Error("updating application failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toApplicationResponse(app), nil
}

func (s *applicationService) SetArchived(ctx context.Context, id string, archived bool, callerID string) (*dto.ApplicationResponse, error) {
	app, err := s.getApplication(ctx, id)
	if err != nil {
		return nil, err
	}

	app.Archived = archived
	app.UpdatedBy = &callerID

	if err := s.repo.Application.Update(ctx, app); err != nil {
		s.logger.Error("archiving application failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toApplicationResponse(app), nil
}

func (s *applicationService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.getApplication(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Application.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("deleting application failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *applicationService) getApplication(ctx context.Context, id string) (*model.Application, error) {
	app, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("looking up application failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return app, nil
}

func toApplicationResponse(a *model.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:          a.ApplicationID,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Archived:    a.Archived,
		CreatedAt:   a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
