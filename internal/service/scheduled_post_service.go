package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/repository"
	pkgerrors "funkdesk/backend/pkg/errors"
)

// ── scheduled-post business errors ──

var (
	ErrPostNotFound      = errors.New("Geplanter Beitrag nicht gefunden.")
	ErrPostStatusInvalid = errors.New("Ungültiger Beitragsstatus.")
	ErrPostTimeInvalid   = errors.New("Ungültiger Zeitpunkt. Erwartet wird RFC 3339.")
	ErrPostStaleEdit     = pkgerrors.ErrOptimisticLock
)

// ScheduledPostService manages the content calendar.
type ScheduledPostService interface {
	Create(ctx context.Context, req *dto.CreateScheduledPostRequest, callerID string) (*dto.ScheduledPostResponse, error)
	List(ctx context.Context) ([]dto.ScheduledPostResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ScheduledPostResponse, error)
	// Update applies a partial edit. The request version must match the
	// stored one; stale edits fail with ErrPostStaleEdit.
	Update(ctx context.Context, id string, req *dto.UpdateScheduledPostRequest, callerID string) (*dto.ScheduledPostResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type scheduledPostService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduledPostService creates the ScheduledPostService.
func NewScheduledPostService(repo *repository.Repository, logger *zap.Logger) ScheduledPostService {
	return &scheduledPostService{repo: repo, logger: logger}
}

func (s *scheduledPostService) Create(ctx context.Context, req *dto.CreateScheduledPostRequest, callerID string) (*dto.ScheduledPostResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrPostTimeInvalid
	}

	status := req.Status
	if status == "" {
		status = model.PostStatusDraft
	}
	if !model.ValidPostStatus(status) {
		return nil, ErrPostStatusInvalid
	}

	post := &model.ScheduledPost{
		Title:       req.Title,
		Content:     req.Content,
		ScheduledAt: scheduledAt,
		Status:      status,
	}
	post.CreatedBy = &callerID
	post.UpdatedBy = &callerID
	post.Version = 1

	if err := s.repo.ScheduledPost.Create(ctx, post); err != nil {
		s.logger.Error("creating scheduled post failed", zap.Error(err))
		return nil, err
	}

	return toScheduledPostResponse(post), nil
}

func (s *scheduledPostService) List(ctx context.Context) ([]dto.ScheduledPostResponse, error) {
	posts, err := s.repo.ScheduledPost.List(ctx)
	if err != nil {
		s.logger.Error("listing scheduled posts failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduledPostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, *toScheduledPostResponse(&posts[i]))
	}
	return result, nil
}

func (s *scheduledPostService) GetByID(ctx context.Context, id string) (*dto.ScheduledPostResponse, error) {
	post, err := s.repo.ScheduledPost.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("fetching scheduled post failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toScheduledPostResponse(post), nil
}

func (s *scheduledPostService) Update(ctx context.Context, id string, req *dto.UpdateScheduledPostRequest, callerID string) (*dto.ScheduledPostResponse, error) {
	post, err := s.repo.ScheduledPost.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("fetching scheduled post failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *req.ScheduledAt)
		if err != nil {
			return nil, ErrPostTimeInvalid
		}
		post.ScheduledAt = scheduledAt
	}
	if req.Status != nil {
		if !model.ValidPostStatus(*req.Status) {
			return nil, ErrPostStatusInvalid
		}
		post.Status = *req.Status
	}
	post.UpdatedBy = &callerID

	if err := s.repo.ScheduledPost.UpdateVersioned(ctx, post, req.Version); err != nil {
		if errors.Is(err, pkgerrors.ErrOptimisticLock) {
			return nil, ErrPostStaleEdit
		}
		s.logger.Error("updating scheduled post failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toScheduledPostResponse(post), nil
}

func (s *scheduledPostService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.ScheduledPost.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("looking up scheduled post failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.ScheduledPost.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("deleting scheduled post failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func toScheduledPostResponse(p *model.ScheduledPost) *dto.ScheduledPostResponse {
	return &dto.ScheduledPostResponse{
		ID:          p.ScheduledPostID,
		Title:       p.Title,
		Content:     p.Content,
		ScheduledAt: p.ScheduledAt.Format(time.RFC3339),
		Status:      p.Status,
		Version:     p.Version,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
