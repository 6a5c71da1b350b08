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

var ErrNewsNotFound = errors.New("News-Beitrag nicht gefunden.")

// NewsService manages news posts.
type NewsService interface {
	Create(ctx context.Context, req *dto.CreateNewsRequest, callerID string) (*dto.NewsResponse, error)
	List(ctx context.Context) ([]dto.NewsResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type newsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNewsService creates the NewsService.
func NewNewsService(repo *repository.Repository, logger *zap.Logger) NewsService {
	return &newsService{repo: repo, logger: logger}
}

func (s *newsService) Create(ctx context.Context, req *dto.CreateNewsRequest, callerID string) (*dto.NewsResponse, error) {
	news := &model.News{
		Content: req.Content,
		Image:   req.Image,
	}
	news.CreatedBy = &callerID
	news.UpdatedBy = &callerID

	if err := s.repo.News.Create(ctx, news); err != nil {
		s.logger.Error("creating news failed", zap.Error(err))
		return nil, err
	}

	return toNewsResponse(news), nil
}

func (s *newsService) List(ctx context.Context) ([]dto.NewsResponse, error) {
	news, err := s.repo.News.List(ctx)
	if err != nil {
		s.logger.Error("listing news failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.NewsResponse, 0, len(news))
	for i := range news {
		result = append(result, *toNewsResponse(&news[i]))
	}
	return result, nil
}

func (s *newsService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.News.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNewsNotFound
		}
		s.logger.Error("looking up news failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.News.Delete(ctx, id, callerID); err != nil {
		s.logger.Error("deleting news failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func toNewsResponse(n *model.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		ID:        n.NewsID,
		Content:   n.Content,
		Image:     n.Image,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
