package repository

import (
	"context"

	"gorm.io/gorm"

	"funkdesk/backend/internal/model"
)

// NewsRepository is the news data-access interface.
type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	GetByID(ctx context.Context, id string) (*model.News, error)
	List(ctx context.Context) ([]model.News, error)
	Delete(ctx context.Context, id string, deletedBy string) error
}

type newsRepo struct {
	db *gorm.DB
}

// NewNewsRepo creates the GORM-backed NewsRepository.
func NewNewsRepo(db *gorm.DB) NewsRepository {
	return &newsRepo{db: db}
}

func (r *newsRepo) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepo) GetByID(ctx context.Context, id string) (*model.News, error) {
	var news model.News
	err := r.db.WithContext(ctx).Where("news_id = ?", id).First(&news).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (r *newsRepo) List(ctx context.Context) ([]model.News, error) {
	var news []model.News
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&news).Error
	return news, err
}

func (r *newsRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.News{}).
		Where("news_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
