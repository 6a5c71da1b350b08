package repository

import (
	"context"

	"gorm.io/gorm"

	"funkdesk/backend/internal/model"
	pkgerrors "funkdesk/backend/pkg/errors"
)

// ScheduledPostRepository is the content-calendar data-access interface.
type ScheduledPostRepository interface {
	Create(ctx context.Context, post *model.ScheduledPost) error
	GetByID(ctx context.Context, id string) (*model.ScheduledPost, error)
	List(ctx context.Context) ([]model.ScheduledPost, error)
	// UpdateVersioned persists the record only if its stored version still
	// matches expectedVersion, bumping the version on success. Returns
	// pkg/errors.ErrOptimisticLock on a stale edit.
	UpdateVersioned(ctx context.Context, post *model.ScheduledPost, expectedVersion int) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type scheduledPostRepo struct {
	db *gorm.DB
}

// NewScheduledPostRepo creates the GORM-backed ScheduledPostRepository.
func NewScheduledPostRepo(db *gorm.DB) ScheduledPostRepository {
	return &scheduledPostRepo{db: db}
}

func (r *scheduledPostRepo) Create(ctx context.Context, post *model.ScheduledPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *scheduledPostRepo) GetByID(ctx context.Context, id string) (*model.ScheduledPost, error) {
	var post model.ScheduledPost
	err := r.db.WithContext(ctx).Where("scheduled_post_id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *scheduledPostRepo) List(ctx context.Context) ([]model.ScheduledPost, error) {
	var posts []model.ScheduledPost
	err := r.db.WithContext(ctx).
		Order("scheduled_at ASC").
		Find(&posts).Error
	return posts, err
}

func (r *scheduledPostRepo) UpdateVersioned(ctx context.Context, post *model.ScheduledPost, expectedVersion int) error {
	res := r.db.WithContext(ctx).
		Model(&model.ScheduledPost{}).
		Where("scheduled_post_id = ? AND version = ?", post.ScheduledPostID, expectedVersion).
		Updates(map[string]interface{}{
			"title":        post.Title,
			"content":      post.Content,
			"scheduled_at": post.ScheduledAt,
			"status":       post.Status,
			"updated_by":   post.UpdatedBy,
			"updated_at":   gorm.Expr("NOW()"),
			"version":      gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	post.Version = expectedVersion + 1
	return nil
}

func (r *scheduledPostRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.ScheduledPost{}).
		Where("scheduled_post_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
