package repository

import (
	"context"

	"gorm.io/gorm"

	"funkdesk/backend/internal/model"
)

// MaintenanceRepository accesses the maintenance-config singleton row.
type MaintenanceRepository interface {
	Get(ctx context.Context) (*model.MaintenanceConfig, error)
	Update(ctx context.Context, cfg *model.MaintenanceConfig) error
}

type maintenanceRepo struct {
	db *gorm.DB
}

// NewMaintenanceRepo creates the GORM-backed MaintenanceRepository.
func NewMaintenanceRepo(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Get(ctx context.Context) (*model.MaintenanceConfig, error) {
	var cfg model.MaintenanceConfig
	// The initial migration seeds exactly one row.
	err := r.db.WithContext(ctx).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *maintenanceRepo) Update(ctx context.Context, cfg *model.MaintenanceConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
