package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/repository"
)

var ErrMaintenanceNotAuthorized = errors.New("Nicht autorisiert. Nur Management-Benutzer können den Wartungsmodus ändern.")

// MaintenanceService manages the maintenance-mode singleton.
type MaintenanceService interface {
	// Get returns the current state. Readable without a role gate so the
	// public site can check the flag.
	Get(ctx context.Context) (*dto.MaintenanceResponse, error)
	// IsActive is the cheap check the maintenance middleware runs per
	// request. Lookup failures report inactive so an outage never locks
	// everyone out.
	IsActive(ctx context.Context) bool
	SetMode(ctx context.Context, principal Principal, active bool) (*dto.MaintenanceResponse, error)
	SetPassword(ctx context.Context, principal Principal, password string) error
}

type maintenanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaintenanceService creates the MaintenanceService.
func NewMaintenanceService(repo *repository.Repository, logger *zap.Logger) MaintenanceService {
	return &maintenanceService{repo: repo, logger: logger}
}

func (s *maintenanceService) Get(ctx context.Context) (*dto.MaintenanceResponse, error) {
	cfg, err := s.repo.Maintenance.Get(ctx)
	if err != nil {
		s.logger.Error("reading maintenance config failed", zap.Error(err))
		return nil, err
	}
	return &dto.MaintenanceResponse{
		Active:    cfg.Active,
		UpdatedAt: cfg.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

func (s *maintenanceService) IsActive(ctx context.Context) bool {
	cfg, err := s.repo.Maintenance.Get(ctx)
	if err != nil {
		s.logger.Warn("maintenance check failed, assuming inactive", zap.Error(err))
		return false
	}
	return cfg.Active
}

func (s *maintenanceService) SetMode(ctx context.Context, principal Principal, active bool) (*dto.MaintenanceResponse, error) {
	if !Allowed(OpManageMaintenance, principal.Role) {
		return nil, ErrMaintenanceNotAuthorized
	}

	cfg, err := s.repo.Maintenance.Get(ctx)
	if err != nil {
		s.logger.Error("reading maintenance config failed", zap.Error(err))
		return nil, err
	}

	cfg.Active = active
	cfg.UpdatedBy = &principal.UserID

	if err := s.repo.Maintenance.Update(ctx, cfg); err != nil {
		s.logger.Error("updating maintenance config failed", zap.Error(err))
		return nil, err
	}

	return &dto.MaintenanceResponse{
		Active:    cfg.Active,
		UpdatedAt: cfg.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

func (s *maintenanceService) SetPassword(ctx context.Context, principal Principal, password string) error {
	if !Allowed(OpManageMaintenance, principal.Role) {
		return ErrMaintenanceNotAuthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing maintenance password failed", zap.Error(err))
		return err
	}

	cfg, err := s.repo.Maintenance.Get(ctx)
	if err != nil {
		s.logger.Error("reading maintenance config failed", zap.Error(err))
		return err
	}

	hashStr := string(hash)
	cfg.PasswordHash = &hashStr
	cfg.UpdatedBy = &principal.UserID

	if err := s.repo.Maintenance.Update(ctx, cfg); err != nil {
		s.logger.Error("storing maintenance password failed", zap.Error(err))
		return err
	}

	return nil
}
