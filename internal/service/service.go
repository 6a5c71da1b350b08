package service

import (
	"go.uber.org/zap"

	"funkdesk/backend/config"
	"funkdesk/backend/internal/repository"
	"funkdesk/backend/pkg/jwt"
	"funkdesk/backend/pkg/mailbox"
	"funkdesk/backend/pkg/notify"
	"funkdesk/backend/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth          AuthService
	User          UserService
	Absence       AbsenceService
	News          NewsService
	ScheduledPost ScheduledPostService
	Application   ApplicationService
	Maintenance   MaintenanceService
	Export        ExportService
	Mail          MailService
	Cloud         CloudService
}

// NewService wires the service aggregate. rdb and notifier may be nil; the
// affected features degrade instead of failing.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	notifier *notify.Notifier,
	mailReader *mailbox.Reader,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:          NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:          NewUserService(repo, logger),
		Absence:       NewAbsenceService(repo, rdb, notifier, logger),
		News:          NewNewsService(repo, logger),
		ScheduledPost: NewScheduledPostService(repo, logger),
		Application:   NewApplicationService(repo, logger),
		Maintenance:   NewMaintenanceService(repo, logger),
		Export:        NewExportService(repo, logger),
		Mail:          NewMailService(mailReader, logger),
		Cloud:         NewCloudService(&cfg.Cloud, logger),
	}
}
