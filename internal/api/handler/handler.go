package handler

import "funkdesk/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth          *AuthHandler
	User          *UserHandler
	Absence       *AbsenceHandler
	News          *NewsHandler
	ScheduledPost *ScheduledPostHandler
	Application   *ApplicationHandler
	Maintenance   *MaintenanceHandler
	Export        *ExportHandler
	Mail          *MailHandler
	Cloud         *CloudHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		User:          NewUserHandler(svc.User),
		Absence:       NewAbsenceHandler(svc.Absence),
		News:          NewNewsHandler(svc.News),
		ScheduledPost: NewScheduledPostHandler(svc.ScheduledPost),
		Application:   NewApplicationHandler(svc.Application),
		Maintenance:   NewMaintenanceHandler(svc.Maintenance),
		Export:        NewExportHandler(svc.Export),
		Mail:          NewMailHandler(svc.Mail),
		Cloud:         NewCloudHandler(svc.Cloud),
	}
}
