package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User          UserRepository
	Absence       AbsenceRequestRepository
	News          NewsRepository
	ScheduledPost ScheduledPostRepository
	Application   ApplicationRepository
	Maintenance   MaintenanceRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Absence:       NewAbsenceRequestRepo(db),
		News:          NewNewsRepo(db),
		ScheduledPost: NewScheduledPostRepo(db),
		Application:   NewApplicationRepo(db),
		Maintenance:   NewMaintenanceRepo(db),
	}
}
