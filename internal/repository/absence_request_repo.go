package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"funkdesk/backend/internal/model"
)

// AbsenceRequestRepository is the absence-request data-access interface.
// There is no delete: absence requests are never physically removed.
type AbsenceRequestRepository interface {
	Create(ctx context.Context, req *model.AbsenceRequest) error
	GetByID(ctx context.Context, id string) (*model.AbsenceRequest, error)
	// List returns every request, ascending by start date, with requester
	// and decider resolved for display.
	List(ctx context.Context) ([]model.AbsenceRequest, error)
	// ListOverlapping returns requests intersecting the inclusive window
	// [qStart, qEnd]: start_date <= qEnd AND end_date >= qStart.
	ListOverlapping(ctx context.Context, qStart, qEnd time.Time) ([]model.AbsenceRequest, error)
	// ListCurrentAndFuture returns requests whose end date has not passed.
	ListCurrentAndFuture(ctx context.Context, today time.Time) ([]model.AbsenceRequest, error)
	Update(ctx context.Context, req *model.AbsenceRequest) error
}

type absenceRequestRepo struct {
	db *gorm.DB
}

// NewAbsenceRequestRepo creates the GORM-backed AbsenceRequestRepository.
func NewAbsenceRequestRepo(db *gorm.DB) AbsenceRequestRepository {
	return &absenceRequestRepo{db: db}
}

func (r *absenceRequestRepo) Create(ctx context.Context, req *model.AbsenceRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *absenceRequestRepo) GetByID(ctx context.Context, id string) (*model.AbsenceRequest, error) {
	var req model.AbsenceRequest
	err := r.db.WithContext(ctx).
		Preload("RequestedBy").
		Preload("ApprovedOrRejectedBy").
		Where("absence_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *absenceRequestRepo) List(ctx context.Context) ([]model.AbsenceRequest, error) {
	var reqs []model.AbsenceRequest
	err := r.db.WithContext(ctx).
		Preload("RequestedBy").
		Preload("ApprovedOrRejectedBy").
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *absenceRequestRepo) ListOverlapping(ctx context.Context, qStart, qEnd time.Time) ([]model.AbsenceRequest, error) {
	var reqs []model.AbsenceRequest
	err := r.db.WithContext(ctx).
		Preload("RequestedBy").
		Preload("ApprovedOrRejectedBy").
		Where("start_date <= ? AND end_date >= ?", qEnd, qStart).
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *absenceRequestRepo) ListCurrentAndFuture(ctx context.Context, today time.Time) ([]model.AbsenceRequest, error) {
	var reqs []model.AbsenceRequest
	err := r.db.WithContext(ctx).
		Preload("RequestedBy").
		Preload("ApprovedOrRejectedBy").
		Where("end_date >= ?", today).
		Order("start_date ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *absenceRequestRepo) Update(ctx context.Context, req *model.AbsenceRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
