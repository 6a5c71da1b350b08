package model

import "time"

// Absence request lifecycle. Created as PENDING; a Management decision moves
// it to APPROVED or REJECTED. Decisions may be overwritten by later ones.
const (
	AbsenceStatusPending  = "PENDING"
	AbsenceStatusApproved = "APPROVED"
	AbsenceStatusRejected = "REJECTED"
)

// ValidAbsenceStatus reports whether a status string is one of the known
// lifecycle states.
func ValidAbsenceStatus(status string) bool {
	switch status {
	case AbsenceStatusPending, AbsenceStatusApproved, AbsenceStatusRejected:
		return true
	}
	return false
}

// AbsenceRequest maps to the absence_requests table. StartDate and EndDate
// are whole-day boundaries; the end date is inclusive.
type AbsenceRequest struct {
	AbsenceRequestID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"absence_request_id"`
	RequestedByID          string    `gorm:"type:uuid;not null"                             json:"requested_by_id"`
	StartDate              time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate                time.Time `gorm:"type:date;not null"                             json:"end_date"`
	Reason                 string    `gorm:"type:varchar(500)"                              json:"reason,omitempty"`
	Status                 string    `gorm:"type:varchar(20);not null;default:'PENDING'"    json:"status"`
	ApprovedOrRejectedByID *string   `gorm:"type:uuid"                                      json:"approved_or_rejected_by_id,omitempty"`
	SoftDeleteModel

	// associations
	RequestedBy          *User `gorm:"foreignKey:RequestedByID;references:UserID"          json:"requested_by,omitempty"`
	ApprovedOrRejectedBy *User `gorm:"foreignKey:ApprovedOrRejectedByID;references:UserID" json:"approved_or_rejected_by,omitempty"`
}

// TableName sets the table name.
func (AbsenceRequest) TableName() string { return "absence_requests" }
