package model

import "time"

// Scheduled-post states, matching the content calendar.
const (
	PostStatusDraft     = "DRAFT"
	PostStatusScheduled = "SCHEDULED"
	PostStatusPublished = "PUBLISHED"
	PostStatusArchived  = "ARCHIVED"
)

// ValidPostStatus reports whether a status string is one of the known states.
func ValidPostStatus(status string) bool {
	switch status {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// ScheduledPost maps to the scheduled_posts table. Updates are guarded by
// the Version column so two editors cannot silently overwrite each other.
type ScheduledPost struct {
	ScheduledPostID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"scheduled_post_id"`
	Title           string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Content         string    `gorm:"type:text;not null"                             json:"content"`
	ScheduledAt     time.Time `gorm:"not null"                                       json:"scheduled_at"`
	Status          string    `gorm:"type:varchar(20);not null;default:'DRAFT'"      json:"status"`
	VersionedModel
}

// TableName sets the table name.
func (ScheduledPost) TableName() string { return "scheduled_posts" }
