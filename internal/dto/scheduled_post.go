package dto

// ── scheduled posts ──

// CreateScheduledPostRequest creates a content-calendar entry.
type CreateScheduledPostRequest struct {
	Title       string `json:"title"        binding:"required,min=1,max=200"`
	Content     string `json:"content"      binding:"required"`
	ScheduledAt string `json:"scheduled_at" binding:"required"` // RFC 3339
	Status      string `json:"status"       binding:"omitempty"`
}

// UpdateScheduledPostRequest updates a content-calendar entry. Version must
// match the stored record or the update is rejected as a stale edit.
type UpdateScheduledPostRequest struct {
	Title       *string `json:"title"        binding:"omitempty,min=1,max=200"`
	Content     *string `json:"content"`
	ScheduledAt *string `json:"scheduled_at"`
	Status      *string `json:"status"`
	Version     int     `json:"version"      binding:"required,min=1"`
}

// ScheduledPostResponse is the content-calendar projection.
type ScheduledPostResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ScheduledAt string `json:"scheduled_at"`
	Status      string `json:"status"`
	Version     int    `json:"version"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
