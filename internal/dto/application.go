package dto

// ── applications (Bewerbungen) ──

// CreateApplicationRequest creates a job posting.
type CreateApplicationRequest struct {
	Title       string  `json:"title"       binding:"required,min=1,max=200"`
	Description string  `json:"description" binding:"required"`
	Image       *string `json:"image"       binding:"omitempty,max=500"`
}

// UpdateApplicationRequest updates a job posting.
type UpdateApplicationRequest struct {
	Title       *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Image       *string `json:"image"       binding:"omitempty,max=500"`
}

// SetArchivedRequest toggles the archive flag.
type SetArchivedRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}

// ApplicationResponse is the job-posting projection.
type ApplicationResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
	Archived    bool    `json:"archived"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
