package dto

// ── news ──

// CreateNewsRequest creates a news post.
type CreateNewsRequest struct {
	Content string  `json:"content" binding:"required"`
	Image   *string `json:"image"   binding:"omitempty,max=500"`
}

// NewsResponse is the news projection.
type NewsResponse struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	Image     *string `json:"image,omitempty"`
	CreatedAt string  `json:"created_at"`
}
