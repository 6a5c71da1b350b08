package dto

// ── user requests ──

// CreateUserRequest creates a dashboard account.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"     binding:"required"`
}

// ChangeRoleRequest assigns a new role to a user.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ── user responses ──

// UserResponse is the sanitized user projection.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// ResetPasswordResponse returns the generated password exactly once.
type ResetPasswordResponse struct {
	Password string `json:"password"`
}
