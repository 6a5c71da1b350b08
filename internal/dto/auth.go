package dto

// ── auth requests ──

// LoginRequest carries dashboard credentials.
type LoginRequest struct {
	Username   string `json:"username"    binding:"required,min=1,max=100"`
	Password   string `json:"password"    binding:"required,min=1"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ── auth responses ──

// TokenResponse is the token pair returned on login and refresh.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime in seconds
	User         UserResponse `json:"user"`
}

// SessionResponse is the principal projection the UI uses to decide which
// controls to render. It is not a security boundary.
type SessionResponse struct {
	Role   *string `json:"role"`
	UserID *string `json:"userId"`
}
