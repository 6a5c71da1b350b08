package dto

// ── maintenance mode ──

// SetMaintenanceModeRequest toggles the maintenance flag.
type SetMaintenanceModeRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetMaintenancePasswordRequest replaces the maintenance bypass password.
type SetMaintenancePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// MaintenanceResponse is the maintenance state projection.
type MaintenanceResponse struct {
	Active    bool   `json:"active"`
	UpdatedAt string `json:"updated_at"`
}
