package model

import "time"

// MaintenanceConfig maps to the maintenance_config table. A single row,
// created by the initial migration, carries the flag and the bcrypt hash of
// the maintenance bypass password.
type MaintenanceConfig struct {
	MaintenanceConfigID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"maintenance_config_id"`
	Active              bool      `gorm:"not null;default:false"                         json:"active"`
	PasswordHash        *string   `gorm:"type:varchar(255)"                              json:"-"`
	UpdatedAt           time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
	UpdatedBy           *string   `gorm:"type:uuid"                                      json:"updated_by,omitempty"`
}

// TableName sets the table name.
func (MaintenanceConfig) TableName() string { return "maintenance_config" }
