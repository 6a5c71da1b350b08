package model

// Dashboard roles. RoleManagement is the only role allowed to decide
// absence requests and to administer users.
const (
	RoleManagement = "Management"
	RoleAdmin      = "Admin"
	RoleDeveloper  = "Developer"
	RoleContent    = "Content"
)

// ValidRole reports whether a role string is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleManagement, RoleAdmin, RoleDeveloper, RoleContent:
		return true
	}
	return false
}

// User maps to the users table.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'Content'"    json:"role"`
	SoftDeleteModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
