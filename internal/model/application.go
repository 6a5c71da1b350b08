package model

// Application maps to the applications table (job postings, "Bewerbungen").
type Application struct {
	ApplicationID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"application_id"`
	Title         string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Description   string  `gorm:"type:text;not null"                             json:"description"`
	Image         *string `gorm:"type:varchar(500)"                              json:"image,omitempty"`
	Archived      bool    `gorm:"not null;default:false"                         json:"archived"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Application) TableName() string { return "applications" }
